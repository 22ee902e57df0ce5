package model

import "time"

// EstadoProveedor modela la baja lógica como estado explícito: un proveedor
// inactivo desaparece de los listados activos pero sigue siendo referenciable
// por facturas y registros históricos.
type EstadoProveedor string

const (
	ProveedorActivo   EstadoProveedor = "activo"
	ProveedorInactivo EstadoProveedor = "inactivo"
)

// Proveedor con datos comerciales. Nombre único entre activos.
type Proveedor struct {
	ID        uint    `gorm:"primaryKey;column:proveedor_id"`
	Nombre    string  `gorm:"not null;index"`
	Vendedor  *string
	Telefono  *string
	Email     *string
	Direccion *string
	Estado    EstadoProveedor `gorm:"not null;default:'activo'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Productos []Producto `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
