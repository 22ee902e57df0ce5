package model

import "time"

// RegistroProveedor es el log append-only de cambios de proveedores:
// una instantánea completa de los datos del proveedor por cada alta,
// edición o baja.
type RegistroProveedor struct {
	ID          uint   `gorm:"primaryKey;column:registro_id"`
	ProveedorID uint   `gorm:"not null;index"`
	Nombre      string `gorm:"not null"`
	Vendedor    *string
	Telefono    *string
	Email       *string
	Direccion   *string
	Estado      string    `gorm:"not null"`
	FechaCambio time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (RegistroProveedor) TableName() string { return "registro_proveedores" }
