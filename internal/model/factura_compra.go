package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaCompra es una factura de compra a proveedor. Se crea junto con
// sus detalles en una sola transacción y es inmutable después.
type FacturaCompra struct {
	ID            uint            `gorm:"primaryKey;column:factura_id"`
	Fecha         time.Time       `gorm:"not null;index"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProveedorID   uint            `gorm:"not null;index"`
	CodigoFactura *string
	CreatedAt     time.Time

	Proveedor *Proveedor             `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleFacturaCompra `gorm:"foreignKey:FacturaID"`
}

func (FacturaCompra) TableName() string { return "facturas_compra" }

// DetalleFacturaCompra es una línea de factura. El producto se referencia
// por nombre libre: no exige existir en el catálogo.
type DetalleFacturaCompra struct {
	ID             uint            `gorm:"primaryKey;column:detalle_id"`
	FacturaID      uint            `gorm:"not null;index"`
	NombreProducto string          `gorm:"not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioCompra   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (DetalleFacturaCompra) TableName() string { return "detalle_facturas_compra" }
