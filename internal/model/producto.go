package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un repuesto del catálogo. El código es la clave de negocio
// (único en toda la tabla); el stock nunca baja de cero en reposo.
type Producto struct {
	ID          uint            `gorm:"primaryKey;column:producto_id"`
	Codigo      string          `gorm:"uniqueIndex;not null"`
	Nombre      string          `gorm:"index;not null"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	ProveedorID uint            `gorm:"not null;index"`
	CategoriaID uint            `gorm:"not null;index"`
	IvaID       uint            `gorm:"not null"`
	UtilidadID  uint            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }
