package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Iva es una tasa de impuesto al valor agregado en [0,100].
// La baja es lógica (activo=false) para preservar referencias históricas.
type Iva struct {
	ID        uint            `gorm:"primaryKey;column:iva_id"`
	Tasa      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Iva) TableName() string { return "ivas" }
