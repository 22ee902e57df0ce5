package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Utilidad es un porcentaje de ganancia en [0,100], con baja lógica
// igual que Iva.
type Utilidad struct {
	ID        uint            `gorm:"primaryKey;column:utilidad_id"`
	Tasa      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Utilidad) TableName() string { return "utilidades" }
