package model

import "time"

// Categoria de productos. Se elimina físicamente solo cuando ningún
// producto la referencia.
type Categoria struct {
	ID              uint   `gorm:"primaryKey;column:categoria_id"`
	NombreCategoria string `gorm:"uniqueIndex;not null"`
	CreatedAt       time.Time
}

func (Categoria) TableName() string { return "categorias" }
