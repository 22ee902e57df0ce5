package model

import "time"

// Tipos de operación del registro de inventario.
const (
	OperacionEntrada    = "entrada"
	OperacionDisminuido = "disminuido"
	OperacionEliminado  = "eliminado"
	OperacionEditado    = "editado"
)

// RegistroInventario es el log append-only de movimientos de stock.
// Guarda el id y el nombre del producto al momento de escribir, por lo
// que sobrevive a la eliminación de la fila de Productos. Nunca se
// actualiza ni se borra.
type RegistroInventario struct {
	ID            uint      `gorm:"primaryKey;column:registro_id"`
	ProductoRID   uint      `gorm:"column:producto_r_id;not null;index"`
	Fecha         time.Time `gorm:"not null"`
	TipoOperacion string    `gorm:"not null"`
	Cantidad      int       `gorm:"not null"`
	Nombre        string    `gorm:"not null"`
	CreatedAt     time.Time
}

func (RegistroInventario) TableName() string { return "registro_inventario" }
