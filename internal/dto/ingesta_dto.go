package dto

import "github.com/shopspring/decimal"

// IngestaProducto es un descriptor de la ingesta masiva desde factura:
// si el código ya existe se acumula stock, si no se crea el producto.
type IngestaProducto struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	Stock       int             `json:"stock"`
	ProveedorID uint            `json:"proveedorP_id"`
	CategoriaID uint            `json:"categoriaP_id"`
	IvaID       uint            `json:"ivaP_id"`
	UtilidadID  uint            `json:"utilidadP_id"`
}

type IngestaResponse struct {
	Success               bool   `json:"success"`
	Message               string `json:"message"`
	ProductosCreados      int    `json:"productos_creados"`
	ProductosActualizados int    `json:"productos_actualizados"`
}
