package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest registra un producto individual. Los nombres JSON
// replican el contrato del frontend (proveedorP_id, categoriaP_id, …).
type CrearProductoRequest struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	Stock       int             `json:"stock"`
	ProveedorID uint            `json:"proveedorP_id"`
	CategoriaID uint            `json:"categoriaP_id"`
	IvaID       uint            `json:"ivaP_id"`
	UtilidadID  uint            `json:"utilidadP_id"`
}

type CrearProductoResponse struct {
	Success     bool            `json:"success"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	Stock       int             `json:"stock"`
	ProveedorID uint            `json:"proveedorP_id"`
	CategoriaID uint            `json:"categoriaP_id"`
	IvaID       uint            `json:"ivaP_id"`
	UtilidadID  uint            `json:"utilidadP_id"`
	ID          uint            `json:"id"`
}

// ActualizarProductoRequest edita código, nombre, stock y referencias.
type ActualizarProductoRequest struct {
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Stock       int    `json:"stock"`
	ProveedorID uint   `json:"proveedor_id"`
	CategoriaID uint   `json:"categoria_id"`
}

// ProductoListItem es la fila del listado con nombres de proveedor y
// categoría resueltos.
type ProductoListItem struct {
	ProductoID      uint            `json:"producto_id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precioVenta"`
	Stock           int             `json:"stock"`
	ProveedorNombre *string         `json:"proveedor_nombre"`
	CategoriaNombre *string         `json:"categoria_nombre"`
}

// TotalProductosResponse alimenta el contador del dashboard.
type TotalProductosResponse struct {
	Success bool `json:"success"`
	Data    struct {
		TotalProducts int64 `json:"totalProducts"`
	} `json:"data"`
}
