package dto

import "github.com/shopspring/decimal"

// FacturaHeader — encabezado de factura de compra. Fecha en formato
// YYYY-MM-DD.
type FacturaHeader struct {
	Fecha         string          `json:"fecha"`
	Total         decimal.Decimal `json:"total"`
	ProveedorID   uint            `json:"proveedor_id"`
	CodigoFactura *string         `json:"codigoFactura"`
}

type DetalleFacturaRequest struct {
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
}

type RegistrarFacturaRequest struct {
	Factura  *FacturaHeader          `json:"factura"`
	Detalles []DetalleFacturaRequest `json:"detalles"`
}

type RegistrarFacturaResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	FacturaID          uint   `json:"facturaId"`
	DetallesInsertados int    `json:"detalles_insertados"`
}

type FacturaListItem struct {
	FacturaID       uint            `json:"factura_id"`
	Fecha           string          `json:"fecha"`
	Total           decimal.Decimal `json:"total"`
	CodigoFactura   *string         `json:"codigoFactura"`
	ProveedorNombre *string         `json:"proveedor_nombre"`
}

type DetalleFacturaItem struct {
	DetalleID      uint            `json:"detalle_id"`
	FacturaID      uint            `json:"factura_id"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
}
