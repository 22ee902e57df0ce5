package dto

import "github.com/shopspring/decimal"

// SalidaRequest es una entrada del lote de venta. El frontend histórico
// envía productoId o productId indistintamente; se aceptan ambos.
type SalidaRequest struct {
	ProductoID uint `json:"productoId"`
	ProductID  uint `json:"productId"`
	Cantidad   int  `json:"cantidad"`
}

// ID resuelve el alias productoId/productId.
func (s SalidaRequest) ID() uint {
	if s.ProductoID != 0 {
		return s.ProductoID
	}
	return s.ProductID
}

// SalidaProducto es la fila del listado de productos vendibles.
type SalidaProducto struct {
	ProductoID  uint            `json:"producto_id"`
	Nombre      string          `json:"nombre"`
	Stock       int             `json:"stock"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
}

type SalidaDetalle struct {
	ProductoID      uint `json:"productoId"`
	CantidadVendida int  `json:"cantidad_vendida"`
}

type SalidaResponse struct {
	Success               bool            `json:"success"`
	Message               string          `json:"message"`
	ProductosActualizados int             `json:"productos_actualizados"`
	Detalles              []SalidaDetalle `json:"detalles"`
}
