package dto

// RegistrarMovimientoRequest agrega una fila al log de inventario.
// Fecha en formato YYYY-MM-DD o RFC3339.
type RegistrarMovimientoRequest struct {
	ProductoRID   uint   `json:"productoR_id"`
	Fecha         string `json:"fecha"`
	TipoOperacion string `json:"tipo_operacion"`
	Cantidad      int    `json:"cantidad"`
	Nombre        string `json:"nombre"`
}

type MovimientoResponse struct {
	Success       bool   `json:"success"`
	ProductoRID   uint   `json:"productoR_id"`
	Fecha         string `json:"fecha"`
	TipoOperacion string `json:"tipo_operacion"`
	Cantidad      int    `json:"cantidad"`
	Nombre        string `json:"nombre"`
	ID            uint   `json:"id"`
}

type MovimientoListItem struct {
	RegistroID    uint   `json:"registro_id"`
	ProductoRID   uint   `json:"productoR_id"`
	Fecha         string `json:"fecha"`
	TipoOperacion string `json:"tipo_operacion"`
	Cantidad      int    `json:"cantidad"`
	Nombre        string `json:"nombre"`
}

// RegistrarMovProveedorRequest agrega una instantánea al log de
// proveedores.
type RegistrarMovProveedorRequest struct {
	ProveedorID uint    `json:"proveedor_id"`
	Nombre      string  `json:"nombre"`
	Vendedor    *string `json:"vendedor"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	Estado      string  `json:"estado"`
	FechaCambio string  `json:"fecha_cambio"`
}

type MovProveedorData struct {
	RegistroID  uint    `json:"registro_id"`
	ProveedorID uint    `json:"proveedor_id"`
	Nombre      string  `json:"nombre"`
	Vendedor    *string `json:"vendedor"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	Estado      string  `json:"estado"`
	FechaCambio string  `json:"fecha_cambio"`
}

type MovProveedorResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    MovProveedorData `json:"data"`
}
