package dto

// CrearProveedorRequest — solo nombre es obligatorio.
type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre"`
	Vendedor  *string `json:"vendedor"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
}

// ActualizarProveedorRequest es una edición parcial: los campos nil no
// se tocan.
type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre"`
	Vendedor  *string `json:"vendedor"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
}

type ProveedorData struct {
	ProveedorID uint    `json:"proveedor_id"`
	Nombre      string  `json:"nombre"`
	Vendedor    *string `json:"vendedor"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	Estado      string  `json:"estado,omitempty"`
}

type CrearProveedorResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    ProveedorData `json:"data"`
}
