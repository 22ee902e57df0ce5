package dto

type CrearCategoriaRequest struct {
	NombreCategoria string `json:"nombre_categoria"`
}

type CategoriaData struct {
	CategoriaID     uint   `json:"categoria_id"`
	NombreCategoria string `json:"nombre_categoria"`
}

type CategoriaListResponse struct {
	Success bool            `json:"success"`
	Data    []CategoriaData `json:"data"`
	Count   int             `json:"count"`
}

type CategoriaMutResponse struct {
	Success bool          `json:"success,omitempty"`
	Message string        `json:"message"`
	Data    CategoriaData `json:"data"`
}
