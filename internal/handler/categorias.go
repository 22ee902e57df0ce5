package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Success      200 {object} dto.CategoriaListResponse
// @Router       /categories [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener las categorías", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearCategoriaRequest true "Nombre de la categoría"
// @Success      201 {object} dto.CategoriaMutResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /categories [post]
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindJSON(c, &req, "El nombre de la categoría es requerido") {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al crear la categoría", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Renombrar categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        id   path int true "ID de la categoría"
// @Param        body body dto.CrearCategoriaRequest true "Nuevo nombre"
// @Success      200 {object} dto.CategoriaMutResponse
// @Failure      404 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /categories/{id} [put]
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "categoria_id", "ID de categoría inválido")
	if !ok {
		return
	}
	var req dto.CrearCategoriaRequest
	if !bindJSON(c, &req, "El nombre de la categoría es requerido") {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Error al actualizar la categoría", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar categoría
// @Description  Borrado físico, rechazado mientras existan productos asociados.
// @Tags         categorias
// @Param        id path int true "ID de la categoría"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /categories/{id} [delete]
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "categoria_id", "ID de categoría inválido")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, "Error al eliminar la categoría", err)
		return
	}
	c.Status(http.StatusNoContent)
}
