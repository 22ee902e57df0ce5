package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar proveedores activos
// @Tags         proveedores
// @Produce      json
// @Success      200 {array} dto.ProveedorData
// @Router       /proveedores [get]
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	data, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener los proveedores", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Crear godoc
// @Summary      Registrar proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProveedorRequest true "Datos del proveedor"
// @Success      200 {object} dto.CrearProveedorResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /proveedores [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindJSON(c, &req, "El nombre del proveedor es requerido") {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al registrar el proveedor", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Editar proveedor
// @Description  Edición parcial: solo los campos presentes en el body se modifican.
// @Tags         proveedores
// @Accept       json
// @Param        id   path int true "ID del proveedor"
// @Param        body body dto.ActualizarProveedorRequest true "Campos a modificar"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /proveedores/{id} [put]
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "proveedor_id", "ID de proveedor inválido")
	if !ok {
		return
	}
	var req dto.ActualizarProveedorRequest
	if !bindJSON(c, &req, "Datos del proveedor inválidos") {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, "Error al actualizar el proveedor", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Desactivar godoc
// @Summary      Dar de baja proveedor
// @Description  Baja lógica: estado pasa a inactivo, el historial lo conserva.
// @Tags         proveedores
// @Param        id path int true "ID del proveedor"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Router       /proveedores/{id} [delete]
func (h *ProveedoresHandler) Desactivar(c *gin.Context) {
	id, ok := paramID(c, "proveedor_id", "ID de proveedor inválido")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, "Error al eliminar el proveedor", err)
		return
	}
	c.Status(http.StatusNoContent)
}
