package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

// ImpuestosHandler agrupa las dos tasas configurables: IVA y utilidad.
type ImpuestosHandler struct {
	ivaSvc      service.IvaService
	utilidadSvc service.UtilidadService
}

func NewImpuestosHandler(ivaSvc service.IvaService, utilidadSvc service.UtilidadService) *ImpuestosHandler {
	return &ImpuestosHandler{ivaSvc: ivaSvc, utilidadSvc: utilidadSvc}
}

// ListarIvas godoc
// @Summary      Listar tasas de IVA activas
// @Tags         impuestos
// @Produce      json
// @Success      200 {array} dto.TasaListItem
// @Router       /iva [get]
func (h *ImpuestosHandler) ListarIvas(c *gin.Context) {
	items, err := h.ivaSvc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener los IVAs", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CrearIva godoc
// @Summary      Crear tasa de IVA
// @Tags         impuestos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearTasaRequest true "Tasa en [0,100]"
// @Success      200 {object} dto.TasaResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /iva [post]
func (h *ImpuestosHandler) CrearIva(c *gin.Context) {
	var req dto.CrearTasaRequest
	if !bindJSON(c, &req, "La tasa debe ser un número válido") {
		return
	}
	resp, err := h.ivaSvc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al crear el IVA", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarIva godoc
// @Summary      Desactivar tasa de IVA
// @Tags         impuestos
// @Param        id path int true "ID del IVA"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /iva/{id} [delete]
func (h *ImpuestosHandler) EliminarIva(c *gin.Context) {
	id, ok := paramID(c, "iva_id", "ID de IVA inválido")
	if !ok {
		return
	}
	if err := h.ivaSvc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, "Error al eliminar el IVA", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarUtilidades godoc
// @Summary      Listar tasas de utilidad activas
// @Tags         impuestos
// @Produce      json
// @Success      200 {array} dto.TasaListItem
// @Router       /utilidad [get]
func (h *ImpuestosHandler) ListarUtilidades(c *gin.Context) {
	items, err := h.utilidadSvc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener las utilidades", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CrearUtilidad godoc
// @Summary      Crear tasa de utilidad
// @Tags         impuestos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearTasaRequest true "Tasa en [0,100]"
// @Success      200 {object} dto.TasaResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /utilidad [post]
func (h *ImpuestosHandler) CrearUtilidad(c *gin.Context) {
	var req dto.CrearTasaRequest
	if !bindJSON(c, &req, "La tasa debe ser un número válido") {
		return
	}
	resp, err := h.utilidadSvc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al crear la utilidad", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarUtilidad godoc
// @Summary      Desactivar tasa de utilidad
// @Tags         impuestos
// @Param        id path int true "ID de la utilidad"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Router       /utilidad/{id} [delete]
func (h *ImpuestosHandler) EliminarUtilidad(c *gin.Context) {
	id, ok := paramID(c, "utilidad_id", "ID de utilidad inválido")
	if !ok {
		return
	}
	if err := h.utilidadSvc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, "Error al desactivar la utilidad", err)
		return
	}
	c.Status(http.StatusNoContent)
}
