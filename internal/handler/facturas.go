package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar facturas de compra
// @Tags         facturas
// @Produce      json
// @Success      200 {array} dto.FacturaListItem
// @Router       /movimientos/facturas [get]
func (h *FacturasHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener las facturas", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Registrar godoc
// @Summary      Registrar factura de compra con detalles
// @Description  Inserta encabezado y líneas en una sola transacción; la factura queda inmutable.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarFacturaRequest true "Factura y detalles"
// @Success      200 {object} dto.RegistrarFacturaResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /movimientos/facturas [post]
func (h *FacturasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarFacturaRequest
	if !bindJSON(c, &req, "Los datos de la factura son requeridos") {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al procesar la factura", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detalles godoc
// @Summary      Detalles de una factura
// @Tags         facturas
// @Produce      json
// @Param        id path int true "ID de la factura"
// @Success      200 {array} dto.DetalleFacturaItem
// @Failure      404 {object} map[string]interface{}
// @Router       /movimientos/detalle/{id} [get]
func (h *FacturasHandler) Detalles(c *gin.Context) {
	id, ok := paramID(c, "factura_id", "ID de factura inválido")
	if !ok {
		return
	}
	items, err := h.svc.Detalles(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Error al obtener los detalles de la factura", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
