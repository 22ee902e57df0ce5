package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type SalidasHandler struct{ svc service.SalidaService }

func NewSalidasHandler(svc service.SalidaService) *SalidasHandler {
	return &SalidasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar productos vendibles
// @Description  id, nombre, stock y precio de venta; servido desde cache cuando está caliente.
// @Tags         salidas
// @Produce      json
// @Success      200 {array} dto.SalidaProducto
// @Router       /salidas [get]
func (h *SalidasHandler) Listar(c *gin.Context) {
	items, err := h.svc.ListarDisponibles(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener los productos", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Registrar godoc
// @Summary      Registrar salidas de venta por lote
// @Description  Descuenta stock todo-o-nada; responde 409 con stock_disponible y cantidad_solicitada ante faltantes.
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        body body []dto.SalidaRequest true "Lote de ventas"
// @Success      200 {object} dto.SalidaResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /salidas [put]
func (h *SalidasHandler) Registrar(c *gin.Context) {
	var ventas []dto.SalidaRequest
	if err := c.ShouldBindJSON(&ventas); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El formato debe ser un array de ventas"})
		return
	}
	resp, err := h.svc.RegistrarSalidas(c.Request.Context(), ventas)
	if err != nil {
		respondError(c, "Error al actualizar el stock", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
