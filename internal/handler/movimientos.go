package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type MovimientosHandler struct{ svc service.MovimientoService }

func NewMovimientosHandler(svc service.MovimientoService) *MovimientosHandler {
	return &MovimientosHandler{svc: svc}
}

// ListarInventario godoc
// @Summary      Listar el registro de movimientos de inventario
// @Tags         movimientos
// @Produce      json
// @Success      200 {array} dto.MovimientoListItem
// @Router       /movimientos/productos [get]
func (h *MovimientosHandler) ListarInventario(c *gin.Context) {
	items, err := h.svc.ListarInventario(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener los movimientos", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// RegistrarInventario godoc
// @Summary      Registrar un movimiento de inventario manual
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarMovimientoRequest true "Movimiento"
// @Success      200 {object} dto.MovimientoResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /movimientos/productos [post]
func (h *MovimientosHandler) RegistrarInventario(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindJSON(c, &req, "Datos del movimiento inválidos") {
		return
	}
	resp, err := h.svc.RegistrarInventario(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al registrar el movimiento", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarProveedores godoc
// @Summary      Listar el registro de cambios de proveedores
// @Tags         movimientos
// @Produce      json
// @Success      200 {array} dto.MovProveedorData
// @Router       /movimientos/proveedores [get]
func (h *MovimientosHandler) ListarProveedores(c *gin.Context) {
	items, err := h.svc.ListarProveedores(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener los registros", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// RegistrarProveedor godoc
// @Summary      Registrar un cambio de proveedor manual
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarMovProveedorRequest true "Instantánea del proveedor"
// @Success      200 {object} dto.MovProveedorResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /movimientos/proveedores [post]
func (h *MovimientosHandler) RegistrarProveedor(c *gin.Context) {
	var req dto.RegistrarMovProveedorRequest
	if !bindJSON(c, &req, "Datos del registro inválidos") {
		return
	}
	resp, err := h.svc.RegistrarProveedor(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al crear el registro de proveedor", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
