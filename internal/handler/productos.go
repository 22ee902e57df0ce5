package handler

import (
	"net/http"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc        service.ProductoService
	ingestaSvc service.IngestaService
}

func NewProductosHandler(svc service.ProductoService, ingestaSvc service.IngestaService) *ProductosHandler {
	return &ProductosHandler{svc: svc, ingestaSvc: ingestaSvc}
}

// Listar godoc
// @Summary      Listar productos con proveedor y categoría
// @Tags         productos
// @Produce      json
// @Success      200 {array} dto.ProductoListItem
// @Router       /table [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener los productos", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Crear godoc
// @Summary      Registrar producto individual
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProductoRequest true "Datos del producto"
// @Success      200 {object} dto.CrearProductoResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /table [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindJSON(c, &req, "Faltan campos requeridos") {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Error al crear el producto", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Editar producto
// @Description  Devuelve el listado completo ya refrescado; los cambios de stock quedan en el registro de inventario.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id   path int true "ID del producto"
// @Param        body body dto.ActualizarProductoRequest true "Campos a modificar"
// @Success      200 {array} dto.ProductoListItem
// @Failure      404 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /table/{id} [put]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "producto_id", "ID de producto inválido")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindJSON(c, &req, "Faltan campos requeridos") {
		return
	}
	items, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Error al actualizar el producto", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Eliminar godoc
// @Summary      Eliminar producto
// @Description  Borrado físico con fila `eliminado` en el registro de inventario.
// @Tags         productos
// @Param        id path int true "ID del producto"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Router       /table/{id} [delete]
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "producto_id", "ID de producto inválido")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, "Error al eliminar el producto", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Ingestar godoc
// @Summary      Carga masiva de productos desde factura
// @Description  Por línea: código existente acumula stock, código nuevo crea el producto. Todo o nada.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body []dto.IngestaProducto true "Lote de productos"
// @Success      200 {object} dto.IngestaResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /facturas [post]
func (h *ProductosHandler) Ingestar(c *gin.Context) {
	var productos []dto.IngestaProducto
	if err := c.ShouldBindJSON(&productos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El formato debe ser un array de productos"})
		return
	}
	resp, err := h.ingestaSvc.Procesar(c.Request.Context(), productos)
	if err != nil {
		respondError(c, "Error al procesar los productos", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ContarTotal godoc
// @Summary      Total de productos para el dashboard
// @Tags         productos
// @Produce      json
// @Success      200 {object} dto.TotalProductosResponse
// @Router       /inicio/productos [get]
func (h *ProductosHandler) ContarTotal(c *gin.Context) {
	resp, err := h.svc.ContarTotal(c.Request.Context())
	if err != nil {
		respondError(c, "Error al obtener el total de productos", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
