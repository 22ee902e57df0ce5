package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses. Typed API errors
// carry their own status and body; anything else is attached to the gin
// context so the error middleware logs it and answers an opaque 500.
func respondError(c *gin.Context, fallback string, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apiErr.Body())
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}

// bindJSON binds the body, answering a 400 on malformed JSON. Returns
// false when the caller should stop.
func bindJSON(c *gin.Context, req interface{}, badFormatMsg string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": badFormatMsg})
		return false
	}
	return true
}

// paramID parses a numeric path parameter. Returns 0 and responds 400
// with invalidMsg when it is not a positive integer.
func paramID(c *gin.Context, name, invalidMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": invalidMsg})
		return 0, false
	}
	return uint(id), true
}
