package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorConErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error interno produce un único cuerpo JSON", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/productos", func(c *gin.Context) {
			respondError(c, "Error al obtener los productos", errors.New("conexión perdida"))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/productos", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// Unmarshal rechaza cuerpos con más de un objeto JSON concatenado.
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Error al obtener los productos", body["message"])
	})

	t.Run("apierror conserva su estatus", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/productos", func(c *gin.Context) {
			respondError(c, "Error al obtener los productos", apierror.NotFound("Producto no encontrado"))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/productos", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Producto no encontrado", body["message"])
	})

	t.Run("sin respuesta previa el middleware escribe el 500 genérico", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/productos", func(c *gin.Context) {
			_ = c.Error(errors.New("conexión perdida"))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/productos", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Error interno del servidor", body["message"])
	})
}
