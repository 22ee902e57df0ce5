package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSalidaSvc(productos *stubProductoRepo, registros *stubRegistroRepo) service.SalidaService {
	return service.NewSalidaService(productos, registros, nil, nil)
}

func TestRegistrarSalidasDescuentaStock(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 1, Codigo: "FLT-100", Nombre: "Filtro de aceite", Stock: 10})
	productos.agregar(model.Producto{ID: 2, Codigo: "BUJ-200", Nombre: "Bujía NGK", Stock: 4})
	registros := &stubRegistroRepo{}
	svc := buildSalidaSvc(productos, registros)

	resp, err := svc.RegistrarSalidas(context.Background(), []dto.SalidaRequest{
		{ProductoID: 1, Cantidad: 3},
		{ProductoID: 2, Cantidad: 4},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Stock actualizado correctamente", resp.Message)
	assert.Equal(t, 2, resp.ProductosActualizados)
	assert.Equal(t, 7, productos.productos[1].Stock)
	assert.Equal(t, 0, productos.productos[2].Stock)

	require.Len(t, registros.inventario, 2)
	for _, reg := range registros.inventario {
		assert.Equal(t, model.OperacionDisminuido, reg.TipoOperacion)
	}
	assert.Equal(t, uint(1), registros.inventario[0].ProductoRID)
	assert.Equal(t, 3, registros.inventario[0].Cantidad)
	assert.Equal(t, "Filtro de aceite", registros.inventario[0].Nombre)
}

func TestRegistrarSalidasStockInsuficiente(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 5, Codigo: "AMT-500", Nombre: "Amortiguador", Stock: 2})
	registros := &stubRegistroRepo{}
	svc := buildSalidaSvc(productos, registros)

	resp, err := svc.RegistrarSalidas(context.Background(), []dto.SalidaRequest{
		{ProductoID: 5, Cantidad: 3},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Stock insuficiente para Amortiguador", apiErr.Message)
	assert.Equal(t, 2, apiErr.Extra["stock_disponible"])
	assert.Equal(t, 3, apiErr.Extra["cantidad_solicitada"])

	// nada se descuenta ni se registra
	assert.Equal(t, 2, productos.productos[5].Stock)
	assert.Empty(t, registros.inventario)
}

func TestRegistrarSalidasTodoONada(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 1, Codigo: "FLT-100", Nombre: "Filtro de aceite", Stock: 10})
	productos.agregar(model.Producto{ID: 2, Codigo: "BUJ-200", Nombre: "Bujía NGK", Stock: 1})
	registros := &stubRegistroRepo{}
	svc := buildSalidaSvc(productos, registros)

	// la segunda venta excede el stock: el lote completo se rechaza
	resp, err := svc.RegistrarSalidas(context.Background(), []dto.SalidaRequest{
		{ProductoID: 1, Cantidad: 5},
		{ProductoID: 2, Cantidad: 2},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 10, productos.productos[1].Stock)
	assert.Equal(t, 1, productos.productos[2].Stock)
	assert.Empty(t, registros.inventario)
}

func TestRegistrarSalidasProductoRepetidoAgotaAcumulado(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 3, Codigo: "PST-300", Nombre: "Pastillas de freno", Stock: 5})
	registros := &stubRegistroRepo{}
	svc := buildSalidaSvc(productos, registros)

	// 3 + 3 > 5: la segunda entrada del mismo producto ve el stock ya
	// comprometido por la primera
	resp, err := svc.RegistrarSalidas(context.Background(), []dto.SalidaRequest{
		{ProductoID: 3, Cantidad: 3},
		{ProductoID: 3, Cantidad: 3},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, 2, apiErr.Extra["stock_disponible"])
	assert.Equal(t, 5, productos.productos[3].Stock)

	// 3 + 2 = 5 exacto sí pasa
	okResp, err := svc.RegistrarSalidas(context.Background(), []dto.SalidaRequest{
		{ProductoID: 3, Cantidad: 3},
		{ProductoID: 3, Cantidad: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, okResp.ProductosActualizados)
	assert.Equal(t, 0, productos.productos[3].Stock)
	require.Len(t, registros.inventario, 2)
}

func TestRegistrarSalidasValidaciones(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 1, Codigo: "FLT-100", Nombre: "Filtro de aceite", Stock: 10})
	svc := buildSalidaSvc(productos, &stubRegistroRepo{})

	casos := []struct {
		nombre  string
		ventas  []dto.SalidaRequest
		status  int
		mensaje string
	}{
		{"lote vacío", nil, http.StatusBadRequest, "Debe enviar al menos una venta"},
		{"sin id", []dto.SalidaRequest{{Cantidad: 1}}, http.StatusBadRequest, "Venta 1: El ID del producto es requerido"},
		{"cantidad cero", []dto.SalidaRequest{{ProductoID: 1, Cantidad: 0}}, http.StatusBadRequest, "Venta 1: La cantidad debe ser un número mayor a 0"},
		{"cantidad negativa", []dto.SalidaRequest{{ProductoID: 1, Cantidad: 1}, {ProductoID: 1, Cantidad: -2}}, http.StatusBadRequest, "Venta 2: La cantidad debe ser un número mayor a 0"},
		{"producto inexistente", []dto.SalidaRequest{{ProductoID: 99, Cantidad: 1}}, http.StatusBadRequest, "Producto con ID 99 no existe"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := svc.RegistrarSalidas(context.Background(), tc.ventas)
			var apiErr *apierror.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.mensaje, apiErr.Message)
		})
	}
}

func TestRegistrarSalidasAceptaAliasProductId(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 7, Codigo: "LLV-700", Nombre: "Llavín de puerta", Stock: 3})
	svc := buildSalidaSvc(productos, &stubRegistroRepo{})

	resp, err := svc.RegistrarSalidas(context.Background(), []dto.SalidaRequest{
		{ProductID: 7, Cantidad: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ProductosActualizados)
	assert.Equal(t, 2, productos.productos[7].Stock)
}

func TestListarDisponiblesSinCache(t *testing.T) {
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{ID: 1, Codigo: "FLT-100", Nombre: "Filtro de aceite", Stock: 10, PrecioVenta: decimal.NewFromInt(4500)})
	svc := buildSalidaSvc(productos, &stubRegistroRepo{})

	items, err := svc.ListarDisponibles(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductoID)
	assert.Equal(t, "Filtro de aceite", items[0].Nombre)
	assert.Equal(t, 10, items[0].Stock)
	assert.True(t, items[0].PrecioVenta.Equal(decimal.NewFromInt(4500)))
}
