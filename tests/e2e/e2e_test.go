//go:build integration

package e2e

// e2e_test.go
// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - catálogo completo: categoría → IVA → utilidad → proveedor → producto
//   - ingesta masiva desde factura (crear + acumular)
//   - salidas por lote con descuento de stock y conflicto 409
//   - log de inventario acumulado por las operaciones anteriores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/config"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/infra"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/router"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("inventario_test"),
		tcPostgres.WithUsername("inventario"),
		tcPostgres.WithPassword("inventario"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           8000,
		Env:            "test",
		WorkerPoolSize: 1,
		DatabaseURL:    pgURL,
		RedisURL:       rdURL,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	dispatcher := worker.NewDispatcher(rdb)
	r := router.New(cfg, db, rdb, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv}
}

// seedCatalogo deja el catálogo mínimo y devuelve los IDs creados.
func seedCatalogo(t *testing.T, env *testEnv) (proveedorID, categoriaID, ivaID, utilidadID float64) {
	t.Helper()

	provResp := do(t, env.server, "POST", "/proveedores",
		jsonBody(t, map[string]any{"nombre": "Repuestos del Este", "email": "ventas@este.cr"}))
	require.Equal(t, http.StatusOK, provResp.StatusCode)
	var prov struct {
		Data struct {
			ProveedorID float64 `json:"proveedor_id"`
		} `json:"data"`
	}
	decodeJSON(t, provResp, &prov)

	catResp := do(t, env.server, "POST", "/categories",
		jsonBody(t, map[string]any{"nombre_categoria": "Motor"}))
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		Data struct {
			CategoriaID float64 `json:"categoria_id"`
		} `json:"data"`
	}
	decodeJSON(t, catResp, &cat)

	ivaResp := do(t, env.server, "POST", "/iva", jsonBody(t, map[string]any{"tasa": 13}))
	require.Equal(t, http.StatusOK, ivaResp.StatusCode)
	var iva struct {
		ID float64 `json:"id"`
	}
	decodeJSON(t, ivaResp, &iva)

	utilResp := do(t, env.server, "POST", "/utilidad", jsonBody(t, map[string]any{"tasa": 30}))
	require.Equal(t, http.StatusOK, utilResp.StatusCode)
	var util struct {
		ID float64 `json:"id"`
	}
	decodeJSON(t, utilResp, &util)

	return prov.Data.ProveedorID, cat.Data.CategoriaID, iva.ID, util.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CatalogoYProducto(t *testing.T) {
	env := setupTestEnv(t)
	proveedorID, categoriaID, ivaID, utilidadID := seedCatalogo(t, env)

	prodResp := do(t, env.server, "POST", "/table", jsonBody(t, map[string]any{
		"codigo":        "FLT-100",
		"nombre":        "Filtro de aceite",
		"precioVenta":   4500,
		"stock":         10,
		"proveedorP_id": proveedorID,
		"categoriaP_id": categoriaID,
		"ivaP_id":       ivaID,
		"utilidadP_id":  utilidadID,
	}))
	require.Equal(t, http.StatusOK, prodResp.StatusCode)
	var prod struct {
		Success bool    `json:"success"`
		ID      float64 `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)
	assert.True(t, prod.Success)
	require.NotZero(t, prod.ID)

	// código duplicado → 409
	dupResp := do(t, env.server, "POST", "/table", jsonBody(t, map[string]any{
		"codigo":        "FLT-100",
		"nombre":        "Otro filtro",
		"precioVenta":   1000,
		"stock":         1,
		"proveedorP_id": proveedorID,
		"categoriaP_id": categoriaID,
		"ivaP_id":       ivaID,
		"utilidadP_id":  utilidadID,
	}))
	defer dupResp.Body.Close()
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)

	// el listado resuelve nombres de proveedor y categoría
	listResp := do(t, env.server, "GET", "/table", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var lista []struct {
		Codigo          string  `json:"codigo"`
		ProveedorNombre *string `json:"proveedor_nombre"`
		CategoriaNombre *string `json:"categoria_nombre"`
	}
	decodeJSON(t, listResp, &lista)
	require.Len(t, lista, 1)
	require.NotNil(t, lista[0].ProveedorNombre)
	assert.Equal(t, "Repuestos del Este", *lista[0].ProveedorNombre)
	require.NotNil(t, lista[0].CategoriaNombre)
	assert.Equal(t, "Motor", *lista[0].CategoriaNombre)

	// contador del dashboard
	countResp := do(t, env.server, "GET", "/inicio/productos", nil)
	require.Equal(t, http.StatusOK, countResp.StatusCode)
	var count struct {
		Data struct {
			TotalProducts float64 `json:"totalProducts"`
		} `json:"data"`
	}
	decodeJSON(t, countResp, &count)
	assert.Equal(t, float64(1), count.Data.TotalProducts)
}

func TestE2E_IngestaMasiva(t *testing.T) {
	env := setupTestEnv(t)
	proveedorID, categoriaID, ivaID, utilidadID := seedCatalogo(t, env)

	item := func(codigo, nombre string, stock int) map[string]any {
		return map[string]any{
			"codigo":        codigo,
			"nombre":        nombre,
			"precioVenta":   2000,
			"stock":         stock,
			"proveedorP_id": proveedorID,
			"categoriaP_id": categoriaID,
			"ivaP_id":       ivaID,
			"utilidadP_id":  utilidadID,
		}
	}

	// primer lote: dos productos nuevos
	resp := do(t, env.server, "POST", "/facturas", jsonBody(t, []map[string]any{
		item("FLT-100", "Filtro de aceite", 5),
		item("BUJ-200", "Bujía NGK", 8),
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ingesta struct {
		ProductosCreados      int `json:"productos_creados"`
		ProductosActualizados int `json:"productos_actualizados"`
	}
	decodeJSON(t, resp, &ingesta)
	assert.Equal(t, 2, ingesta.ProductosCreados)
	assert.Equal(t, 0, ingesta.ProductosActualizados)

	// segundo lote: el mismo código dos veces acumula secuencialmente
	resp = do(t, env.server, "POST", "/facturas", jsonBody(t, []map[string]any{
		item("FLT-100", "Filtro de aceite", 3),
		item("FLT-100", "Filtro de aceite", 2),
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &ingesta)
	assert.Equal(t, 0, ingesta.ProductosCreados)
	assert.Equal(t, 2, ingesta.ProductosActualizados)

	// stock final: 5 + 3 + 2 = 10
	salidasResp := do(t, env.server, "GET", "/salidas", nil)
	require.Equal(t, http.StatusOK, salidasResp.StatusCode)
	var disponibles []struct {
		ProductoID float64 `json:"producto_id"`
		Nombre     string  `json:"nombre"`
		Stock      int     `json:"stock"`
	}
	decodeJSON(t, salidasResp, &disponibles)
	stocks := map[string]int{}
	for _, d := range disponibles {
		stocks[d.Nombre] = d.Stock
	}
	assert.Equal(t, 10, stocks["Filtro de aceite"])
	assert.Equal(t, 8, stocks["Bujía NGK"])
}

func TestE2E_SalidasYConflictoDeStock(t *testing.T) {
	env := setupTestEnv(t)
	proveedorID, categoriaID, ivaID, utilidadID := seedCatalogo(t, env)

	prodResp := do(t, env.server, "POST", "/table", jsonBody(t, map[string]any{
		"codigo":        "AMT-500",
		"nombre":        "Amortiguador",
		"precioVenta":   15000,
		"stock":         2,
		"proveedorP_id": proveedorID,
		"categoriaP_id": categoriaID,
		"ivaP_id":       ivaID,
		"utilidadP_id":  utilidadID,
	}))
	require.Equal(t, http.StatusOK, prodResp.StatusCode)
	var prod struct {
		ID float64 `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	// pedir 3 con stock 2 → 409 con el detalle del conflicto
	confResp := do(t, env.server, "PUT", "/salidas", jsonBody(t, []map[string]any{
		{"productoId": prod.ID, "cantidad": 3},
	}))
	require.Equal(t, http.StatusConflict, confResp.StatusCode)
	var conflicto struct {
		Message            string `json:"message"`
		StockDisponible    int    `json:"stock_disponible"`
		CantidadSolicitada int    `json:"cantidad_solicitada"`
	}
	decodeJSON(t, confResp, &conflicto)
	assert.Equal(t, "Stock insuficiente para Amortiguador", conflicto.Message)
	assert.Equal(t, 2, conflicto.StockDisponible)
	assert.Equal(t, 3, conflicto.CantidadSolicitada)

	// vender el stock exacto sí pasa
	okResp := do(t, env.server, "PUT", "/salidas", jsonBody(t, []map[string]any{
		{"productoId": prod.ID, "cantidad": 2},
	}))
	require.Equal(t, http.StatusOK, okResp.StatusCode)
	var salida struct {
		Success               bool `json:"success"`
		ProductosActualizados int  `json:"productos_actualizados"`
	}
	decodeJSON(t, okResp, &salida)
	assert.True(t, salida.Success)
	assert.Equal(t, 1, salida.ProductosActualizados)

	// el log registra la entrada inicial y la disminución
	movResp := do(t, env.server, "GET", "/movimientos/productos", nil)
	require.Equal(t, http.StatusOK, movResp.StatusCode)
	var movimientos []struct {
		TipoOperacion string `json:"tipo_operacion"`
		Cantidad      int    `json:"cantidad"`
	}
	decodeJSON(t, movResp, &movimientos)
	require.Len(t, movimientos, 2)
	tipos := map[string]int{}
	for _, m := range movimientos {
		tipos[m.TipoOperacion] = m.Cantidad
	}
	assert.Equal(t, 2, tipos["entrada"])
	assert.Equal(t, 2, tipos["disminuido"])
}

func TestE2E_FacturaCompra(t *testing.T) {
	env := setupTestEnv(t)
	proveedorID, _, _, _ := seedCatalogo(t, env)

	facResp := do(t, env.server, "POST", "/movimientos/facturas", jsonBody(t, map[string]any{
		"factura": map[string]any{
			"fecha":         "2026-08-15",
			"total":         25000,
			"proveedor_id":  proveedorID,
			"codigoFactura": "FAC-001",
		},
		"detalles": []map[string]any{
			{"nombreProducto": "Filtro de aceite", "cantidad": 4, "precio_compra": 3000},
			{"nombreProducto": "Bujía NGK", "cantidad": 10, "precio_compra": 1300},
		},
	}))
	require.Equal(t, http.StatusOK, facResp.StatusCode)
	var factura struct {
		Success            bool    `json:"success"`
		FacturaID          float64 `json:"facturaId"`
		DetallesInsertados int     `json:"detalles_insertados"`
	}
	decodeJSON(t, facResp, &factura)
	assert.True(t, factura.Success)
	assert.Equal(t, 2, factura.DetallesInsertados)

	detResp := do(t, env.server, "GET", fmt.Sprintf("/movimientos/detalle/%.0f", factura.FacturaID), nil)
	require.Equal(t, http.StatusOK, detResp.StatusCode)
	var detalles []struct {
		NombreProducto string `json:"nombreProducto"`
		Cantidad       int    `json:"cantidad"`
	}
	decodeJSON(t, detResp, &detalles)
	require.Len(t, detalles, 2)
	assert.Equal(t, "Filtro de aceite", detalles[0].NombreProducto)
}

func TestE2E_Health(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/health", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
