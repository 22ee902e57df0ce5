package router

import (
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/config"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/handler"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/middleware"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/service"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	ivaRepo := repository.NewIvaRepository(db)
	utilidadRepo := repository.NewUtilidadRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	registroRepo := repository.NewRegistroRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	ivaSvc := service.NewIvaService(ivaRepo, productoRepo)
	utilidadSvc := service.NewUtilidadService(utilidadRepo, productoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo, registroRepo, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, proveedorRepo, categoriaRepo, ivaRepo, utilidadRepo, registroRepo, rdb)
	ingestaSvc := service.NewIngestaService(productoRepo, proveedorRepo, categoriaRepo, registroRepo, rdb)
	facturaSvc := service.NewFacturaService(facturaRepo, proveedorRepo)
	salidaSvc := service.NewSalidaService(productoRepo, registroRepo, dispatcher, rdb)
	movimientoSvc := service.NewMovimientoService(registroRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	impuestosH := handler.NewImpuestosHandler(ivaSvc, utilidadSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	productosH := handler.NewProductosHandler(productoSvc, ingestaSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)
	movimientosH := handler.NewMovimientosHandler(movimientoSvc)
	salidasH := handler.NewSalidasHandler(salidaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	r.GET("/categories", categoriasH.Listar)
	r.POST("/categories", categoriasH.Crear)
	r.PUT("/categories/:categoria_id", categoriasH.Actualizar)
	r.DELETE("/categories/:categoria_id", categoriasH.Eliminar)

	r.GET("/iva", impuestosH.ListarIvas)
	r.POST("/iva", impuestosH.CrearIva)
	r.DELETE("/iva/:iva_id", impuestosH.EliminarIva)

	r.GET("/utilidad", impuestosH.ListarUtilidades)
	r.POST("/utilidad", impuestosH.CrearUtilidad)
	r.DELETE("/utilidad/:utilidad_id", impuestosH.EliminarUtilidad)

	r.GET("/proveedores", proveedoresH.Listar)
	r.POST("/proveedores", proveedoresH.Crear)
	r.PUT("/proveedores/:proveedor_id", proveedoresH.Actualizar)
	r.DELETE("/proveedores/:proveedor_id", proveedoresH.Desactivar)

	r.GET("/table", productosH.Listar)
	r.POST("/table", productosH.Crear)
	r.PUT("/table/:producto_id", productosH.Actualizar)
	r.DELETE("/table/:producto_id", productosH.Eliminar)

	// Carga masiva desde factura: GET devuelve el mismo listado que /table
	r.GET("/facturas", productosH.Listar)
	r.POST("/facturas", productosH.Ingestar)

	mov := r.Group("/movimientos")
	{
		mov.GET("/facturas", facturasH.Listar)
		mov.POST("/facturas", facturasH.Registrar)
		mov.GET("/detalle/:factura_id", facturasH.Detalles)
		mov.GET("/productos", movimientosH.ListarInventario)
		mov.POST("/productos", movimientosH.RegistrarInventario)
		mov.GET("/proveedores", movimientosH.ListarProveedores)
		mov.POST("/proveedores", movimientosH.RegistrarProveedor)
	}

	r.GET("/salidas", salidasH.Listar)
	r.PUT("/salidas", salidasH.Registrar)

	r.GET("/inicio/productos", productosH.ContarTotal)

	// Swagger UI — development only
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
