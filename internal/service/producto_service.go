package service

import (
	"context"
	"strings"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for the product
// catalog. Every stock change commits in the same transaction as its
// movement log row.
type ProductoService interface {
	Listar(ctx context.Context) ([]dto.ProductoListItem, error)
	ContarTotal(ctx context.Context) (*dto.TotalProductosResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.CrearProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) ([]dto.ProductoListItem, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo          repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	categoriaRepo repository.CategoriaRepository
	ivaRepo       repository.IvaRepository
	utilidadRepo  repository.UtilidadRepository
	registroRepo  repository.RegistroRepository
	rdb           *redis.Client
}

func NewProductoService(
	repo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	categoriaRepo repository.CategoriaRepository,
	ivaRepo repository.IvaRepository,
	utilidadRepo repository.UtilidadRepository,
	registroRepo repository.RegistroRepository,
	rdb *redis.Client,
) ProductoService {
	return &productoService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		categoriaRepo: categoriaRepo,
		ivaRepo:       ivaRepo,
		utilidadRepo:  utilidadRepo,
		registroRepo:  registroRepo,
		rdb:           rdb,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func aListItems(productos []model.Producto) []dto.ProductoListItem {
	items := make([]dto.ProductoListItem, 0, len(productos))
	for _, p := range productos {
		item := dto.ProductoListItem{
			ProductoID:  p.ID,
			Codigo:      p.Codigo,
			Nombre:      p.Nombre,
			PrecioVenta: p.PrecioVenta,
			Stock:       p.Stock,
		}
		if p.Proveedor != nil {
			nombre := p.Proveedor.Nombre
			item.ProveedorNombre = &nombre
		}
		if p.Categoria != nil {
			nombre := p.Categoria.NombreCategoria
			item.CategoriaNombre = &nombre
		}
		items = append(items, item)
	}
	return items
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoListItem, error) {
	productos, err := s.repo.ListarConRelaciones(ctx)
	if err != nil {
		return nil, err
	}
	return aListItems(productos), nil
}

func (s *productoService) ContarTotal(ctx context.Context) (*dto.TotalProductosResponse, error) {
	total, err := s.repo.ContarTotal(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.TotalProductosResponse{Success: true}
	resp.Data.TotalProducts = total
	return resp, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.CrearProductoResponse, error) {
	if req.Codigo == "" || req.Nombre == "" || req.ProveedorID == 0 || req.CategoriaID == 0 || req.IvaID == 0 || req.UtilidadID == 0 {
		return nil, apierror.BadRequest("Faltan campos requeridos")
	}
	codigo := strings.TrimSpace(req.Codigo)
	if codigo == "" {
		return nil, apierror.BadRequest("El código no puede estar vacío")
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.BadRequest("El nombre no puede estar vacío")
	}
	if req.PrecioVenta.IsNegative() {
		return nil, apierror.BadRequest("El precio debe ser un número mayor o igual a 0")
	}
	if req.Stock < 0 {
		return nil, apierror.BadRequest("El stock debe ser un número mayor o igual a 0")
	}

	duplicado, err := s.repo.ExisteCodigo(ctx, codigo, 0)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, apierror.Conflict("Ya existe un producto con este código")
	}

	if existe, err := s.proveedorRepo.Existe(ctx, req.ProveedorID); err != nil {
		return nil, err
	} else if !existe {
		return nil, apierror.BadRequest("El proveedor no existe")
	}
	if existe, err := s.categoriaRepo.Existe(ctx, req.CategoriaID); err != nil {
		return nil, err
	} else if !existe {
		return nil, apierror.BadRequest("La categoría no existe")
	}
	if existe, err := s.ivaRepo.Existe(ctx, req.IvaID); err != nil {
		return nil, err
	} else if !existe {
		return nil, apierror.BadRequest("El IVA no existe")
	}
	if existe, err := s.utilidadRepo.Existe(ctx, req.UtilidadID); err != nil {
		return nil, err
	} else if !existe {
		return nil, apierror.BadRequest("La utilidad no existe")
	}

	producto := model.Producto{
		Codigo:      codigo,
		Nombre:      nombre,
		PrecioVenta: req.PrecioVenta,
		Stock:       req.Stock,
		ProveedorID: req.ProveedorID,
		CategoriaID: req.CategoriaID,
		IvaID:       req.IvaID,
		UtilidadID:  req.UtilidadID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearTx(tx, &producto); err != nil {
			return err
		}
		if producto.Stock > 0 {
			return s.registroRepo.CrearInventarioTx(tx, &model.RegistroInventario{
				ProductoRID:   producto.ID,
				Fecha:         time.Now(),
				TipoOperacion: model.OperacionEntrada,
				Cantidad:      producto.Stock,
				Nombre:        producto.Nombre,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	invalidarSalidasCache(s.rdb)

	return &dto.CrearProductoResponse{
		Success:     true,
		Codigo:      producto.Codigo,
		Nombre:      producto.Nombre,
		PrecioVenta: producto.PrecioVenta,
		Stock:       producto.Stock,
		ProveedorID: producto.ProveedorID,
		CategoriaID: producto.CategoriaID,
		IvaID:       producto.IvaID,
		UtilidadID:  producto.UtilidadID,
		ID:          producto.ID,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) ([]dto.ProductoListItem, error) {
	if req.Codigo == "" || req.Nombre == "" || req.ProveedorID == 0 || req.CategoriaID == 0 {
		return nil, apierror.BadRequest("Faltan campos requeridos")
	}
	codigo := strings.TrimSpace(req.Codigo)
	nombre := strings.TrimSpace(req.Nombre)
	if codigo == "" || nombre == "" {
		return nil, apierror.BadRequest("El código y nombre no pueden estar vacíos")
	}
	if req.Stock < 0 {
		return nil, apierror.BadRequest("El stock debe ser un número mayor o igual a 0")
	}

	producto, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}

	duplicado, err := s.repo.ExisteCodigo(ctx, codigo, id)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, apierror.Conflict("Ya existe otro producto con este código")
	}

	if existe, err := s.proveedorRepo.Existe(ctx, req.ProveedorID); err != nil {
		return nil, err
	} else if !existe {
		return nil, apierror.BadRequest("El proveedor no existe")
	}
	if existe, err := s.categoriaRepo.Existe(ctx, req.CategoriaID); err != nil {
		return nil, err
	} else if !existe {
		return nil, apierror.BadRequest("La categoría no existe")
	}

	stockAnterior := producto.Stock
	producto.Codigo = codigo
	producto.Nombre = nombre
	producto.Stock = req.Stock
	producto.ProveedorID = req.ProveedorID
	producto.CategoriaID = req.CategoriaID

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ActualizarTx(tx, producto); err != nil {
			return err
		}
		if req.Stock != stockAnterior {
			// Cantidad firmada: la conciliación suma ediciones tal cual.
			return s.registroRepo.CrearInventarioTx(tx, &model.RegistroInventario{
				ProductoRID:   producto.ID,
				Fecha:         time.Now(),
				TipoOperacion: model.OperacionEditado,
				Cantidad:      req.Stock - stockAnterior,
				Nombre:        producto.Nombre,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	invalidarSalidasCache(s.rdb)
	return s.Listar(ctx)
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	producto, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return apierror.NotFound("Producto no encontrado")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.EliminarTx(tx, id); err != nil {
			return err
		}
		return s.registroRepo.CrearInventarioTx(tx, &model.RegistroInventario{
			ProductoRID:   producto.ID,
			Fecha:         time.Now(),
			TipoOperacion: model.OperacionEliminado,
			Cantidad:      producto.Stock,
			Nombre:        producto.Nombre,
		})
	})
	if txErr != nil {
		return txErr
	}

	invalidarSalidasCache(s.rdb)
	return nil
}
