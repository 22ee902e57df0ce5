package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// IngestaService procesa la carga masiva de productos desde factura:
// por cada descriptor, si el código existe acumula stock, si no crea el
// producto. Todo el lote entra en una sola transacción junto con una
// fila de registro `entrada` por línea.
type IngestaService interface {
	Procesar(ctx context.Context, productos []dto.IngestaProducto) (*dto.IngestaResponse, error)
}

type ingestaService struct {
	repo          repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	categoriaRepo repository.CategoriaRepository
	registroRepo  repository.RegistroRepository
	rdb           *redis.Client
}

func NewIngestaService(
	repo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	categoriaRepo repository.CategoriaRepository,
	registroRepo repository.RegistroRepository,
	rdb *redis.Client,
) IngestaService {
	return &ingestaService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		categoriaRepo: categoriaRepo,
		registroRepo:  registroRepo,
		rdb:           rdb,
	}
}

func (s *ingestaService) Procesar(ctx context.Context, productos []dto.IngestaProducto) (*dto.IngestaResponse, error) {
	if len(productos) == 0 {
		return nil, apierror.BadRequest("Debe enviar al menos un producto")
	}

	// Validación fail-fast, mensajes 1-indexados.
	for i, p := range productos {
		if strings.TrimSpace(p.Codigo) == "" {
			return nil, apierror.BadRequest(fmt.Sprintf("Producto %d: El código es requerido", i+1))
		}
		if strings.TrimSpace(p.Nombre) == "" {
			return nil, apierror.BadRequest(fmt.Sprintf("Producto %d: El nombre es requerido", i+1))
		}
		if p.PrecioVenta.IsNegative() {
			return nil, apierror.BadRequest(fmt.Sprintf("Producto %d: El precio debe ser un número válido mayor o igual a 0", i+1))
		}
		if p.Stock < 0 {
			return nil, apierror.BadRequest(fmt.Sprintf("Producto %d: El stock debe ser un número válido mayor o igual a 0", i+1))
		}
		if p.ProveedorID == 0 || p.CategoriaID == 0 || p.IvaID == 0 || p.UtilidadID == 0 {
			return nil, apierror.BadRequest(fmt.Sprintf("Producto %d: Faltan campos requeridos (proveedor, categoría, IVA o utilidad)", i+1))
		}
	}

	proveedorIDs := idsUnicos(productos, func(p dto.IngestaProducto) uint { return p.ProveedorID })
	categoriaIDs := idsUnicos(productos, func(p dto.IngestaProducto) uint { return p.CategoriaID })

	if ok, err := s.proveedorRepo.ExistenTodos(ctx, proveedorIDs); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.BadRequest("Uno o más proveedores no existen")
	}
	if ok, err := s.categoriaRepo.ExistenTodas(ctx, categoriaIDs); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.BadRequest("Una o más categorías no existen")
	}

	codigos := make([]string, 0, len(productos))
	for _, p := range productos {
		codigos = append(codigos, p.Codigo)
	}
	existentes, err := s.repo.PorCodigos(ctx, codigos)
	if err != nil {
		return nil, err
	}

	var creados, actualizados int
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, p := range productos {
			if existente, ok := existentes[p.Codigo]; ok {
				// Códigos repetidos en el lote acumulan cada uno su
				// propia cantidad.
				if err := s.repo.AcumularStockTx(tx, p.Codigo, p.Stock); err != nil {
					return err
				}
				if p.Stock > 0 {
					if err := s.registroRepo.CrearInventarioTx(tx, &model.RegistroInventario{
						ProductoRID:   existente.ID,
						Fecha:         time.Now(),
						TipoOperacion: model.OperacionEntrada,
						Cantidad:      p.Stock,
						Nombre:        existente.Nombre,
					}); err != nil {
						return err
					}
				}
				actualizados++
				continue
			}

			nuevo := model.Producto{
				Codigo:      p.Codigo,
				Nombre:      p.Nombre,
				PrecioVenta: p.PrecioVenta,
				Stock:       p.Stock,
				ProveedorID: p.ProveedorID,
				CategoriaID: p.CategoriaID,
				IvaID:       p.IvaID,
				UtilidadID:  p.UtilidadID,
			}
			if err := s.repo.CrearTx(tx, &nuevo); err != nil {
				return err
			}
			// Igual que el alta individual: sin stock inicial no se
			// registra movimiento.
			if nuevo.Stock > 0 {
				if err := s.registroRepo.CrearInventarioTx(tx, &model.RegistroInventario{
					ProductoRID:   nuevo.ID,
					Fecha:         time.Now(),
					TipoOperacion: model.OperacionEntrada,
					Cantidad:      nuevo.Stock,
					Nombre:        nuevo.Nombre,
				}); err != nil {
					return err
				}
			}
			// Un segundo descriptor con el mismo código dentro del lote
			// debe acumular, no duplicar la fila.
			existentes[p.Codigo] = nuevo
			creados++
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	invalidarSalidasCache(s.rdb)

	return &dto.IngestaResponse{
		Success:               true,
		Message:               "Operación completada correctamente",
		ProductosCreados:      creados,
		ProductosActualizados: actualizados,
	}, nil
}

func idsUnicos(productos []dto.IngestaProducto, pick func(dto.IngestaProducto) uint) []uint {
	vistos := make(map[uint]bool, len(productos))
	ids := make([]uint, 0, len(productos))
	for _, p := range productos {
		id := pick(p)
		if !vistos[id] {
			vistos[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
