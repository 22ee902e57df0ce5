package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const salidasCacheTTL = 60 * time.Second

// SalidaService maneja las ventas: listado de productos vendibles
// (cacheado) y el descuento de stock por lotes, todo-o-nada.
type SalidaService interface {
	ListarDisponibles(ctx context.Context) ([]dto.SalidaProducto, error)
	RegistrarSalidas(ctx context.Context, ventas []dto.SalidaRequest) (*dto.SalidaResponse, error)
}

type salidaService struct {
	repo         repository.ProductoRepository
	registroRepo repository.RegistroRepository
	dispatcher   *worker.Dispatcher
	rdb          *redis.Client
}

func NewSalidaService(
	repo repository.ProductoRepository,
	registroRepo repository.RegistroRepository,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
) SalidaService {
	return &salidaService{
		repo:         repo,
		registroRepo: registroRepo,
		dispatcher:   dispatcher,
		rdb:          rdb,
	}
}

func (s *salidaService) ListarDisponibles(ctx context.Context) ([]dto.SalidaProducto, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, salidasCacheKey).Bytes(); err == nil {
			var items []dto.SalidaProducto
			if jsonErr := json.Unmarshal(cached, &items); jsonErr == nil {
				return items, nil
			}
		}
	}

	productos, err := s.repo.ListarBasico(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalidaProducto, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.SalidaProducto{
			ProductoID:  p.ID,
			Nombre:      p.Nombre,
			Stock:       p.Stock,
			PrecioVenta: p.PrecioVenta,
		})
	}

	// Best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(items); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), salidasCacheKey, b, salidasCacheTTL).Err()
		}
	}
	return items, nil
}

func (s *salidaService) RegistrarSalidas(ctx context.Context, ventas []dto.SalidaRequest) (*dto.SalidaResponse, error) {
	if len(ventas) == 0 {
		return nil, apierror.BadRequest("Debe enviar al menos una venta")
	}

	for i, v := range ventas {
		if v.ID() == 0 {
			return nil, apierror.BadRequest(fmt.Sprintf("Venta %d: El ID del producto es requerido", i+1))
		}
		if v.Cantidad <= 0 {
			return nil, apierror.BadRequest(fmt.Sprintf("Venta %d: La cantidad debe ser un número mayor a 0", i+1))
		}
	}

	// Pase de disponibilidad. Entradas repetidas del mismo producto
	// agotan el stock de forma acumulativa dentro del lote.
	productos := make(map[uint]*model.Producto, len(ventas))
	restante := make(map[uint]int, len(ventas))
	for _, v := range ventas {
		id := v.ID()
		producto, ok := productos[id]
		if !ok {
			p, err := s.repo.ObtenerPorID(ctx, id)
			if err != nil {
				return nil, apierror.BadRequest(fmt.Sprintf("Producto con ID %d no existe", id))
			}
			productos[id] = p
			restante[id] = p.Stock
			producto = p
		}
		if restante[id] < v.Cantidad {
			return nil, apierror.ConflictData(
				fmt.Sprintf("Stock insuficiente para %s", producto.Nombre),
				map[string]interface{}{
					"producto":            producto.Nombre,
					"stock_disponible":    restante[id],
					"cantidad_solicitada": v.Cantidad,
				},
			)
		}
		restante[id] -= v.Cantidad
	}

	// Descuento condicional por entrada: la cláusula stock >= cantidad
	// revalida contra escrituras concurrentes posteriores al pase de
	// disponibilidad; 0 filas afectadas aborta todo el lote.
	detalles := make([]dto.SalidaDetalle, 0, len(ventas))
	var conflicto *apierror.Error
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, v := range ventas {
			id := v.ID()
			producto := productos[id]

			afectadas, err := s.repo.DescontarStockTx(tx, id, v.Cantidad)
			if err != nil {
				return err
			}
			if afectadas == 0 {
				conflicto = apierror.ConflictData(
					fmt.Sprintf("Stock insuficiente para %s", producto.Nombre),
					map[string]interface{}{
						"producto":            producto.Nombre,
						"stock_disponible":    producto.Stock,
						"cantidad_solicitada": v.Cantidad,
					},
				)
				return conflicto
			}

			if err := s.registroRepo.CrearInventarioTx(tx, &model.RegistroInventario{
				ProductoRID:   id,
				Fecha:         time.Now(),
				TipoOperacion: model.OperacionDisminuido,
				Cantidad:      v.Cantidad,
				Nombre:        producto.Nombre,
			}); err != nil {
				return err
			}

			detalles = append(detalles, dto.SalidaDetalle{ProductoID: id, CantidadVendida: v.Cantidad})
		}
		return nil
	})
	if txErr != nil {
		if conflicto != nil {
			return nil, conflicto
		}
		return nil, txErr
	}

	invalidarSalidasCache(s.rdb)

	// Productos que quedaron en cero disparan una alerta asíncrona.
	for id, stock := range restante {
		if stock == 0 {
			p := productos[id]
			job := worker.AlertaStockJob{ProductoID: id, Codigo: p.Codigo, Nombre: p.Nombre, Stock: 0}
			if err := s.dispatcher.EnqueueAlertaStock(ctx, job); err != nil {
				log.Debug().Uint("producto_id", id).Err(err).Msg("stock alert not enqueued")
			}
		}
	}

	return &dto.SalidaResponse{
		Success:               true,
		Message:               "Stock actualizado correctamente",
		ProductosActualizados: len(detalles),
		Detalles:              detalles,
	}, nil
}
