package service

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/shopspring/decimal"
)

// IvaService y UtilidadService comparten forma pero no mensajes:
// cada tasa valida y reporta con su propio vocabulario.

type IvaService interface {
	Listar(ctx context.Context) ([]dto.TasaListItem, error)
	Crear(ctx context.Context, req dto.CrearTasaRequest) (*dto.TasaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type UtilidadService interface {
	Listar(ctx context.Context) ([]dto.TasaListItem, error)
	Crear(ctx context.Context, req dto.CrearTasaRequest) (*dto.TasaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

var tasaCien = decimal.NewFromInt(100)

// validarTasa comprueba presencia y rango [0,100].
func validarTasa(tasa *decimal.Decimal, requeridaMsg string) (decimal.Decimal, *apierror.Error) {
	if tasa == nil {
		return decimal.Zero, apierror.BadRequest(requeridaMsg)
	}
	if tasa.IsNegative() || tasa.GreaterThan(tasaCien) {
		return decimal.Zero, apierror.BadRequest("La tasa debe estar entre 0 y 100")
	}
	return *tasa, nil
}

type ivaService struct {
	repo         repository.IvaRepository
	productoRepo repository.ProductoRepository
}

func NewIvaService(repo repository.IvaRepository, productoRepo repository.ProductoRepository) IvaService {
	return &ivaService{repo: repo, productoRepo: productoRepo}
}

func (s *ivaService) Listar(ctx context.Context) ([]dto.TasaListItem, error) {
	ivas, err := s.repo.ListarActivas(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TasaListItem, 0, len(ivas))
	for _, iva := range ivas {
		items = append(items, dto.TasaListItem{ID: iva.ID, Tasa: iva.Tasa, Activo: iva.Activo})
	}
	return items, nil
}

func (s *ivaService) Crear(ctx context.Context, req dto.CrearTasaRequest) (*dto.TasaResponse, error) {
	tasa, verr := validarTasa(req.Tasa, "La tasa de IVA es requerida")
	if verr != nil {
		return nil, verr
	}

	existe, err := s.repo.ExisteTasaActiva(ctx, tasa)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apierror.Conflict("Ya existe un IVA con esta tasa")
	}

	iva := model.Iva{Tasa: tasa, Activo: true}
	if err := s.repo.Crear(ctx, &iva); err != nil {
		return nil, err
	}
	return &dto.TasaResponse{Tasa: tasa, ID: iva.ID}, nil
}

func (s *ivaService) Eliminar(ctx context.Context, id uint) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return err
	}
	if !existe {
		return apierror.NotFound("IVA no encontrado o ya está inactivo")
	}

	asociados, err := s.productoRepo.ContarPorIva(ctx, id)
	if err != nil {
		return err
	}
	if asociados > 0 {
		return apierror.ConflictData(
			"No se puede eliminar. Hay productos asociados a este IVA",
			map[string]interface{}{"productos_asociados": asociados},
		)
	}

	_, err = s.repo.Desactivar(ctx, id)
	return err
}

type utilidadService struct {
	repo         repository.UtilidadRepository
	productoRepo repository.ProductoRepository
}

func NewUtilidadService(repo repository.UtilidadRepository, productoRepo repository.ProductoRepository) UtilidadService {
	return &utilidadService{repo: repo, productoRepo: productoRepo}
}

func (s *utilidadService) Listar(ctx context.Context) ([]dto.TasaListItem, error) {
	utilidades, err := s.repo.ListarActivas(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TasaListItem, 0, len(utilidades))
	for _, u := range utilidades {
		items = append(items, dto.TasaListItem{ID: u.ID, Tasa: u.Tasa, Activo: u.Activo})
	}
	return items, nil
}

func (s *utilidadService) Crear(ctx context.Context, req dto.CrearTasaRequest) (*dto.TasaResponse, error) {
	tasa, verr := validarTasa(req.Tasa, "La tasa es requerida")
	if verr != nil {
		return nil, verr
	}

	existe, err := s.repo.ExisteTasaActiva(ctx, tasa)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apierror.Conflict("Ya existe una utilidad con esta tasa")
	}

	u := model.Utilidad{Tasa: tasa, Activo: true}
	if err := s.repo.Crear(ctx, &u); err != nil {
		return nil, err
	}
	return &dto.TasaResponse{Success: true, Tasa: tasa, ID: u.ID}, nil
}

func (s *utilidadService) Eliminar(ctx context.Context, id uint) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return err
	}
	if !existe {
		return apierror.NotFound("Utilidad no encontrada o ya está inactiva")
	}

	asociados, err := s.productoRepo.ContarPorUtilidad(ctx, id)
	if err != nil {
		return err
	}
	if asociados > 0 {
		return apierror.ConflictData(
			"No se puede eliminar. Hay productos asociados a esta utilidad",
			map[string]interface{}{"productos_asociados": asociados},
		)
	}

	_, err = s.repo.Desactivar(ctx, id)
	return err
}
