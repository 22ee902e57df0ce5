package service

import (
	"context"
	"strings"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MovimientoService expone los dos logs append-only para consulta y
// para altas manuales hechas desde el frontend.
type MovimientoService interface {
	ListarInventario(ctx context.Context) ([]dto.MovimientoListItem, error)
	RegistrarInventario(ctx context.Context, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error)
	ListarProveedores(ctx context.Context) ([]dto.MovProveedorData, error)
	RegistrarProveedor(ctx context.Context, req dto.RegistrarMovProveedorRequest) (*dto.MovProveedorResponse, error)
}

type movimientoService struct {
	repo     repository.RegistroRepository
	validate *validator.Validate
}

func NewMovimientoService(repo repository.RegistroRepository) MovimientoService {
	return &movimientoService{repo: repo, validate: validator.New()}
}

func (s *movimientoService) ListarInventario(ctx context.Context) ([]dto.MovimientoListItem, error) {
	registros, err := s.repo.ListarInventario(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoListItem, 0, len(registros))
	for _, r := range registros {
		items = append(items, dto.MovimientoListItem{
			RegistroID:    r.ID,
			ProductoRID:   r.ProductoRID,
			Fecha:         r.Fecha.Format(fechaFormato),
			TipoOperacion: r.TipoOperacion,
			Cantidad:      r.Cantidad,
			Nombre:        r.Nombre,
		})
	}
	return items, nil
}

func (s *movimientoService) RegistrarInventario(ctx context.Context, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, apierror.BadRequest("La fecha no es válida")
	}

	registro := model.RegistroInventario{
		ProductoRID:   req.ProductoRID,
		Fecha:         fecha,
		TipoOperacion: req.TipoOperacion,
		Cantidad:      req.Cantidad,
		Nombre:        req.Nombre,
	}
	if err := s.repo.CrearInventario(ctx, &registro); err != nil {
		return nil, err
	}
	return &dto.MovimientoResponse{
		Success:       true,
		ProductoRID:   req.ProductoRID,
		Fecha:         req.Fecha,
		TipoOperacion: req.TipoOperacion,
		Cantidad:      req.Cantidad,
		Nombre:        req.Nombre,
		ID:            registro.ID,
	}, nil
}

func (s *movimientoService) ListarProveedores(ctx context.Context) ([]dto.MovProveedorData, error) {
	registros, err := s.repo.ListarProveedores(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovProveedorData, 0, len(registros))
	for _, r := range registros {
		items = append(items, dto.MovProveedorData{
			RegistroID:  r.ID,
			ProveedorID: r.ProveedorID,
			Nombre:      r.Nombre,
			Vendedor:    r.Vendedor,
			Telefono:    r.Telefono,
			Email:       r.Email,
			Direccion:   r.Direccion,
			Estado:      r.Estado,
			FechaCambio: r.FechaCambio.Format(fechaFormato),
		})
	}
	return items, nil
}

func (s *movimientoService) RegistrarProveedor(ctx context.Context, req dto.RegistrarMovProveedorRequest) (*dto.MovProveedorResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.BadRequest("El nombre no puede estar vacío")
	}
	if len(nombre) > 200 {
		return nil, apierror.BadRequest("El nombre no puede exceder 200 caracteres")
	}
	if req.Email != nil && *req.Email != "" {
		if err := s.validate.Var(*req.Email, "email"); err != nil {
			return nil, apierror.BadRequest("El formato del email no es válido")
		}
	}
	if req.Telefono != nil && len(strings.TrimSpace(*req.Telefono)) > 20 {
		return nil, apierror.BadRequest("El teléfono no puede exceder 20 caracteres")
	}
	fechaCambio, err := parseFecha(req.FechaCambio)
	if err != nil {
		return nil, apierror.BadRequest("La fecha no es válida")
	}

	registro := model.RegistroProveedor{
		ProveedorID: req.ProveedorID,
		Nombre:      nombre,
		Vendedor:    limpiar(req.Vendedor, false),
		Telefono:    limpiar(req.Telefono, false),
		Email:       limpiar(req.Email, true),
		Direccion:   limpiar(req.Direccion, false),
		Estado:      strings.ToLower(req.Estado),
		FechaCambio: fechaCambio,
	}
	if err := s.repo.CrearProveedor(ctx, &registro); err != nil {
		return nil, err
	}
	return &dto.MovProveedorResponse{
		Success: true,
		Message: "Registro de proveedor creado exitosamente",
		Data: dto.MovProveedorData{
			RegistroID:  registro.ID,
			ProveedorID: registro.ProveedorID,
			Nombre:      registro.Nombre,
			Vendedor:    registro.Vendedor,
			Telefono:    registro.Telefono,
			Email:       registro.Email,
			Direccion:   registro.Direccion,
			Estado:      registro.Estado,
			FechaCambio: req.FechaCambio,
		},
	}, nil
}
