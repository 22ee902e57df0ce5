package service

import (
	"context"
	"strings"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ProveedorService defines the business logic contract for suppliers.
// Every mutation appends a snapshot to the supplier change log, via the
// async dispatcher when available and synchronously otherwise.
type ProveedorService interface {
	Listar(ctx context.Context) ([]dto.ProveedorData, error)
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.CrearProveedorResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProveedorRequest) error
	Desactivar(ctx context.Context, id uint) error
}

type proveedorService struct {
	repo         repository.ProveedorRepository
	registroRepo repository.RegistroRepository
	dispatcher   *worker.Dispatcher
	validate     *validator.Validate
}

func NewProveedorService(repo repository.ProveedorRepository, registroRepo repository.RegistroRepository, dispatcher *worker.Dispatcher) ProveedorService {
	return &proveedorService{
		repo:         repo,
		registroRepo: registroRepo,
		dispatcher:   dispatcher,
		validate:     validator.New(),
	}
}

func (s *proveedorService) validarDatos(nombre *string, email *string, telefono *string) *apierror.Error {
	if nombre != nil {
		limpio := strings.TrimSpace(*nombre)
		if limpio == "" {
			return apierror.BadRequest("El nombre no puede estar vacío")
		}
		if len(limpio) > 200 {
			return apierror.BadRequest("El nombre no puede exceder 200 caracteres")
		}
	}
	if email != nil && *email != "" {
		if err := s.validate.Var(*email, "email"); err != nil {
			return apierror.BadRequest("El formato del email no es válido")
		}
	}
	if telefono != nil && len(strings.TrimSpace(*telefono)) > 20 {
		return apierror.BadRequest("El teléfono no puede exceder 20 caracteres")
	}
	return nil
}

// limpiar normaliza un campo opcional: trim, y nil cuando queda vacío.
func limpiar(campo *string, lower bool) *string {
	if campo == nil {
		return nil
	}
	v := strings.TrimSpace(*campo)
	if v == "" {
		return nil
	}
	if lower {
		v = strings.ToLower(v)
	}
	return &v
}

func (s *proveedorService) registrarCambio(ctx context.Context, p *model.Proveedor) {
	job := worker.RegistroProveedorJob{
		ProveedorID: p.ID,
		Nombre:      p.Nombre,
		Vendedor:    p.Vendedor,
		Telefono:    p.Telefono,
		Email:       p.Email,
		Direccion:   p.Direccion,
		Estado:      string(p.Estado),
		FechaCambio: time.Now(),
	}
	if err := s.dispatcher.EnqueueRegistroProveedor(ctx, job); err == nil {
		return
	}
	// Queue unavailable: write the snapshot inline so the log never
	// misses a change.
	reg := model.RegistroProveedor{
		ProveedorID: job.ProveedorID,
		Nombre:      job.Nombre,
		Vendedor:    job.Vendedor,
		Telefono:    job.Telefono,
		Email:       job.Email,
		Direccion:   job.Direccion,
		Estado:      job.Estado,
		FechaCambio: job.FechaCambio,
	}
	if err := s.registroRepo.CrearProveedor(ctx, &reg); err != nil {
		log.Error().Uint("proveedor_id", p.ID).Err(err).Msg("failed to record supplier change")
	}
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorData, error) {
	proveedores, err := s.repo.ListarActivos(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProveedorData, 0, len(proveedores))
	for _, p := range proveedores {
		data = append(data, dto.ProveedorData{
			ProveedorID: p.ID,
			Nombre:      p.Nombre,
			Vendedor:    p.Vendedor,
			Telefono:    p.Telefono,
			Email:       p.Email,
			Direccion:   p.Direccion,
			Estado:      string(p.Estado),
		})
	}
	return data, nil
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.CrearProveedorResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.BadRequest("El nombre del proveedor es requerido")
	}
	if verr := s.validarDatos(&nombre, req.Email, req.Telefono); verr != nil {
		return nil, verr
	}

	duplicado, err := s.repo.ExisteNombre(ctx, nombre, 0)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, apierror.Conflict("Ya existe un proveedor activo con este nombre")
	}

	proveedor := model.Proveedor{
		Nombre:    nombre,
		Vendedor:  limpiar(req.Vendedor, false),
		Telefono:  limpiar(req.Telefono, false),
		Email:     limpiar(req.Email, true),
		Direccion: limpiar(req.Direccion, false),
		Estado:    model.ProveedorActivo,
	}
	if err := s.repo.Crear(ctx, &proveedor); err != nil {
		return nil, err
	}

	s.registrarCambio(ctx, &proveedor)

	return &dto.CrearProveedorResponse{
		Success: true,
		Message: "Proveedor registrado exitosamente",
		Data: dto.ProveedorData{
			ProveedorID: proveedor.ID,
			Nombre:      proveedor.Nombre,
			Vendedor:    proveedor.Vendedor,
			Telefono:    proveedor.Telefono,
			Email:       proveedor.Email,
			Direccion:   proveedor.Direccion,
		},
	}, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProveedorRequest) error {
	if verr := s.validarDatos(req.Nombre, req.Email, req.Telefono); verr != nil {
		return verr
	}

	if req.Nombre != nil {
		duplicado, err := s.repo.ExisteNombre(ctx, strings.TrimSpace(*req.Nombre), id)
		if err != nil {
			return err
		}
		if duplicado {
			return apierror.Conflict("Ya existe otro proveedor con este nombre")
		}
	}

	proveedor, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return apierror.NotFound("Proveedor no encontrado")
	}

	if req.Nombre != nil {
		proveedor.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Vendedor != nil {
		proveedor.Vendedor = limpiar(req.Vendedor, false)
	}
	if req.Telefono != nil {
		proveedor.Telefono = limpiar(req.Telefono, false)
	}
	if req.Email != nil {
		proveedor.Email = limpiar(req.Email, true)
	}
	if req.Direccion != nil {
		proveedor.Direccion = limpiar(req.Direccion, false)
	}

	if err := s.repo.Actualizar(ctx, proveedor); err != nil {
		return err
	}
	s.registrarCambio(ctx, proveedor)
	return nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uint) error {
	afectadas, err := s.repo.Desactivar(ctx, id)
	if err != nil {
		return err
	}
	if afectadas == 0 {
		return apierror.NotFound("Proveedor no encontrado")
	}

	if proveedor, err := s.repo.ObtenerPorID(ctx, id); err == nil {
		s.registrarCambio(ctx, proveedor)
	}
	return nil
}
