package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"gorm.io/gorm"
)

// CategoriaService defines the business logic contract for categories.
type CategoriaService interface {
	Listar(ctx context.Context) (*dto.CategoriaListResponse, error)
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaMutResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearCategoriaRequest) (*dto.CategoriaMutResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type categoriaService struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productoRepo: productoRepo}
}

func validarNombreCategoria(nombre string) (string, *apierror.Error) {
	limpio := strings.TrimSpace(nombre)
	if limpio == "" {
		return "", apierror.BadRequest("El nombre de la categoría es requerido")
	}
	if len(limpio) < 2 {
		return "", apierror.BadRequest("El nombre debe tener al menos 2 caracteres")
	}
	if len(limpio) > 100 {
		return "", apierror.BadRequest("El nombre no puede exceder 100 caracteres")
	}
	return limpio, nil
}

func (s *categoriaService) Listar(ctx context.Context) (*dto.CategoriaListResponse, error) {
	categorias, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoriaData, 0, len(categorias))
	for _, c := range categorias {
		data = append(data, dto.CategoriaData{CategoriaID: c.ID, NombreCategoria: c.NombreCategoria})
	}
	return &dto.CategoriaListResponse{Success: true, Data: data, Count: len(data)}, nil
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaMutResponse, error) {
	nombre, verr := validarNombreCategoria(req.NombreCategoria)
	if verr != nil {
		return nil, verr
	}

	if _, err := s.repo.ObtenerPorNombre(ctx, nombre, 0); err == nil {
		return nil, apierror.Conflict("Ya existe una categoría con este nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categoria := model.Categoria{NombreCategoria: nombre}
	if err := s.repo.Crear(ctx, &categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaMutResponse{
		Success: true,
		Message: "Categoría creada exitosamente",
		Data:    dto.CategoriaData{CategoriaID: categoria.ID, NombreCategoria: nombre},
	}, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.CrearCategoriaRequest) (*dto.CategoriaMutResponse, error) {
	nombre, verr := validarNombreCategoria(req.NombreCategoria)
	if verr != nil {
		return nil, verr
	}

	categoria, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Categoría no encontrada")
		}
		return nil, err
	}

	if _, err := s.repo.ObtenerPorNombre(ctx, nombre, id); err == nil {
		return nil, apierror.Conflict("Ya existe otra categoría con este nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categoria.NombreCategoria = nombre
	if err := s.repo.Actualizar(ctx, categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaMutResponse{
		Message: "Categoría actualizada exitosamente",
		Data:    dto.CategoriaData{CategoriaID: id, NombreCategoria: nombre},
	}, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uint) error {
	asociados, err := s.productoRepo.ContarPorCategoria(ctx, id)
	if err != nil {
		return err
	}
	if asociados > 0 {
		return apierror.ConflictData(
			"No se puede eliminar. La categoría tiene tareas asociadas",
			map[string]interface{}{"tareas_asociadas": asociados},
		)
	}
	afectadas, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if afectadas == 0 {
		return apierror.NotFound("Categoría no encontrada")
	}
	return nil
}
