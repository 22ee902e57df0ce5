package repository

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string, excluirID uint) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	Eliminar(ctx context.Context, id uint) (int64, error)
	Existe(ctx context.Context, id uint) (bool, error)
	ExistenTodas(ctx context.Context, ids []uint) (bool, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre_categoria ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ObtenerPorNombre performs a case-insensitive lookup. Returns
// gorm.ErrRecordNotFound when no category matches.
func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string, excluirID uint) (*model.Categoria, error) {
	var c model.Categoria
	q := r.db.WithContext(ctx).Where("LOWER(nombre_categoria) = LOWER(?)", nombre)
	if excluirID != 0 {
		q = q.Where("categoria_id <> ?", excluirID)
	}
	if err := q.First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Eliminar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Categoria{}, id)
	return res.RowsAffected, res.Error
}

func (r *categoriaRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Categoria{}).
		Where("categoria_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *categoriaRepo) ExistenTodas(ctx context.Context, ids []uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Categoria{}).
		Where("categoria_id IN ?", ids).
		Distinct("categoria_id").Count(&n).Error
	return n == int64(len(ids)), err
}
