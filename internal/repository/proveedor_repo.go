package repository

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Proveedor, error)
	ListarActivos(ctx context.Context) ([]model.Proveedor, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error
	// Desactivar marks a supplier inactive and reports rows affected,
	// so callers can distinguish "not found" from success.
	Desactivar(ctx context.Context, id uint) (int64, error)
	ExisteNombre(ctx context.Context, nombre string, excluirID uint) (bool, error)
	Existe(ctx context.Context, id uint) (bool, error)
	// ExistenTodos reports whether every id in the set references a row.
	ExistenTodos(ctx context.Context, ids []uint) (bool, error)
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Proveedor, error) {
	var p model.Proveedor
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) ListarActivos(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).
		Where("estado = ?", model.ProveedorActivo).
		Order("nombre ASC").
		Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) Actualizar(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Desactivar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("proveedor_id = ? AND estado = ?", id, model.ProveedorActivo).
		Update("estado", model.ProveedorInactivo)
	return res.RowsAffected, res.Error
}

func (r *proveedorRepo) ExisteNombre(ctx context.Context, nombre string, excluirID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("LOWER(nombre) = LOWER(?) AND estado = ?", nombre, model.ProveedorActivo)
	if excluirID != 0 {
		q = q.Where("proveedor_id <> ?", excluirID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *proveedorRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("proveedor_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *proveedorRepo) ExistenTodos(ctx context.Context, ids []uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("proveedor_id IN ?", ids).
		Distinct("proveedor_id").Count(&n).Error
	return n == int64(len(ids)), err
}
