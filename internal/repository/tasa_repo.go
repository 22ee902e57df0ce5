package repository

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IvaRepository and UtilidadRepository are kept as separate contracts:
// the two tables share shape but evolve independently.

type IvaRepository interface {
	Crear(ctx context.Context, iva *model.Iva) error
	ListarActivas(ctx context.Context) ([]model.Iva, error)
	ObtenerActiva(ctx context.Context, id uint) (*model.Iva, error)
	ExisteTasaActiva(ctx context.Context, tasa decimal.Decimal) (bool, error)
	Desactivar(ctx context.Context, id uint) (int64, error)
	Existe(ctx context.Context, id uint) (bool, error)
}

type UtilidadRepository interface {
	Crear(ctx context.Context, u *model.Utilidad) error
	ListarActivas(ctx context.Context) ([]model.Utilidad, error)
	ObtenerActiva(ctx context.Context, id uint) (*model.Utilidad, error)
	ExisteTasaActiva(ctx context.Context, tasa decimal.Decimal) (bool, error)
	Desactivar(ctx context.Context, id uint) (int64, error)
	Existe(ctx context.Context, id uint) (bool, error)
}

type ivaRepo struct{ db *gorm.DB }

func NewIvaRepository(db *gorm.DB) IvaRepository { return &ivaRepo{db: db} }

func (r *ivaRepo) Crear(ctx context.Context, iva *model.Iva) error {
	return r.db.WithContext(ctx).Create(iva).Error
}

func (r *ivaRepo) ListarActivas(ctx context.Context) ([]model.Iva, error) {
	var ivas []model.Iva
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("tasa ASC").Find(&ivas).Error
	return ivas, err
}

func (r *ivaRepo) ObtenerActiva(ctx context.Context, id uint) (*model.Iva, error) {
	var iva model.Iva
	err := r.db.WithContext(ctx).Where("iva_id = ? AND activo = ?", id, true).First(&iva).Error
	if err != nil {
		return nil, err
	}
	return &iva, nil
}

func (r *ivaRepo) ExisteTasaActiva(ctx context.Context, tasa decimal.Decimal) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Iva{}).
		Where("tasa = ? AND activo = ?", tasa, true).Count(&n).Error
	return n > 0, err
}

func (r *ivaRepo) Desactivar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Iva{}).
		Where("iva_id = ? AND activo = ?", id, true).
		Update("activo", false)
	return res.RowsAffected, res.Error
}

func (r *ivaRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Iva{}).
		Where("iva_id = ? AND activo = ?", id, true).Count(&n).Error
	return n > 0, err
}

type utilidadRepo struct{ db *gorm.DB }

func NewUtilidadRepository(db *gorm.DB) UtilidadRepository { return &utilidadRepo{db: db} }

func (r *utilidadRepo) Crear(ctx context.Context, u *model.Utilidad) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *utilidadRepo) ListarActivas(ctx context.Context) ([]model.Utilidad, error) {
	var utilidades []model.Utilidad
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("tasa ASC").Find(&utilidades).Error
	return utilidades, err
}

func (r *utilidadRepo) ObtenerActiva(ctx context.Context, id uint) (*model.Utilidad, error) {
	var u model.Utilidad
	err := r.db.WithContext(ctx).Where("utilidad_id = ? AND activo = ?", id, true).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *utilidadRepo) ExisteTasaActiva(ctx context.Context, tasa decimal.Decimal) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Utilidad{}).
		Where("tasa = ? AND activo = ?", tasa, true).Count(&n).Error
	return n > 0, err
}

func (r *utilidadRepo) Desactivar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Utilidad{}).
		Where("utilidad_id = ? AND activo = ?", id, true).
		Update("activo", false)
	return res.RowsAffected, res.Error
}

func (r *utilidadRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Utilidad{}).
		Where("utilidad_id = ? AND activo = ?", id, true).Count(&n).Error
	return n > 0, err
}
