package repository

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"gorm.io/gorm"
)

type FacturaRepository interface {
	Listar(ctx context.Context) ([]model.FacturaCompra, error)
	DetallesPorFactura(ctx context.Context, facturaID uint) ([]model.DetalleFacturaCompra, error)
	// CrearTx inserts the invoice header together with its lines; GORM
	// cascades the Detalles association in the same statement batch.
	CrearTx(tx *gorm.DB, f *model.FacturaCompra) error
	Existe(ctx context.Context, id uint) (bool, error)
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) Listar(ctx context.Context) ([]model.FacturaCompra, error) {
	var facturas []model.FacturaCompra
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Order("fecha DESC, factura_id DESC").
		Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) DetallesPorFactura(ctx context.Context, facturaID uint) ([]model.DetalleFacturaCompra, error) {
	var detalles []model.DetalleFacturaCompra
	err := r.db.WithContext(ctx).
		Where("factura_id = ?", facturaID).
		Order("detalle_id ASC").
		Find(&detalles).Error
	return detalles, err
}

func (r *facturaRepo) CrearTx(tx *gorm.DB, f *model.FacturaCompra) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FacturaCompra{}).
		Where("factura_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *facturaRepo) DB() *gorm.DB { return r.db }
