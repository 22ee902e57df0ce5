package repository

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"gorm.io/gorm"
)

// RegistroRepository maneja los dos logs append-only: movimientos de
// inventario y cambios de proveedores. Solo inserta y lee; nunca
// actualiza ni borra filas.
type RegistroRepository interface {
	CrearInventario(ctx context.Context, reg *model.RegistroInventario) error
	CrearInventarioTx(tx *gorm.DB, reg *model.RegistroInventario) error
	ListarInventario(ctx context.Context) ([]model.RegistroInventario, error)

	CrearProveedor(ctx context.Context, reg *model.RegistroProveedor) error
	ListarProveedores(ctx context.Context) ([]model.RegistroProveedor, error)

	// SaldosPorProducto agrega el log con signo por tipo de operación:
	// entradas suman, disminuciones y eliminaciones restan, ediciones
	// llevan el delta firmado. Lo usa el cron de conciliación.
	SaldosPorProducto(ctx context.Context) (map[uint]int, error)
}

type registroRepo struct{ db *gorm.DB }

func NewRegistroRepository(db *gorm.DB) RegistroRepository { return &registroRepo{db: db} }

func (r *registroRepo) CrearInventario(ctx context.Context, reg *model.RegistroInventario) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registroRepo) CrearInventarioTx(tx *gorm.DB, reg *model.RegistroInventario) error {
	return tx.Create(reg).Error
}

func (r *registroRepo) ListarInventario(ctx context.Context) ([]model.RegistroInventario, error) {
	var registros []model.RegistroInventario
	err := r.db.WithContext(ctx).
		Order("fecha DESC, registro_id DESC").
		Find(&registros).Error
	return registros, err
}

func (r *registroRepo) CrearProveedor(ctx context.Context, reg *model.RegistroProveedor) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registroRepo) ListarProveedores(ctx context.Context) ([]model.RegistroProveedor, error) {
	var registros []model.RegistroProveedor
	err := r.db.WithContext(ctx).
		Order("fecha_cambio DESC, registro_id DESC").
		Find(&registros).Error
	return registros, err
}

func (r *registroRepo) SaldosPorProducto(ctx context.Context) (map[uint]int, error) {
	type fila struct {
		ProductoRID uint
		Saldo       int
	}
	var filas []fila
	err := r.db.WithContext(ctx).Model(&model.RegistroInventario{}).
		Select(`producto_r_id,
			SUM(CASE
				WHEN tipo_operacion = ? THEN cantidad
				WHEN tipo_operacion IN (?, ?) THEN -cantidad
				ELSE cantidad
			END) AS saldo`,
			model.OperacionEntrada, model.OperacionDisminuido, model.OperacionEliminado).
		Group("producto_r_id").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	saldos := make(map[uint]int, len(filas))
	for _, f := range filas {
		saldos[f.ProductoRID] = f.Saldo
	}
	return saldos, nil
}
