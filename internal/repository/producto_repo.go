package repository

import (
	"context"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Producto, error)
	ListarConRelaciones(ctx context.Context) ([]model.Producto, error)
	ListarBasico(ctx context.Context) ([]model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	ContarTotal(ctx context.Context) (int64, error)

	// Existence / duplicate checks
	ExisteCodigo(ctx context.Context, codigo string, excluirID uint) (bool, error)
	PorCodigos(ctx context.Context, codigos []string) (map[string]model.Producto, error)
	ContarPorCategoria(ctx context.Context, categoriaID uint) (int64, error)
	ContarPorIva(ctx context.Context, ivaID uint) (int64, error)
	ContarPorUtilidad(ctx context.Context, utilidadID uint) (int64, error)

	// Used inside transactions — callers must pass the tx instance
	CrearTx(tx *gorm.DB, p *model.Producto) error
	ActualizarTx(tx *gorm.DB, p *model.Producto) error
	AcumularStockTx(tx *gorm.DB, codigo string, cantidad int) error
	// DescontarStockTx is the conditional decrement: it only fires when
	// the row still has enough stock, and reports rows affected so the
	// caller can abort the transaction on 0.
	DescontarStockTx(tx *gorm.DB, id uint, cantidad int) (int64, error)
	EliminarTx(tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) ListarConRelaciones(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Categoria").
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListarBasico(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Actualizar(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) ContarTotal(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Count(&total).Error
	return total, err
}

func (r *productoRepo) ExisteCodigo(ctx context.Context, codigo string, excluirID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Producto{}).Where("codigo = ?", codigo)
	if excluirID != 0 {
		q = q.Where("producto_id <> ?", excluirID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// PorCodigos returns the existing products keyed by codigo. Codes with
// no matching row are simply absent from the map.
func (r *productoRepo) PorCodigos(ctx context.Context, codigos []string) (map[string]model.Producto, error) {
	var existentes []model.Producto
	err := r.db.WithContext(ctx).
		Where("codigo IN ?", codigos).
		Find(&existentes).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]model.Producto, len(existentes))
	for _, p := range existentes {
		m[p.Codigo] = p
	}
	return m, nil
}

func (r *productoRepo) ContarPorCategoria(ctx context.Context, categoriaID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("categoria_id = ?", categoriaID).Count(&n).Error
	return n, err
}

func (r *productoRepo) ContarPorIva(ctx context.Context, ivaID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("iva_id = ?", ivaID).Count(&n).Error
	return n, err
}

func (r *productoRepo) ContarPorUtilidad(ctx context.Context, utilidadID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("utilidad_id = ?", utilidadID).Count(&n).Error
	return n, err
}

func (r *productoRepo) CrearTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Create(p).Error
}

func (r *productoRepo) ActualizarTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Save(p).Error
}

func (r *productoRepo) AcumularStockTx(tx *gorm.DB, codigo string, cantidad int) error {
	return tx.Model(&model.Producto{}).Where("codigo = ?", codigo).
		Update("stock", gorm.Expr("stock + ?", cantidad)).Error
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uint, cantidad int) (int64, error) {
	res := tx.Model(&model.Producto{}).
		Where("producto_id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected, res.Error
}

func (r *productoRepo) EliminarTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
