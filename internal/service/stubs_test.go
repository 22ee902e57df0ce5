package service_test

import (
	"context"
	"errors"
	"strings"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = gorm.ErrRecordNotFound

// ── stubProductoRepo ─────────────────────────────────────────────────────────

// stubProductoRepo is an in-memory ProductoRepository. DB() returns nil
// so services run their transaction closures directly.
type stubProductoRepo struct {
	productos map[uint]*model.Producto
	seq       uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) agregar(p model.Producto) *model.Producto {
	if p.ID == 0 {
		r.seq++
		p.ID = r.seq
	} else if p.ID > r.seq {
		r.seq = p.ID
	}
	r.productos[p.ID] = &p
	return r.productos[p.ID]
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	*p = *r.agregar(*p)
	return nil
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) ListarConRelaciones(_ context.Context) ([]model.Producto, error) {
	return r.listar(), nil
}

func (r *stubProductoRepo) ListarBasico(_ context.Context) ([]model.Producto, error) {
	return r.listar(), nil
}

func (r *stubProductoRepo) listar() []model.Producto {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out
}

func (r *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) ContarTotal(_ context.Context) (int64, error) {
	return int64(len(r.productos)), nil
}

func (r *stubProductoRepo) ExisteCodigo(_ context.Context, codigo string, excluirID uint) (bool, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo && p.ID != excluirID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductoRepo) PorCodigos(_ context.Context, codigos []string) (map[string]model.Producto, error) {
	m := make(map[string]model.Producto)
	for _, c := range codigos {
		for _, p := range r.productos {
			if p.Codigo == c {
				m[c] = *p
			}
		}
	}
	return m, nil
}

func (r *stubProductoRepo) ContarPorCategoria(_ context.Context, id uint) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.CategoriaID == id {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) ContarPorIva(_ context.Context, id uint) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.IvaID == id {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) ContarPorUtilidad(_ context.Context, id uint) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.UtilidadID == id {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) CrearTx(_ *gorm.DB, p *model.Producto) error {
	*p = *r.agregar(*p)
	return nil
}

func (r *stubProductoRepo) ActualizarTx(_ *gorm.DB, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) AcumularStockTx(_ *gorm.DB, codigo string, cantidad int) error {
	for _, p := range r.productos {
		if p.Codigo == codigo {
			p.Stock += cantidad
			return nil
		}
	}
	return errors.New("codigo no encontrado")
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uint, cantidad int) (int64, error) {
	p, ok := r.productos[id]
	if !ok || p.Stock < cantidad {
		return 0, nil
	}
	p.Stock -= cantidad
	return 1, nil
}

func (r *stubProductoRepo) EliminarTx(_ *gorm.DB, id uint) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── stubRegistroRepo ─────────────────────────────────────────────────────────

type stubRegistroRepo struct {
	inventario  []model.RegistroInventario
	proveedores []model.RegistroProveedor
}

func (r *stubRegistroRepo) CrearInventario(_ context.Context, reg *model.RegistroInventario) error {
	reg.ID = uint(len(r.inventario) + 1)
	r.inventario = append(r.inventario, *reg)
	return nil
}

func (r *stubRegistroRepo) CrearInventarioTx(_ *gorm.DB, reg *model.RegistroInventario) error {
	return r.CrearInventario(context.Background(), reg)
}

func (r *stubRegistroRepo) ListarInventario(_ context.Context) ([]model.RegistroInventario, error) {
	return r.inventario, nil
}

func (r *stubRegistroRepo) CrearProveedor(_ context.Context, reg *model.RegistroProveedor) error {
	reg.ID = uint(len(r.proveedores) + 1)
	r.proveedores = append(r.proveedores, *reg)
	return nil
}

func (r *stubRegistroRepo) ListarProveedores(_ context.Context) ([]model.RegistroProveedor, error) {
	return r.proveedores, nil
}

func (r *stubRegistroRepo) SaldosPorProducto(_ context.Context) (map[uint]int, error) {
	saldos := make(map[uint]int)
	for _, reg := range r.inventario {
		switch reg.TipoOperacion {
		case model.OperacionDisminuido, model.OperacionEliminado:
			saldos[reg.ProductoRID] -= reg.Cantidad
		default:
			saldos[reg.ProductoRID] += reg.Cantidad
		}
	}
	return saldos, nil
}

var _ repository.RegistroRepository = (*stubRegistroRepo)(nil)

// ── stubProveedorRepo ────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uint]*model.Proveedor
	seq         uint
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uint]*model.Proveedor)}
}

func (r *stubProveedorRepo) Crear(_ context.Context, p *model.Proveedor) error {
	r.seq++
	p.ID = r.seq
	copia := *p
	r.proveedores[p.ID] = &copia
	return nil
}

func (r *stubProveedorRepo) ObtenerPorID(_ context.Context, id uint) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProveedorRepo) ListarActivos(_ context.Context) ([]model.Proveedor, error) {
	out := []model.Proveedor{}
	for _, p := range r.proveedores {
		if p.Estado == model.ProveedorActivo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProveedorRepo) Actualizar(_ context.Context, p *model.Proveedor) error {
	copia := *p
	r.proveedores[p.ID] = &copia
	return nil
}

func (r *stubProveedorRepo) Desactivar(_ context.Context, id uint) (int64, error) {
	p, ok := r.proveedores[id]
	if !ok || p.Estado != model.ProveedorActivo {
		return 0, nil
	}
	p.Estado = model.ProveedorInactivo
	return 1, nil
}

func (r *stubProveedorRepo) ExisteNombre(_ context.Context, nombre string, excluirID uint) (bool, error) {
	for _, p := range r.proveedores {
		if strings.EqualFold(p.Nombre, nombre) && p.Estado == model.ProveedorActivo && p.ID != excluirID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProveedorRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.proveedores[id]
	return ok, nil
}

func (r *stubProveedorRepo) ExistenTodos(_ context.Context, ids []uint) (bool, error) {
	for _, id := range ids {
		if _, ok := r.proveedores[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── stubCategoriaRepo ────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uint]*model.Categoria
	seq        uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uint]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	r.seq++
	c.ID = r.seq
	copia := *c
	r.categorias[c.ID] = &copia
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	out := []model.Categoria{}
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string, excluirID uint) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.NombreCategoria, nombre) && c.ID != excluirID {
			copia := *c
			return &copia, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	copia := *c
	r.categorias[c.ID] = &copia
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uint) (int64, error) {
	if _, ok := r.categorias[id]; !ok {
		return 0, nil
	}
	delete(r.categorias, id)
	return 1, nil
}

func (r *stubCategoriaRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.categorias[id]
	return ok, nil
}

func (r *stubCategoriaRepo) ExistenTodas(_ context.Context, ids []uint) (bool, error) {
	for _, id := range ids {
		if _, ok := r.categorias[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── stubIvaRepo / stubUtilidadRepo ───────────────────────────────────────────

type tasaFila struct {
	id     uint
	tasa   decimal.Decimal
	activo bool
}

type stubTasaRepo struct {
	filas []tasaFila
	seq   uint
}

func (r *stubTasaRepo) agregar(tasa decimal.Decimal, activo bool) uint {
	r.seq++
	r.filas = append(r.filas, tasaFila{id: r.seq, tasa: tasa, activo: activo})
	return r.seq
}

func (r *stubTasaRepo) existeTasaActiva(tasa decimal.Decimal) bool {
	for _, f := range r.filas {
		if f.activo && f.tasa.Equal(tasa) {
			return true
		}
	}
	return false
}

func (r *stubTasaRepo) existe(id uint) bool {
	for _, f := range r.filas {
		if f.id == id && f.activo {
			return true
		}
	}
	return false
}

func (r *stubTasaRepo) desactivar(id uint) int64 {
	for i := range r.filas {
		if r.filas[i].id == id && r.filas[i].activo {
			r.filas[i].activo = false
			return 1
		}
	}
	return 0
}

type stubIvaRepo struct{ stubTasaRepo }

func (r *stubIvaRepo) Crear(_ context.Context, iva *model.Iva) error {
	iva.ID = r.agregar(iva.Tasa, true)
	return nil
}

func (r *stubIvaRepo) ListarActivas(_ context.Context) ([]model.Iva, error) {
	out := []model.Iva{}
	for _, f := range r.filas {
		if f.activo {
			out = append(out, model.Iva{ID: f.id, Tasa: f.tasa, Activo: true})
		}
	}
	return out, nil
}

func (r *stubIvaRepo) ObtenerActiva(_ context.Context, id uint) (*model.Iva, error) {
	for _, f := range r.filas {
		if f.id == id && f.activo {
			return &model.Iva{ID: f.id, Tasa: f.tasa, Activo: true}, nil
		}
	}
	return nil, errNotFound
}

func (r *stubIvaRepo) ExisteTasaActiva(_ context.Context, tasa decimal.Decimal) (bool, error) {
	return r.existeTasaActiva(tasa), nil
}

func (r *stubIvaRepo) Desactivar(_ context.Context, id uint) (int64, error) {
	return r.desactivar(id), nil
}

func (r *stubIvaRepo) Existe(_ context.Context, id uint) (bool, error) {
	return r.existe(id), nil
}

var _ repository.IvaRepository = (*stubIvaRepo)(nil)

type stubUtilidadRepo struct{ stubTasaRepo }

func (r *stubUtilidadRepo) Crear(_ context.Context, u *model.Utilidad) error {
	u.ID = r.agregar(u.Tasa, true)
	return nil
}

func (r *stubUtilidadRepo) ListarActivas(_ context.Context) ([]model.Utilidad, error) {
	out := []model.Utilidad{}
	for _, f := range r.filas {
		if f.activo {
			out = append(out, model.Utilidad{ID: f.id, Tasa: f.tasa, Activo: true})
		}
	}
	return out, nil
}

func (r *stubUtilidadRepo) ObtenerActiva(_ context.Context, id uint) (*model.Utilidad, error) {
	for _, f := range r.filas {
		if f.id == id && f.activo {
			return &model.Utilidad{ID: f.id, Tasa: f.tasa, Activo: true}, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUtilidadRepo) ExisteTasaActiva(_ context.Context, tasa decimal.Decimal) (bool, error) {
	return r.existeTasaActiva(tasa), nil
}

func (r *stubUtilidadRepo) Desactivar(_ context.Context, id uint) (int64, error) {
	return r.desactivar(id), nil
}

func (r *stubUtilidadRepo) Existe(_ context.Context, id uint) (bool, error) {
	return r.existe(id), nil
}

var _ repository.UtilidadRepository = (*stubUtilidadRepo)(nil)

// ── stubFacturaRepo ──────────────────────────────────────────────────────────

type stubFacturaRepo struct {
	facturas []model.FacturaCompra
	seq      uint
}

func (r *stubFacturaRepo) Listar(_ context.Context) ([]model.FacturaCompra, error) {
	return r.facturas, nil
}

func (r *stubFacturaRepo) DetallesPorFactura(_ context.Context, facturaID uint) ([]model.DetalleFacturaCompra, error) {
	for _, f := range r.facturas {
		if f.ID == facturaID {
			return f.Detalles, nil
		}
	}
	return nil, nil
}

func (r *stubFacturaRepo) CrearTx(_ *gorm.DB, f *model.FacturaCompra) error {
	r.seq++
	f.ID = r.seq
	for i := range f.Detalles {
		f.Detalles[i].ID = uint(i + 1)
		f.Detalles[i].FacturaID = f.ID
	}
	r.facturas = append(r.facturas, *f)
	return nil
}

func (r *stubFacturaRepo) Existe(_ context.Context, id uint) (bool, error) {
	for _, f := range r.facturas {
		if f.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubFacturaRepo) DB() *gorm.DB { return nil }

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)
