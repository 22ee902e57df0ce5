package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/apierror"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/dto"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"gorm.io/gorm"
)

const fechaFormato = "2006-01-02"

// parseFecha acepta YYYY-MM-DD o RFC3339.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(fechaFormato, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FacturaService registra facturas de compra con sus detalles en una
// sola transacción. Las facturas son inmutables una vez insertadas.
type FacturaService interface {
	Listar(ctx context.Context) ([]dto.FacturaListItem, error)
	Detalles(ctx context.Context, facturaID uint) ([]dto.DetalleFacturaItem, error)
	Registrar(ctx context.Context, req dto.RegistrarFacturaRequest) (*dto.RegistrarFacturaResponse, error)
}

type facturaService struct {
	repo          repository.FacturaRepository
	proveedorRepo repository.ProveedorRepository
}

func NewFacturaService(repo repository.FacturaRepository, proveedorRepo repository.ProveedorRepository) FacturaService {
	return &facturaService{repo: repo, proveedorRepo: proveedorRepo}
}

func (s *facturaService) Listar(ctx context.Context) ([]dto.FacturaListItem, error) {
	facturas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FacturaListItem, 0, len(facturas))
	for _, f := range facturas {
		item := dto.FacturaListItem{
			FacturaID:     f.ID,
			Fecha:         f.Fecha.Format(fechaFormato),
			Total:         f.Total,
			CodigoFactura: f.CodigoFactura,
		}
		if f.Proveedor != nil {
			nombre := f.Proveedor.Nombre
			item.ProveedorNombre = &nombre
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *facturaService) Detalles(ctx context.Context, facturaID uint) ([]dto.DetalleFacturaItem, error) {
	detalles, err := s.repo.DetallesPorFactura(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	if len(detalles) == 0 {
		return nil, apierror.NotFound("Factura no encontrada")
	}
	items := make([]dto.DetalleFacturaItem, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, dto.DetalleFacturaItem{
			DetalleID:      d.ID,
			FacturaID:      d.FacturaID,
			NombreProducto: d.NombreProducto,
			Cantidad:       d.Cantidad,
			PrecioCompra:   d.PrecioCompra,
		})
	}
	return items, nil
}

func (s *facturaService) Registrar(ctx context.Context, req dto.RegistrarFacturaRequest) (*dto.RegistrarFacturaResponse, error) {
	if req.Factura == nil {
		return nil, apierror.BadRequest("Los datos de la factura son requeridos")
	}
	if req.Factura.Fecha == "" || req.Factura.Total.IsZero() || req.Factura.ProveedorID == 0 {
		return nil, apierror.BadRequest("Faltan campos requeridos (fecha, total, proveedor_id)")
	}
	if !req.Factura.Total.IsPositive() {
		return nil, apierror.BadRequest("El total debe ser un número mayor a 0")
	}
	fecha, err := parseFecha(req.Factura.Fecha)
	if err != nil {
		return nil, apierror.BadRequest("La fecha no es válida")
	}
	if len(req.Detalles) == 0 {
		return nil, apierror.BadRequest("Debe incluir al menos un detalle de factura")
	}

	for i, d := range req.Detalles {
		if strings.TrimSpace(d.NombreProducto) == "" {
			return nil, apierror.BadRequest(fmt.Sprintf("Detalle %d: El nombre del producto es requerido", i+1))
		}
		if d.Cantidad <= 0 {
			return nil, apierror.BadRequest(fmt.Sprintf("Detalle %d: La cantidad debe ser mayor a 0", i+1))
		}
		if d.PrecioCompra.IsNegative() {
			return nil, apierror.BadRequest(fmt.Sprintf("Detalle %d: El precio debe ser mayor o igual a 0", i+1))
		}
	}

	existe, err := s.proveedorRepo.Existe(ctx, req.Factura.ProveedorID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, apierror.BadRequest("El proveedor especificado no existe")
	}

	factura := model.FacturaCompra{
		Fecha:         fecha,
		Total:         req.Factura.Total,
		ProveedorID:   req.Factura.ProveedorID,
		CodigoFactura: req.Factura.CodigoFactura,
	}
	for _, d := range req.Detalles {
		factura.Detalles = append(factura.Detalles, model.DetalleFacturaCompra{
			NombreProducto: strings.TrimSpace(d.NombreProducto),
			Cantidad:       d.Cantidad,
			PrecioCompra:   d.PrecioCompra,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CrearTx(tx, &factura)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.RegistrarFacturaResponse{
		Success:            true,
		Message:            "Factura y detalles insertados correctamente",
		FacturaID:          factura.ID,
		DetallesInsertados: len(factura.Detalles),
	}, nil
}
