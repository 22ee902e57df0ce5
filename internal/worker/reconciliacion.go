package worker

// reconciliacion.go
// Background goroutine that periodically cross-checks Productos.stock
// against the signed sum of registro_inventario per product. A mismatch
// means a stock write escaped its movement log (or vice versa); it gets
// logged and alerted by email, never auto-corrected.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/infra"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReconciliacionConfig holds all dependencies for the reconciliation goroutine.
type ReconciliacionConfig struct {
	ProductoRepo repository.ProductoRepository
	RegistroRepo repository.RegistroRepository
	Mailer       *infra.Mailer
	Interval     time.Duration
}

// StartReconciliacionCron launches a background goroutine that ticks on
// cfg.Interval and audits stock against the movement log. It respects
// the context for graceful shutdown.
func StartReconciliacionCron(ctx context.Context, cfg ReconciliacionConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("reconciliacion: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reconciliacion: shutting down")
				return
			case <-ticker.C:
				runReconciliacion(ctx, cfg)
			}
		}
	}()
}

func runReconciliacion(ctx context.Context, cfg ReconciliacionConfig) {
	productos, err := cfg.ProductoRepo.ListarBasico(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reconciliacion: failed to list products")
		return
	}
	saldos, err := cfg.RegistroRepo.SaldosPorProducto(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reconciliacion: failed to aggregate movement log")
		return
	}

	var discrepancias []string
	for i := range productos {
		p := &productos[i]
		saldo, ok := saldos[p.ID]
		if !ok {
			// Product never touched the log: nothing to compare. Happens
			// for rows seeded directly in the database.
			continue
		}
		if saldo != p.Stock {
			log.Warn().
				Uint("producto_id", p.ID).
				Str("codigo", p.Codigo).
				Int("stock", p.Stock).
				Int("saldo_log", saldo).
				Msg("reconciliacion: stock does not match movement log")
			discrepancias = append(discrepancias,
				fmt.Sprintf("%s (código %s): stock=%d, log=%d", p.Nombre, p.Codigo, p.Stock, saldo))
		}
	}

	if len(discrepancias) == 0 {
		log.Debug().Int("productos", len(productos)).Msg("reconciliacion: stock consistent")
		return
	}

	if cfg.Mailer != nil {
		body := "Discrepancias entre stock y registro de inventario:\n\n" +
			strings.Join(discrepancias, "\n")
		if err := cfg.Mailer.SendAlerta("Discrepancia de inventario detectada", body); err != nil {
			log.Error().Err(err).Msg("reconciliacion: failed to send alert email")
		}
	}
}
