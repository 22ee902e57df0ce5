package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// AlertaStockJob se encola cuando una salida deja un producto sin stock.
type AlertaStockJob struct {
	ProductoID uint   `json:"producto_id"`
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Stock      int    `json:"stock"`
}

func processAlertaStock(_ context.Context, deps Deps, payload json.RawMessage) {
	var job AlertaStockJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("alerta_stock: invalid payload")
		return
	}

	if deps.Mailer == nil {
		log.Warn().
			Str("codigo", job.Codigo).
			Int("stock", job.Stock).
			Msg("alerta_stock: mailer not configured, alert dropped")
		return
	}

	subject := fmt.Sprintf("Alerta de stock: %s", job.Nombre)
	body := fmt.Sprintf(
		"El producto %s (código %s) quedó con stock %d tras la última salida. Reponer a la brevedad.",
		job.Nombre, job.Codigo, job.Stock)

	if err := deps.Mailer.SendAlerta(subject, body); err != nil {
		log.Error().Str("codigo", job.Codigo).Err(err).Msg("alerta_stock: failed to send email")
		return
	}
	log.Info().Str("codigo", job.Codigo).Int("stock", job.Stock).Msg("alerta_stock: email sent")
}
