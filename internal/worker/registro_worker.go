package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/model"

	"github.com/rs/zerolog/log"
)

// RegistroProveedorJob es la instantánea de proveedor que se encola al
// crear, editar o dar de baja un proveedor.
type RegistroProveedorJob struct {
	ProveedorID uint      `json:"proveedor_id"`
	Nombre      string    `json:"nombre"`
	Vendedor    *string   `json:"vendedor,omitempty"`
	Telefono    *string   `json:"telefono,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Direccion   *string   `json:"direccion,omitempty"`
	Estado      string    `json:"estado"`
	FechaCambio time.Time `json:"fecha_cambio"`
}

func processRegistroProveedor(ctx context.Context, deps Deps, payload json.RawMessage) {
	var job RegistroProveedorJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("registro_proveedor: invalid payload")
		return
	}

	reg := model.RegistroProveedor{
		ProveedorID: job.ProveedorID,
		Nombre:      job.Nombre,
		Vendedor:    job.Vendedor,
		Telefono:    job.Telefono,
		Email:       job.Email,
		Direccion:   job.Direccion,
		Estado:      job.Estado,
		FechaCambio: job.FechaCambio,
	}
	if err := deps.RegistroRepo.CrearProveedor(ctx, &reg); err != nil {
		log.Error().
			Uint("proveedor_id", job.ProveedorID).
			Err(err).
			Msg("registro_proveedor: failed to persist snapshot")
		return
	}
	log.Info().
		Uint("proveedor_id", job.ProveedorID).
		Str("estado", job.Estado).
		Msg("registro_proveedor: snapshot persisted")
}
