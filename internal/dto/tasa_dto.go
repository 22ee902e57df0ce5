package dto

import "github.com/shopspring/decimal"

// CrearTasaRequest sirve tanto para IVA como para utilidad. Puntero para
// distinguir tasa ausente de tasa 0 (0% es válido).
type CrearTasaRequest struct {
	Tasa *decimal.Decimal `json:"tasa"`
}

type TasaResponse struct {
	Success bool            `json:"success,omitempty"`
	Tasa    decimal.Decimal `json:"tasa"`
	ID      uint            `json:"id"`
}

type TasaListItem struct {
	ID     uint            `json:"id"`
	Tasa   decimal.Decimal `json:"tasa"`
	Activo bool            `json:"activo"`
}
