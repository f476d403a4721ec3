package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportRowRequest fila de la lista de precios del proveedor.
type ImportRowRequest struct {
	Code  string      `json:"code"`
	Name  string      `json:"name"`
	Cost  LooseNumber `json:"cost"`
	Price LooseNumber `json:"price"`
}

// CatalogPreviewRequest body JSON para POST /api/catalog/import/preview.
type CatalogPreviewRequest struct {
	Rows []ImportRowRequest `json:"rows" validate:"required,min=1"`
}

// ImportChangeResponse fila nueva, actualizada o sin cambios.
type ImportChangeResponse struct {
	Line              int              `json:"line"`
	Code              string           `json:"code"`
	Name              string           `json:"name"`
	ProductID         string           `json:"product_id,omitempty"`
	CurrentCost       *decimal.Decimal `json:"current_cost,omitempty"`
	NewCost           decimal.Decimal  `json:"new_cost"`
	CurrentPrice      *decimal.Decimal `json:"current_price,omitempty"`
	NewPrice          *decimal.Decimal `json:"new_price,omitempty"`
	CostChangePercent decimal.Decimal  `json:"cost_change_percent"`
}

// ImportInvalidResponse fila descartada.
type ImportInvalidResponse struct {
	Line   int    `json:"line"`
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// ImportSummary conteos por categoría.
type ImportSummary struct {
	New       int `json:"new"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Invalid   int `json:"invalid"`
}

// CatalogPreviewResponse diff listo para revisar antes de aplicar.
type CatalogPreviewResponse struct {
	PreviewID string                  `json:"preview_id"`
	ExpiresAt time.Time               `json:"expires_at"`
	Summary   ImportSummary           `json:"summary"`
	New       []ImportChangeResponse  `json:"new"`
	Updated   []ImportChangeResponse  `json:"updated"`
	Unchanged []ImportChangeResponse  `json:"unchanged"`
	Invalid   []ImportInvalidResponse `json:"invalid"`
}

// CatalogApplyResponse resultado de aplicar una vista previa.
type CatalogApplyResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
