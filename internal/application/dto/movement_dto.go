package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse movimiento de inventario (kardex del producto).
type MovementResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	StockAfter decimal.Decimal `json:"stock_after"`
	CostAfter  decimal.Decimal `json:"cost_after"`
	Reference  string          `json:"reference,omitempty"`
	Date       string          `json:"date"`
	CreatedBy  string          `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
