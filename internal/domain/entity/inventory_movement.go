package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN = "IN" // entrada por factura de compra
)

// InventoryMovement registra un cambio de stock y el costo promedio resultante.
// Reference apunta al documento de origen (ID de la factura de compra).
type InventoryMovement struct {
	ID         string
	CompanyID  string
	ProductID  string
	Type       string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	TotalCost  decimal.Decimal
	StockAfter decimal.Decimal
	CostAfter  decimal.Decimal
	Reference  string
	Date       time.Time
	CreatedAt  time.Time
	CreatedBy  string
}
