package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// Cost es promedio ponderado y se actualiza con cada compra; Stock también.
type Product struct {
	ID                 string
	CompanyID          string
	Code               string // código único por empresa (puede venir de la lista del proveedor)
	Name               string
	Cost               decimal.Decimal
	Price              decimal.Decimal // precio de venta
	Stock              decimal.Decimal
	VATPercent         decimal.Decimal // 21, 10.5, 27, 0
	InternalTaxPercent decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
