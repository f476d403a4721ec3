package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase cabecera de una factura de compra a proveedor.
type Purchase struct {
	ID                string
	CompanyID         string
	SupplierID        string
	InvoiceNumber     string // ej. "A-0001-00012345"
	Date              time.Time
	GrossSubtotal     decimal.Decimal
	BonificationTotal decimal.Decimal
	NetSubtotal       decimal.Decimal
	VATTotal          decimal.Decimal
	InternalTaxTotal  decimal.Decimal
	GrandTotal        decimal.Decimal
	CreatedBy         string
	CreatedAt         time.Time
}

// PurchaseItem línea de la factura de compra con su desglose ya calculado.
type PurchaseItem struct {
	ID                  string
	PurchaseID          string
	ProductID           string
	Quantity            decimal.Decimal
	UnitNetCost         decimal.Decimal
	BonificationPercent decimal.Decimal
	InternalTaxPercent  decimal.Decimal
	VATPercent          decimal.Decimal
	NetAmount           decimal.Decimal
	VATAmount           decimal.Decimal
	InternalTaxAmount   decimal.Decimal
	Total               decimal.Decimal
}
