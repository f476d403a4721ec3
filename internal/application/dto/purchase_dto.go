package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de factura de compra tal como la edita el usuario.
// Los campos numéricos admiten texto parcial; lo no numérico vale 0.
type PurchaseLineRequest struct {
	ProductID           string      `json:"product_id,omitempty"`
	Quantity            LooseNumber `json:"quantity"`
	UnitNetCost         LooseNumber `json:"unit_net_cost"`
	BonificationPercent LooseNumber `json:"bonification_percent"`
	InternalTaxPercent  LooseNumber `json:"internal_tax_percent"`
	VATPercent          LooseNumber `json:"vat_percent"` // vacío = alícuota por defecto
}

// PurchaseTotalsRequest body para POST /api/purchases/totals (recalculo en vivo).
type PurchaseTotalsRequest struct {
	Items []PurchaseLineRequest `json:"items"`
}

// LineTotalsResponse desglose de una línea.
type LineTotalsResponse struct {
	Gross        decimal.Decimal `json:"gross"`
	Bonification decimal.Decimal `json:"bonification"`
	Net          decimal.Decimal `json:"net"`
	VATPercent   decimal.Decimal `json:"vat_percent"`
	VAT          decimal.Decimal `json:"vat"`
	InternalTax  decimal.Decimal `json:"internal_tax"`
	Total        decimal.Decimal `json:"total"`
}

// InvoiceTotalsResponse totales de la factura.
type InvoiceTotalsResponse struct {
	GrossSubtotal     decimal.Decimal `json:"gross_subtotal"`
	BonificationTotal decimal.Decimal `json:"bonification_total"`
	NetSubtotal       decimal.Decimal `json:"net_subtotal"`
	VATTotal          decimal.Decimal `json:"vat_total"`
	InternalTaxTotal  decimal.Decimal `json:"internal_tax_total"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
}

// PurchaseTotalsResponse respuesta de POST /api/purchases/totals.
type PurchaseTotalsResponse struct {
	Lines  []LineTotalsResponse  `json:"lines"`
	Totals InvoiceTotalsResponse `json:"totals"`
}

// CreatePurchaseRequest body para POST /api/purchases.
// Date en formato YYYY-MM-DD; vacío = hoy.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id" validate:"required"`
	InvoiceNumber string                `json:"invoice_number" validate:"required,max=50"`
	Date          string                `json:"date,omitempty"`
	Items         []PurchaseLineRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseItemResponse línea persistida.
type PurchaseItemResponse struct {
	ID                  string          `json:"id"`
	ProductID           string          `json:"product_id"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitNetCost         decimal.Decimal `json:"unit_net_cost"`
	BonificationPercent decimal.Decimal `json:"bonification_percent"`
	InternalTaxPercent  decimal.Decimal `json:"internal_tax_percent"`
	VATPercent          decimal.Decimal `json:"vat_percent"`
	NetAmount           decimal.Decimal `json:"net_amount"`
	VATAmount           decimal.Decimal `json:"vat_amount"`
	InternalTaxAmount   decimal.Decimal `json:"internal_tax_amount"`
	Total               decimal.Decimal `json:"total"`
}

// PurchaseResponse factura de compra con detalle.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	CompanyID     string                 `json:"company_id"`
	SupplierID    string                 `json:"supplier_id"`
	SupplierName  string                 `json:"supplier_name,omitempty"`
	InvoiceNumber string                 `json:"invoice_number"`
	Date          string                 `json:"date"`
	Totals        InvoiceTotalsResponse  `json:"totals"`
	Items         []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
