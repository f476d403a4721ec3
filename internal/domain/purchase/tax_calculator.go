// Package purchase contiene el cálculo de totales de facturas de compra
// (servicio de dominio puro, sin I/O).
//
// Orden por línea:
//
//	bruto        = cantidad * costo neto unitario
//	bonificación = bruto * %bonif / 100
//	neto         = bruto - bonificación
//	IVA          = neto * %IVA / 100
//	imp. interno = neto * %interno / 100
//
// IVA e impuestos internos se calculan sobre la misma base neta; los
// internos no integran la base del IVA. No se redondea: el redondeo es
// responsabilidad de la presentación.
package purchase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/pkg/numparse"
)

// DefaultVATPercent alícuota general de IVA (Argentina).
const DefaultVATPercent = 21

var hundred = decimal.NewFromInt(100)

// Config parametriza el calculador.
// BonificationEnabled=false reproduce el calculador simple: se ignoran las bonificaciones.
type Config struct {
	DefaultVATPercent   decimal.Decimal
	BonificationEnabled bool
}

// DefaultConfig IVA 21% y bonificaciones habilitadas.
func DefaultConfig() Config {
	return Config{
		DefaultVATPercent:   decimal.NewFromInt(DefaultVATPercent),
		BonificationEnabled: true,
	}
}

// LineItem línea de una factura de compra. VATPercent nil usa la alícuota por defecto.
type LineItem struct {
	Quantity            decimal.Decimal
	UnitNetCost         decimal.Decimal
	BonificationPercent decimal.Decimal
	InternalTaxPercent  decimal.Decimal
	VATPercent          *decimal.Decimal
}

// LineTotals desglose de una línea.
type LineTotals struct {
	Gross        decimal.Decimal
	Bonification decimal.Decimal
	Net          decimal.Decimal
	VAT          decimal.Decimal
	InternalTax  decimal.Decimal
	Total        decimal.Decimal
	VATPercent   decimal.Decimal
}

// InvoiceTotals totales de la factura; se recalculan en cada cambio, nunca se cachean.
type InvoiceTotals struct {
	GrossSubtotal     decimal.Decimal
	BonificationTotal decimal.Decimal
	NetSubtotal       decimal.Decimal
	VATTotal          decimal.Decimal
	InternalTaxTotal  decimal.Decimal
	GrandTotal        decimal.Decimal
}

// Calculator calcula totales con una configuración fija. Es seguro para uso concurrente.
type Calculator struct {
	cfg Config
}

// NewCalculator construye el calculador.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config devuelve la configuración vigente.
func (c *Calculator) Config() Config { return c.cfg }

// Line calcula el desglose de una línea.
func (c *Calculator) Line(item LineItem) LineTotals {
	vatPercent := c.cfg.DefaultVATPercent
	if item.VATPercent != nil {
		vatPercent = *item.VATPercent
	}
	gross := item.Quantity.Mul(item.UnitNetCost)
	bonif := decimal.Zero
	if c.cfg.BonificationEnabled {
		bonif = gross.Mul(item.BonificationPercent).Div(hundred)
	}
	net := gross.Sub(bonif)
	vat := net.Mul(vatPercent).Div(hundred)
	internal := net.Mul(item.InternalTaxPercent).Div(hundred)
	return LineTotals{
		Gross:        gross,
		Bonification: bonif,
		Net:          net,
		VAT:          vat,
		InternalTax:  internal,
		Total:        net.Add(vat).Add(internal),
		VATPercent:   vatPercent,
	}
}

// Compute suma los desgloses de todas las líneas. Una lista vacía da todo cero.
func (c *Calculator) Compute(items []LineItem) InvoiceTotals {
	var t InvoiceTotals
	for _, item := range items {
		l := c.Line(item)
		t.GrossSubtotal = t.GrossSubtotal.Add(l.Gross)
		t.BonificationTotal = t.BonificationTotal.Add(l.Bonification)
		t.VATTotal = t.VATTotal.Add(l.VAT)
		t.InternalTaxTotal = t.InternalTaxTotal.Add(l.InternalTax)
	}
	t.NetSubtotal = t.GrossSubtotal.Sub(t.BonificationTotal)
	t.GrandTotal = t.NetSubtotal.Add(t.VATTotal).Add(t.InternalTaxTotal)
	return t
}

// ComputeInvoiceTotals calcula con DefaultConfig.
func ComputeInvoiceTotals(items []LineItem) InvoiceTotals {
	return NewCalculator(DefaultConfig()).Compute(items)
}

// RawLineItem línea tal como llega de un formulario, campo por campo en texto.
type RawLineItem struct {
	Quantity            string
	UnitNetCost         string
	BonificationPercent string
	InternalTaxPercent  string
	VATPercent          string
}

// ParseLineItem convierte una línea cruda sin fallar nunca: un campo vacío o
// no numérico vale 0. VATPercent vacío queda nil (alícuota por defecto); con
// texto no numérico vale 0, igual que el resto de los campos.
func ParseLineItem(raw RawLineItem) LineItem {
	item := LineItem{
		Quantity:            numparse.DecimalOr(raw.Quantity, decimal.Zero),
		UnitNetCost:         numparse.DecimalOr(raw.UnitNetCost, decimal.Zero),
		BonificationPercent: numparse.DecimalOr(raw.BonificationPercent, decimal.Zero),
		InternalTaxPercent:  numparse.DecimalOr(raw.InternalTaxPercent, decimal.Zero),
	}
	if v := strings.TrimSpace(raw.VATPercent); v != "" {
		vat := numparse.DecimalOr(v, decimal.Zero)
		item.VATPercent = &vat
	}
	return item
}
