// Package purchasing casos de uso de facturas de compra: recálculo de totales
// en vivo y registro de la factura con ingreso de stock.
package purchasing

import (
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain/purchase"
)

// PreviewTotals recalcula una factura en edición. No falla nunca: cada campo
// que no se pueda interpretar vale 0, así la UI puede mostrar totales mientras
// el usuario tipea.
func (uc *PurchaseUseCase) PreviewTotals(in dto.PurchaseTotalsRequest) dto.PurchaseTotalsResponse {
	items := toLineItems(in.Items)
	lines := make([]dto.LineTotalsResponse, 0, len(items))
	for _, item := range items {
		lines = append(lines, toLineTotalsResponse(uc.calc.Line(item)))
	}
	return dto.PurchaseTotalsResponse{
		Lines:  lines,
		Totals: toInvoiceTotalsResponse(uc.calc.Compute(items)),
	}
}

func toLineItems(rows []dto.PurchaseLineRequest) []purchase.LineItem {
	items := make([]purchase.LineItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, purchase.ParseLineItem(purchase.RawLineItem{
			Quantity:            string(r.Quantity),
			UnitNetCost:         string(r.UnitNetCost),
			BonificationPercent: string(r.BonificationPercent),
			InternalTaxPercent:  string(r.InternalTaxPercent),
			VATPercent:          string(r.VATPercent),
		}))
	}
	return items
}

func toLineTotalsResponse(l purchase.LineTotals) dto.LineTotalsResponse {
	return dto.LineTotalsResponse{
		Gross:        l.Gross,
		Bonification: l.Bonification,
		Net:          l.Net,
		VATPercent:   l.VATPercent,
		VAT:          l.VAT,
		InternalTax:  l.InternalTax,
		Total:        l.Total,
	}
}

func toInvoiceTotalsResponse(t purchase.InvoiceTotals) dto.InvoiceTotalsResponse {
	return dto.InvoiceTotalsResponse{
		GrossSubtotal:     t.GrossSubtotal,
		BonificationTotal: t.BonificationTotal,
		NetSubtotal:       t.NetSubtotal,
		VATTotal:          t.VATTotal,
		InternalTaxTotal:  t.InternalTaxTotal,
		GrandTotal:        t.GrandTotal,
	}
}
