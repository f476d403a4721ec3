package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/purchasing"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "0,00",
		"1134":       "1.134,00",
		"1234.5":     "1.234,50",
		"49382.675":  "49.382,68",
		"1000000.01": "1.000.000,01",
		"-2500":      "-2.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "10,5%", formatPercent(decimal.RequireFromString("10.5")))
	assert.Equal(t, "-", formatPercent(decimal.Zero))
}

func TestGeneratePurchasePDF(t *testing.T) {
	d := decimal.RequireFromString
	doc := purchasing.PurchaseDocument{
		Purchase: &entity.Purchase{
			ID: "p1", InvoiceNumber: "A-0001-00000123", Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			GrossSubtotal: d("1000"), BonificationTotal: d("100"), NetSubtotal: d("900"),
			VATTotal: d("189"), InternalTaxTotal: d("45"), GrandTotal: d("1134"),
		},
		Company:  &entity.Company{Name: "Distribuidora Sur", TaxID: "30-71234567-1"},
		Supplier: &entity.Supplier{Name: "Lácteos del Sur", TaxID: "00-05123456-0"},
		Lines: []purchasing.PurchaseLineForPDF{{
			PurchaseItem: entity.PurchaseItem{
				Quantity: d("10"), UnitNetCost: d("100"), BonificationPercent: d("10"),
				VATPercent: d("21"), Total: d("1134"),
			},
			ProductCode: "A1", ProductName: "Yerba 1kg",
		}},
	}

	out, err := NewMarotoPDFGenerator().GeneratePurchasePDF(context.Background(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
