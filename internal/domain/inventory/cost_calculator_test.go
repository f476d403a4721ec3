package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/distribuidora-api/internal/domain/inventory"
)

func TestWeightedAverageCost(t *testing.T) {
	cases := []struct {
		name                       string
		stock, cost, qtyIn, costIn string
		want                       string
	}{
		{"sin stock previo", "0", "0", "10", "90", "90"},
		{"promedio", "10", "100", "10", "80", "90"},
		{"stock negativo no aporta", "-5", "100", "10", "80", "80"},
		{"sin ingreso conserva costo", "0", "55", "0", "0", "55"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.WeightedAverageCost(
				decimal.RequireFromString(tc.stock), decimal.RequireFromString(tc.cost),
				decimal.RequireFromString(tc.qtyIn), decimal.RequireFromString(tc.costIn),
			)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "obtenido %s", got)
		})
	}
}
