package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost recalcula el costo promedio ponderado al ingresar mercadería.
// NuevoCosto = ((Stock * Costo) + (CantEntrada * CostoEntrada)) / (Stock + CantEntrada)
// Un stock negativo (ventas sin reponer) no aporta costo: se toma como 0.
func WeightedAverageCost(stock, cost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	sum := stock.Add(qtyIn)
	if sum.LessThanOrEqual(decimal.Zero) {
		return cost
	}
	num := stock.Mul(cost).Add(qtyIn.Mul(costIn))
	return num.Div(sum)
}
