// Package pricing computes order totals. All functions are pure: the
// shipping charge and fee set are passed in explicitly so a checkout
// snapshots whatever configuration was current when it ran.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/hariyalifarms/hariyali-backend-go/models"
)

// Totals is the price breakdown embedded into an order at placement time.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Fees     []models.Fee
	Total    decimal.Decimal
}

// ComputeOrderTotals computes subtotal = Σ price×quantity, passes shipping
// through as a flat charge, and totals in every fee. Accumulation is exact
// decimal arithmetic; rounding to two fraction digits happens only when a
// value is displayed. Quantities are not validated here: a quantity <= 0
// produces a reduced or negative subtotal.
func ComputeOrderTotals(items []models.CartItem, shipping decimal.Decimal, fees []models.Fee) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := item.Price.Decimal().Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	total := subtotal.Add(shipping)
	for _, fee := range fees {
		total = total.Add(fee.Value.Decimal())
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Fees:     fees,
		Total:    total,
	}
}

// DecrementStock returns the stock level after an order of qty units,
// floored at zero. Overselling is allowed: ordering more than is in stock
// empties the shelf rather than failing the order.
func DecrementStock(stock, qty int) int {
	remaining := stock - qty
	if remaining < 0 {
		return 0
	}
	return remaining
}
