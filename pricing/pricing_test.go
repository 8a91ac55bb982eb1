package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariyalifarms/hariyali-backend-go/models"
)

func item(price string, qty int) models.CartItem {
	p, err := models.ParsePrice(price)
	if err != nil {
		panic(err)
	}
	return models.CartItem{ProductID: "p1", Name: "test", Price: p, Quantity: qty}
}

func TestComputeOrderTotals(t *testing.T) {
	t.Run("flat shipping and fee sum", func(t *testing.T) {
		cart := []models.CartItem{item("100", 2)}
		fees := []models.Fee{{Name: "GST", Value: models.PriceFromFloat(18)}}

		totals := ComputeOrderTotals(cart, decimal.NewFromInt(50), fees)

		assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal = %s", totals.Subtotal)
		assert.True(t, totals.Total.Equal(decimal.NewFromInt(268)), "total = %s", totals.Total)
	})

	t.Run("total equals subtotal plus shipping plus fees", func(t *testing.T) {
		cart := []models.CartItem{item("12.37", 3), item("0.01", 7), item("199.99", 1)}
		fees := []models.Fee{
			{Name: "GST", Value: models.PriceFromFloat(4.41)},
			{Name: "Packaging", Value: models.PriceFromFloat(0.09)},
		}
		shipping := decimal.RequireFromString("49.75")

		totals := ComputeOrderTotals(cart, shipping, fees)

		feeSum := decimal.Zero
		for _, f := range totals.Fees {
			feeSum = feeSum.Add(f.Value.Decimal())
		}
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Shipping).Add(feeSum)))
	})

	t.Run("formatted price string", func(t *testing.T) {
		cart := []models.CartItem{item("₹49.50", 3)}

		totals := ComputeOrderTotals(cart, decimal.Zero, nil)

		assert.Equal(t, "148.50", totals.Subtotal.StringFixed(2))
	})

	t.Run("subtotal positive for positive inputs", func(t *testing.T) {
		cart := []models.CartItem{item("0.01", 1)}

		totals := ComputeOrderTotals(cart, decimal.Zero, nil)

		assert.True(t, totals.Subtotal.IsPositive())
	})

	t.Run("no accumulation rounding", func(t *testing.T) {
		// Ten fees of 0.015 must sum to exactly 0.15, not ten
		// individually rounded 0.02s.
		fees := make([]models.Fee, 10)
		for i := range fees {
			fees[i] = models.Fee{Name: "f", Value: models.PriceFromFloat(0.015)}
		}

		totals := ComputeOrderTotals(nil, decimal.Zero, fees)

		assert.Equal(t, "0.15", totals.Total.StringFixed(2))
	})

	t.Run("pure and idempotent", func(t *testing.T) {
		cart := []models.CartItem{item("33.33", 3)}
		fees := []models.Fee{{Name: "GST", Value: models.PriceFromFloat(5)}}
		shipping := decimal.NewFromInt(20)

		first := ComputeOrderTotals(cart, shipping, fees)
		second := ComputeOrderTotals(cart, shipping, fees)

		require.True(t, first.Total.Equal(second.Total))
		require.True(t, first.Subtotal.Equal(second.Subtotal))
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := ComputeOrderTotals(nil, decimal.NewFromInt(50), nil)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Total.Equal(decimal.NewFromInt(50)))
	})

	t.Run("quantity is not clamped", func(t *testing.T) {
		cart := []models.CartItem{item("100", -1)}

		totals := ComputeOrderTotals(cart, decimal.Zero, nil)

		assert.True(t, totals.Subtotal.IsNegative())
	})
}

func TestDecrementStock(t *testing.T) {
	t.Run("normal decrement", func(t *testing.T) {
		assert.Equal(t, 7, DecrementStock(10, 3))
	})

	t.Run("oversell floors at zero", func(t *testing.T) {
		assert.Equal(t, 0, DecrementStock(2, 5))
	})

	t.Run("exact depletion", func(t *testing.T) {
		assert.Equal(t, 0, DecrementStock(4, 4))
	})

	t.Run("never negative", func(t *testing.T) {
		assert.GreaterOrEqual(t, DecrementStock(0, 100), 0)
	})
}
