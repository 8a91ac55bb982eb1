package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParsePrice(t *testing.T) {
	t.Run("plain number string", func(t *testing.T) {
		p, err := ParsePrice("49.50")
		require.NoError(t, err)
		assert.Equal(t, "49.5", p.String())
	})

	t.Run("currency symbol stripped", func(t *testing.T) {
		p, err := ParsePrice("₹49.00")
		require.NoError(t, err)
		assert.Equal(t, "49.00", p.Display())
	})

	t.Run("commas and spaces stripped", func(t *testing.T) {
		p, err := ParsePrice("1,249.99")
		require.NoError(t, err)
		assert.Equal(t, "1249.99", p.Display())
	})

	t.Run("no numeric content is an error", func(t *testing.T) {
		_, err := ParsePrice("free")
		assert.Error(t, err)
	})

	t.Run("empty string is an error", func(t *testing.T) {
		_, err := ParsePrice("")
		assert.Error(t, err)
	})
}

func TestPriceJSON(t *testing.T) {
	t.Run("unmarshal number", func(t *testing.T) {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(`49.5`), &p))
		assert.Equal(t, "49.50", p.Display())
	})

	t.Run("unmarshal formatted string", func(t *testing.T) {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(`"₹49.50"`), &p))
		assert.Equal(t, "49.50", p.Display())
	})

	t.Run("unmarshal null", func(t *testing.T) {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(`null`), &p))
		assert.True(t, p.Decimal().IsZero())
	})

	t.Run("marshal is a plain number", func(t *testing.T) {
		p, _ := ParsePrice("49.50")
		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Equal(t, "49.5", string(out))
	})

	t.Run("garbage string rejected", func(t *testing.T) {
		var p Price
		assert.Error(t, json.Unmarshal([]byte(`"n/a"`), &p))
	})
}

func TestPriceBSONRoundTrip(t *testing.T) {
	type doc struct {
		Subtotal Price `bson:"subtotal"`
		Shipping Price `bson:"shipping"`
		Total    Price `bson:"total"`
	}

	subtotal, _ := ParsePrice("200")
	shipping, _ := ParsePrice("50")
	total, _ := ParsePrice("268.00")

	raw, err := bson.Marshal(doc{Subtotal: subtotal, Shipping: shipping, Total: total})
	require.NoError(t, err)

	var got doc
	require.NoError(t, bson.Unmarshal(raw, &got))

	assert.Equal(t, "200.00", got.Subtotal.Display())
	assert.Equal(t, "50.00", got.Shipping.Display())
	assert.Equal(t, "268.00", got.Total.Display())
}
