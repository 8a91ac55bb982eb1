package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Price is a currency amount. Upstream data is not normalized: prices arrive
// either as plain numbers or as formatted strings like "₹49.00", so decoding
// strips everything except digits and the decimal point before parsing.
type Price struct {
	dec decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{dec: d}
}

func PriceFromFloat(f float64) Price {
	return Price{dec: decimal.NewFromFloat(f)}
}

// ParsePrice parses a currency string, tolerating symbols and separators.
func ParsePrice(s string) (Price, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return Price{}, fmt.Errorf("price %q has no numeric value", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Price{}, fmt.Errorf("price %q: %w", s, err)
	}
	return Price{dec: d}, nil
}

func (p Price) Decimal() decimal.Decimal {
	return p.dec
}

// String returns the exact value without display rounding.
func (p Price) String() string {
	return p.dec.String()
}

// Display rounds to two fraction digits. Rounding happens only here,
// never during accumulation.
func (p Price) Display() string {
	return p.dec.StringFixed(2)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.dec.String()), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		p.dec = decimal.Zero
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParsePrice(s)
		if err != nil {
			return err
		}
		p.dec = parsed.dec
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	p.dec = d
	return nil
}

func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(p.dec.String())
}

func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		parsed, err := ParsePrice(rv.StringValue())
		if err != nil {
			return err
		}
		p.dec = parsed.dec
	case bson.TypeDouble:
		p.dec = decimal.NewFromFloat(rv.Double())
	case bson.TypeInt32:
		p.dec = decimal.NewFromInt32(rv.Int32())
	case bson.TypeInt64:
		p.dec = decimal.NewFromInt(rv.Int64())
	case bson.TypeNull:
		p.dec = decimal.Zero
	default:
		return fmt.Errorf("cannot decode %s into a price", t)
	}
	return nil
}
