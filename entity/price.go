package entity

import (
	"database/sql/driver"
	"strconv"

	"github.com/shopspring/decimal"
)

// Price is an exact decimal money amount. On the wire it follows the
// int-or-decimal rule used everywhere in the API: whole amounts marshal
// as integers (250), anything else as a plain number (99.5).
type Price struct {
	d decimal.Decimal
}

func NewPrice(v float64) Price {
	return Price{d: decimal.NewFromFloat(v)}
}

func PriceFromDecimal(d decimal.Decimal) Price {
	return Price{d: d}
}

func (p Price) Decimal() decimal.Decimal { return p.d }

func (p Price) Float64() float64 {
	f, _ := p.d.Float64()
	return f
}

func (p Price) IsPositive() bool { return p.d.IsPositive() }

func (p Price) LessThan(o Price) bool { return p.d.LessThan(o.d) }

func (p Price) Equal(o Price) bool { return p.d.Equal(o.d) }

// String renders the wire form: no decimal point for whole amounts,
// otherwise up to two places with trailing zeros stripped.
func (p Price) String() string {
	r := p.d.Round(2)
	if r.IsInteger() {
		return strconv.FormatInt(r.IntPart(), 10)
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	return p.d.UnmarshalJSON(b)
}

func (p *Price) Scan(v any) error { return p.d.Scan(v) }

func (p Price) Value() (driver.Value, error) { return p.d.Value() }
