package wealth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in major units of a currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// MoneyFromCents builds a Money from a value expressed in the currency's
// minor unit. The shift uses the ISO 4217 fraction for the currency, so a
// CAD value moves exactly two places and the conversion stays exact.
func MoneyFromCents(cents int64, cur string) Money {
	// to get a never nil currency the money constructor has to be called
	c := *money.New(0, cur).Currency()
	return Money{value: decimal.New(cents, 0).Shift(-int32(c.Fraction)), cur: cur}
}

// Currency returns the money's ISO 4217 currency code.
func (m Money) Currency() string { return m.cur }

// Decimal returns the exact major-unit value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String returns the plain decimal representation, without currency symbol
// or grouping. Report lines and summary values are machine-readable, so the
// locale formatter stays out of the way here.
func (m Money) String() string { return m.value.String() }

func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
