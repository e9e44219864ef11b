package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every stored Amount carries.
const Scale = 4

// Amount is a fixed-point monetary value. Every Amount is rescaled to
// exactly Scale fractional digits on construction; arithmetic is exact.
// All monetary values use decimal — never float64 for money.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero Amount.
var Zero = Amount{decimal.New(0, -Scale)}

// New rescales d to Scale fractional digits (banker's rounding) and wraps it.
func New(d decimal.Decimal) Amount {
	return Amount{d.RoundBank(Scale)}
}

// Parse reads a decimal string and rescales it to Scale fractional digits.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return New(d), nil
}

// MustParse is Parse for fixtures and tests; panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount { return Amount{a.d.Add(b.d)} }

func (a Amount) Sub(b Amount) Amount { return Amount{a.d.Sub(b.d)} }

// Cmp returns -1, 0 or +1 comparing a against b.
func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

func (a Amount) IsNegative() bool { return a.d.IsNegative() }

// String renders the shortest equivalent representation: trailing zeros
// trimmed, integral part always present ("1.5", "10", "0.0001").
func (a Amount) String() string { return a.d.String() }
