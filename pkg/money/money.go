package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// FromDecimal creates a Money from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount fixed to two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format returns the amount with a currency prefix.
func (m Money) Format() string {
	return "$" + m.String()
}
