package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromDecimal(t *testing.T) {
	d := decimal.NewFromFloat(42.4242)
	assert.Equal(t, "42.42", FromDecimal(d).String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", FromDecimal(decimal.NewFromFloat(1234.5)).Format())
	assert.Equal(t, "$0.00", FromDecimal(decimal.Zero).Format())
	assert.Equal(t, "$-80.00", FromDecimal(decimal.NewFromInt(-80)).Format())
}
