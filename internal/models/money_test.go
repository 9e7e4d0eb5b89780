package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	amount := decimal.NewFromFloat(100.50)
	money := NewMoney(amount, CurrencyINR)

	assert.Equal(t, amount, money.Amount)
	assert.Equal(t, CurrencyINR, money.Currency)
}

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		name           string
		amount         string
		currency       Currency
		expectedAmount string
		expectError    bool
	}{
		{
			name:           "ValidAmount",
			amount:         "1200.50",
			currency:       CurrencyINR,
			expectedAmount: "1200.50",
		},
		{
			name:        "InvalidAmount",
			amount:      "1.2.3",
			currency:    CurrencyUSD,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := NewMoneyFromString(tt.amount, tt.currency)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAmount, money.Amount.StringFixed(2))
			assert.Equal(t, tt.currency, money.Currency)
		})
	}
}

func TestMoney_StringAndPredicates(t *testing.T) {
	m := NewMoney(decimal.NewFromInt(300), CurrencyEUR)

	assert.Equal(t, "300.00 EUR", m.String())
	assert.True(t, m.IsPositive())
	assert.False(t, m.IsZero())
	assert.True(t, m.Equal(NewMoney(decimal.NewFromInt(300), CurrencyEUR)))
	assert.False(t, m.Equal(NewMoney(decimal.NewFromInt(300), CurrencyUSD)))
}
