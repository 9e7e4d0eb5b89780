package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with currency
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency Currency        `json:"currency" yaml:"currency"`
}

// NewMoney creates a new Money instance with the given amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// NewMoneyFromString creates a new Money instance from a string amount
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return Money{
		Amount:   dec,
		Currency: currency,
	}, nil
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// String returns a string representation of the money value
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// Equal returns true if two Money values are equal (same amount and currency)
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}
