// Package currencyutils formats amounts for display.
package currencyutils

import (
	"strings"

	"fjacquet/voice-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Symbol returns the display symbol of currency, or "" when it has none.
func Symbol(currency models.Currency) string {
	switch currency {
	case models.CurrencyINR:
		return "₹"
	case models.CurrencyUSD:
		return "$"
	case models.CurrencyEUR:
		return "€"
	}
	return ""
}

// FormatAmount formats a decimal amount with two decimal places and the
// currency symbol. Rupee amounts use Indian digit grouping ("₹1,50,000.00"),
// other currencies are grouped by thousands ("$1,234.50").
func FormatAmount(amount decimal.Decimal, currency models.Currency) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	intPart, frac := fixed, ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, frac = fixed[:i], fixed[i:]
	}

	var grouped string
	if currency == models.CurrencyINR {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupThousands(intPart)
	}

	symbol := Symbol(currency)
	if symbol == "" && currency != "" {
		return sign + string(currency) + " " + grouped + frac
	}
	return sign + symbol + grouped + frac
}

// groupThousands inserts a comma every three digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian groups the last three digits, then every two (lakh, crore).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
