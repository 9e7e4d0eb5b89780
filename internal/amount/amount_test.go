package amount

import (
	"testing"

	"fjacquet/voice-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   string
		currency models.Currency
		kind     Kind
		text     string
	}{
		{name: "rupee symbol", input: "add dinner ₹300", amount: "300", currency: models.CurrencyINR, kind: KindDigits, text: "₹300"},
		{name: "rs prefix with separators", input: "Rs 1,200.50 groceries", amount: "1200.50", currency: models.CurrencyINR, kind: KindDigits, text: "Rs 1,200.50"},
		{name: "rupees suffix", input: "300 rupees", amount: "300", currency: models.CurrencyINR, kind: KindDigits, text: "300 rupees"},
		{name: "rupees prefix", input: "rupees 450 for lunch", amount: "450", currency: models.CurrencyINR, kind: KindDigits, text: "rupees 450"},
		{name: "dollar symbol", input: "$25 uber", amount: "25", currency: models.CurrencyUSD, kind: KindDigits, text: "$25"},
		{name: "dollars suffix", input: "paid 40 dollars for cab", amount: "40", currency: models.CurrencyUSD, kind: KindDigits, text: "40 dollars"},
		{name: "euro symbol", input: "€15 coffee", amount: "15", currency: models.CurrencyEUR, kind: KindDigits, text: "€15"},
		{name: "euros suffix", input: "20 euros", amount: "20", currency: models.CurrencyEUR, kind: KindDigits, text: "20 euros"},
		{name: "plain number defaults", input: "spent 200 on travel", amount: "200", currency: models.CurrencyINR, kind: KindDigits, text: "200"},
		{name: "plain number before exclamation", input: "lunch 300!", amount: "300", currency: models.CurrencyINR, kind: KindDigits, text: "300"},
		{name: "plain number before question mark", input: "dinner 300?", amount: "300", currency: models.CurrencyINR, kind: KindDigits, text: "300"},
		{name: "plain number in brackets", input: "lunch (300)", amount: "300", currency: models.CurrencyINR, kind: KindDigits, text: "300"},
		{name: "plain number ends sentence", input: "taxi 1,250.", amount: "1250", currency: models.CurrencyINR, kind: KindDigits, text: "1,250"},
		{name: "k suffix", input: "2k for shopping", amount: "2000", currency: models.CurrencyINR, kind: KindDigits, text: "2k"},
		{name: "rupee before dollar", input: "₹300 or 20 dollars", amount: "300", currency: models.CurrencyINR, kind: KindDigits, text: "₹300"},
		{name: "tagged before untagged", input: "5 coffees for 120 rupees", amount: "120", currency: models.CurrencyINR, kind: KindDigits, text: "120 rupees"},
		{name: "unparseable match falls through", input: "rs 1.2.3 then 40 dollars", amount: "40", currency: models.CurrencyUSD, kind: KindDigits, text: "40 dollars"},
		{name: "english words", input: "two thousand for rent", amount: "2000", currency: models.CurrencyINR, kind: KindWords, text: "two thousand"},
		{name: "hinglish words with rupees", input: "paanch sau rupees groceries", amount: "500", currency: models.CurrencyINR, kind: KindWords, text: "paanch sau rupees"},
		{name: "words with dollars", input: "fifty dollars", amount: "50", currency: models.CurrencyUSD, kind: KindWords, text: "fifty dollars"},
		{name: "lone scale word", input: "hundred rupees tip", amount: "100", currency: models.CurrencyINR, kind: KindWords, text: "hundred rupees"},
	}

	extractor := NewExtractor(models.CurrencyINR)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := extractor.Extract(tt.input)
			require.True(t, ok)
			assert.True(t, m.Amount.Equal(decimal.RequireFromString(tt.amount)), "got %s", m.Amount)
			assert.Equal(t, tt.currency, m.Currency)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.text, m.Text)
			assert.Equal(t, tt.text, tt.input[m.Start:m.End])
		})
	}
}

func TestExtractor_NoAmount(t *testing.T) {
	extractor := NewExtractor(models.CurrencyINR)

	for _, input := range []string{"dinner with friends", "", "उबर"} {
		m, ok := extractor.Extract(input)
		assert.False(t, ok, input)
		assert.Equal(t, Match{}, m)
	}
}

func TestExtractor_DefaultCurrency(t *testing.T) {
	extractor := NewExtractor(models.CurrencyUSD)
	assert.Equal(t, models.CurrencyUSD, extractor.DefaultCurrency())

	m, ok := extractor.Extract("lunch 12")
	require.True(t, ok)
	assert.Equal(t, models.CurrencyUSD, m.Currency)

	// an explicit cue still wins over the default
	m, ok = extractor.Extract("lunch ₹12")
	require.True(t, ok)
	assert.Equal(t, models.CurrencyINR, m.Currency)

	assert.Equal(t, models.DefaultCurrency, NewExtractor("").DefaultCurrency())
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "1,200.50", expected: "1200.5", ok: true},
		{input: "300", expected: "300", ok: true},
		{input: "5k", expected: "5000", ok: true},
		{input: "2.5K", expected: "2500", ok: true},
		{input: "₹300", expected: "300", ok: true},
		{input: ".", ok: false},
		{input: "1.2.3", ok: false},
		{input: "", ok: false},
		{input: ",", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDigits(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got.String())
			}
		})
	}
}
