// Package amount finds the monetary figure spoken in a transcript.
//
// Patterns are tried in a fixed order and the first one that both matches and
// yields a parseable number wins: digit patterns before word patterns, and
// within each family currency-tagged patterns before the untagged fallback.
package amount

import (
	"regexp"
	"strings"

	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/numwords"

	"github.com/shopspring/decimal"
)

// Kind identifies which pattern family produced a match.
type Kind string

const (
	KindDigits Kind = "digits"
	KindWords  Kind = "words"
)

// Pattern is one entry of the ordered extraction table. An empty Currency
// means the extractor's default currency.
type Pattern struct {
	Regex    *regexp.Regexp
	Currency models.Currency
	Kind     Kind
}

// Match is the amount found in a transcript together with the exact text it
// was read from, so callers can excise it.
type Match struct {
	Amount   decimal.Decimal
	Currency models.Currency
	Kind     Kind
	Text     string
	Start    int
	End      int
}

const digits = `([\d.,]*\d[\d.,]*k?)`

var digitPatterns = []Pattern{
	{Regex: regexp.MustCompile(`(?i)₹\s*` + digits), Currency: models.CurrencyINR},
	{Regex: regexp.MustCompile(`(?i)\brs\.?\s*` + digits), Currency: models.CurrencyINR},
	{Regex: regexp.MustCompile(`(?i)\brupees?\s*` + digits), Currency: models.CurrencyINR},
	{Regex: regexp.MustCompile(`(?i)` + digits + `\s*(?:rupees?|rs\b\.?)`), Currency: models.CurrencyINR},
	{Regex: regexp.MustCompile(`(?i)\$\s*` + digits), Currency: models.CurrencyUSD},
	{Regex: regexp.MustCompile(`(?i)\bdollars?\s*` + digits), Currency: models.CurrencyUSD},
	{Regex: regexp.MustCompile(`(?i)` + digits + `\s*(?:dollars?|usd)\b`), Currency: models.CurrencyUSD},
	{Regex: regexp.MustCompile(`(?i)€\s*` + digits), Currency: models.CurrencyEUR},
	{Regex: regexp.MustCompile(`(?i)\beuros?\s*` + digits), Currency: models.CurrencyEUR},
	{Regex: regexp.MustCompile(`(?i)` + digits + `\s*(?:euros?|eur)\b`), Currency: models.CurrencyEUR},
	{Regex: regexp.MustCompile(`(?i)\b` + digits + `\b`)},
}

var wordPatterns = buildWordPatterns()

// buildWordPatterns mirrors the digit table with a run of number words in
// place of the digits.
func buildWordPatterns() []Pattern {
	token := `(?:` + strings.Join(numwords.Words(), "|") + `)\b`
	run := `(\b` + token + `(?:[\s-]+` + token + `)*)`

	return []Pattern{
		{Regex: regexp.MustCompile(`(?i)₹\s*` + run), Currency: models.CurrencyINR},
		{Regex: regexp.MustCompile(`(?i)\brs\.?\s*` + run), Currency: models.CurrencyINR},
		{Regex: regexp.MustCompile(`(?i)\brupees?\s*` + run), Currency: models.CurrencyINR},
		{Regex: regexp.MustCompile(`(?i)` + run + `\s*(?:rupees?|rs\b\.?)`), Currency: models.CurrencyINR},
		{Regex: regexp.MustCompile(`(?i)\$\s*` + run), Currency: models.CurrencyUSD},
		{Regex: regexp.MustCompile(`(?i)\bdollars?\s*` + run), Currency: models.CurrencyUSD},
		{Regex: regexp.MustCompile(`(?i)` + run + `\s*(?:dollars?|usd)\b`), Currency: models.CurrencyUSD},
		{Regex: regexp.MustCompile(`(?i)€\s*` + run), Currency: models.CurrencyEUR},
		{Regex: regexp.MustCompile(`(?i)\beuros?\s*` + run), Currency: models.CurrencyEUR},
		{Regex: regexp.MustCompile(`(?i)` + run + `\s*(?:euros?|eur)\b`), Currency: models.CurrencyEUR},
		{Regex: regexp.MustCompile(`(?i)` + run)},
	}
}

// Extractor applies the pattern tables.
type Extractor struct {
	defaultCurrency models.Currency
	digitPatterns   []Pattern
	wordPatterns    []Pattern
}

// NewExtractor creates an Extractor that tags untagged amounts with defaultCurrency.
func NewExtractor(defaultCurrency models.Currency) *Extractor {
	if defaultCurrency == "" {
		defaultCurrency = models.DefaultCurrency
	}
	return &Extractor{
		defaultCurrency: defaultCurrency,
		digitPatterns:   withKind(digitPatterns, KindDigits),
		wordPatterns:    withKind(wordPatterns, KindWords),
	}
}

func withKind(patterns []Pattern, kind Kind) []Pattern {
	out := make([]Pattern, len(patterns))
	for i, p := range patterns {
		p.Kind = kind
		out[i] = p
	}
	return out
}

// DefaultCurrency returns the currency used for untagged amounts.
func (e *Extractor) DefaultCurrency() models.Currency {
	return e.defaultCurrency
}

// Extract returns the best amount reading of text, or false when none of the
// patterns yields a number.
func (e *Extractor) Extract(text string) (Match, bool) {
	if m, ok := e.firstMatch(text, e.digitPatterns, ParseDigits); ok {
		return m, true
	}
	return e.firstMatch(text, e.wordPatterns, numwords.Normalize)
}

func (e *Extractor) firstMatch(text string, patterns []Pattern, parse func(string) (decimal.Decimal, bool)) (Match, bool) {
	for _, p := range patterns {
		loc := p.Regex.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		// the number is always the last capture group
		groupStart, groupEnd := loc[len(loc)-2], loc[len(loc)-1]
		if groupStart < 0 {
			continue
		}
		value, ok := parse(text[groupStart:groupEnd])
		if !ok {
			continue
		}
		currency := p.Currency
		if currency == "" {
			currency = e.defaultCurrency
		}
		return Match{
			Amount:   value,
			Currency: currency,
			Kind:     p.Kind,
			Text:     text[loc[0]:loc[1]],
			Start:    loc[0],
			End:      loc[1],
		}, true
	}
	return Match{}, false
}

var nonNumeric = regexp.MustCompile(`[^\d.,]`)

// ParseDigits reads a digit string such as "1,200.50" or "5k". Commas are
// thousands separators. Strings that do not form a single finite number
// (".", "1.2.3") are rejected.
func ParseDigits(s string) (decimal.Decimal, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	thousands := strings.HasSuffix(s, "k")

	cleaned := nonNumeric.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	if thousands {
		value = value.Mul(decimal.NewFromInt(1000))
	}
	return value, true
}
