package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a voice entry adds or removes money.
type TransactionType string

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Currency is an ISO 4217 code detected from a currency cue.
type Currency string

// ParseCurrency maps a code (any case) to a supported Currency.
func ParseCurrency(code string) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(code))) {
	case CurrencyINR:
		return CurrencyINR, true
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencyEUR:
		return CurrencyEUR, true
	}
	return "", false
}

// ParsedVoiceCommand is the structured guess produced from a single transcript.
// It is immutable: all fields are set through CommandBuilder and read through getters.
type ParsedVoiceCommand struct {
	rawTranscript string
	amount        *decimal.Decimal
	txType        TransactionType
	category      string
	occurredAt    *time.Time
	description   string
	currency      Currency
}

// RawTranscript returns the input exactly as received.
func (c ParsedVoiceCommand) RawTranscript() string {
	return c.rawTranscript
}

// Amount returns the detected amount, or false when none was found.
func (c ParsedVoiceCommand) Amount() (decimal.Decimal, bool) {
	if c.amount == nil {
		return decimal.Zero, false
	}
	return *c.amount, true
}

// TransactionType returns INCOME or EXPENSE.
func (c ParsedVoiceCommand) TransactionType() TransactionType {
	return c.txType
}

// Category returns the matched category label, CategoryOther when unmatched.
func (c ParsedVoiceCommand) Category() string {
	return c.category
}

// OccurredAt returns the resolved date phrase, or false when none was found.
func (c ParsedVoiceCommand) OccurredAt() (time.Time, bool) {
	if c.occurredAt == nil {
		return time.Time{}, false
	}
	return *c.occurredAt, true
}

// OccurredAtOr returns the resolved date or fallback when no date phrase was found.
func (c ParsedVoiceCommand) OccurredAtOr(fallback time.Time) time.Time {
	if c.occurredAt == nil {
		return fallback
	}
	return *c.occurredAt
}

// Description returns the cleaned note. It is never empty.
func (c ParsedVoiceCommand) Description() string {
	return c.description
}

// Currency returns the detected or default currency.
func (c ParsedVoiceCommand) Currency() Currency {
	return c.currency
}

// Money returns amount and currency together when an amount is present.
func (c ParsedVoiceCommand) Money() (Money, bool) {
	amount, ok := c.Amount()
	if !ok {
		return Money{}, false
	}
	return NewMoney(amount, c.currency), true
}

// HasUsableAmount reports whether the command can be saved as a transaction:
// an amount must be present and strictly positive.
func (c ParsedVoiceCommand) HasUsableAmount() bool {
	amount, ok := c.Amount()
	return ok && amount.IsPositive()
}

// CommandBuilder provides a fluent API for constructing a ParsedVoiceCommand
type CommandBuilder struct {
	cmd ParsedVoiceCommand
}

// NewCommandBuilder creates a builder for the given transcript with default values
func NewCommandBuilder(rawTranscript string) *CommandBuilder {
	return &CommandBuilder{
		cmd: ParsedVoiceCommand{
			rawTranscript: rawTranscript,
			txType:        TransactionTypeExpense,
			category:      CategoryOther,
			currency:      DefaultCurrency,
		},
	}
}

// WithAmount sets the amount. Negative values are stored as their absolute value;
// direction is carried by the transaction type.
func (b *CommandBuilder) WithAmount(amount decimal.Decimal) *CommandBuilder {
	abs := amount.Abs()
	b.cmd.amount = &abs
	return b
}

// WithCurrency sets the currency, ignoring empty values
func (b *CommandBuilder) WithCurrency(currency Currency) *CommandBuilder {
	if currency != "" {
		b.cmd.currency = currency
	}
	return b
}

// WithTransactionType sets the transaction type, ignoring unknown values
func (b *CommandBuilder) WithTransactionType(txType TransactionType) *CommandBuilder {
	if txType.IsValid() {
		b.cmd.txType = txType
	}
	return b
}

// WithCategory sets the category label, ignoring empty values
func (b *CommandBuilder) WithCategory(category string) *CommandBuilder {
	if category != "" {
		b.cmd.category = category
	}
	return b
}

// WithOccurredAt sets the resolved date
func (b *CommandBuilder) WithOccurredAt(t time.Time) *CommandBuilder {
	b.cmd.occurredAt = &t
	return b
}

// WithDescription sets the cleaned note
func (b *CommandBuilder) WithDescription(description string) *CommandBuilder {
	b.cmd.description = description
	return b
}

// Build returns the finished command. An empty description becomes DescriptionPlaceholder.
func (b *CommandBuilder) Build() ParsedVoiceCommand {
	cmd := b.cmd
	if strings.TrimSpace(cmd.description) == "" {
		cmd.description = DescriptionPlaceholder
	}
	if cmd.amount != nil {
		amount := *cmd.amount
		cmd.amount = &amount
	}
	if cmd.occurredAt != nil {
		occurredAt := *cmd.occurredAt
		cmd.occurredAt = &occurredAt
	}
	return cmd
}
