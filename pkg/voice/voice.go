// Package voice is the public entry point for parsing spoken finance
// commands such as "add dinner ₹300" or "got 2k from freelance".
//
// Parse uses the built-in keyword tables and the current time. Use
// NewParser with options for custom tables, a fixed clock or a different
// default currency.
package voice

import (
	"sync"
	"time"

	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/voiceparser"
)

type (
	// Command is the structured result of parsing one transcript.
	Command = models.ParsedVoiceCommand
	// CommandView is the flat JSON and CSV form of a Command.
	CommandView = models.CommandView
	// TransactionType is income or expense.
	TransactionType = models.TransactionType
	// Currency is an ISO 4217 code.
	Currency = models.Currency
	// Keywords are the category, income and filler tables.
	Keywords = models.KeywordsConfig
	// CategoryKeywords is one category and its keywords.
	CategoryKeywords = models.CategoryConfig
	// Parser parses transcripts. It is safe for concurrent use.
	Parser = voiceparser.Parser
	// Option configures a Parser.
	Option = voiceparser.Option
	// Trace records which fragments each stage matched.
	Trace = voiceparser.Trace
)

const (
	Income  = models.TransactionTypeIncome
	Expense = models.TransactionTypeExpense

	INR = models.CurrencyINR
	USD = models.CurrencyUSD
	EUR = models.CurrencyEUR
)

// Parser options.
var (
	WithClock           = voiceparser.WithClock
	WithKeywords        = voiceparser.WithKeywords
	WithDefaultCurrency = voiceparser.WithDefaultCurrency
	WithPlaceholder     = voiceparser.WithPlaceholder
	WithForwardDates    = voiceparser.WithForwardDates
	WithLogger          = voiceparser.WithLogger
)

var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
)

func getDefaultParser() *Parser {
	defaultParserOnce.Do(func() {
		defaultParser = voiceparser.New()
	})
	return defaultParser
}

// NewParser creates a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	return voiceparser.New(opts...)
}

// DefaultKeywords returns a copy of the built-in keyword tables.
func DefaultKeywords() Keywords {
	return models.DefaultKeywordsConfig()
}

// Parse parses transcript relative to the current time.
func Parse(transcript string) Command {
	return getDefaultParser().Parse(transcript)
}

// ParseAt parses transcript relative to now.
func ParseAt(transcript string, now time.Time) Command {
	return getDefaultParser().ParseAt(transcript, now)
}
