// Package voiceparser turns a spoken transcript into a ParsedVoiceCommand.
//
// The stages run over the same trimmed transcript: amount and currency, date,
// transaction type and category. The description is what remains once the
// matched amount and date text, filler verbs and currency words are removed.
// A Parser holds only read-only tables and may be shared between goroutines.
package voiceparser

import (
	"strings"
	"time"

	"fjacquet/voice-ledger/internal/amount"
	"fjacquet/voice-ledger/internal/categorizer"
	"fjacquet/voice-ledger/internal/dateutils"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/textutils"
)

// Parser assembles ParsedVoiceCommands.
type Parser struct {
	amounts     *amount.Extractor
	dates       *dateutils.Extractor
	types       *categorizer.TypeClassifier
	categorizer *categorizer.Categorizer
	cleaner     *textutils.DescriptionCleaner
	clock       func() time.Time
	logger      logging.Logger
}

type options struct {
	keywords        models.KeywordsConfig
	defaultCurrency models.Currency
	placeholder     string
	forwardDates    bool
	clock           func() time.Time
	logger          logging.Logger
}

// Option configures a Parser.
type Option func(*options)

// WithClock sets the source of "now" used by Parse.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger used for stage level debug output.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithKeywords replaces the built-in keyword tables. Empty sections keep
// their built-in values.
func WithKeywords(cfg models.KeywordsConfig) Option {
	return func(o *options) {
		if len(cfg.Categories) > 0 {
			o.keywords.Categories = cfg.Categories
		}
		if len(cfg.Income) > 0 {
			o.keywords.Income = cfg.Income
		}
		if len(cfg.Fillers) > 0 {
			o.keywords.Fillers = cfg.Fillers
		}
	}
}

// WithDefaultCurrency sets the currency of amounts spoken without a cue.
func WithDefaultCurrency(currency models.Currency) Option {
	return func(o *options) {
		if currency != "" {
			o.defaultCurrency = currency
		}
	}
}

// WithPlaceholder sets the description used when nothing is left after cleanup.
func WithPlaceholder(placeholder string) Option {
	return func(o *options) {
		if strings.TrimSpace(placeholder) != "" {
			o.placeholder = placeholder
		}
	}
}

// WithForwardDates toggles resolving bare weekdays to their next occurrence.
func WithForwardDates(forward bool) Option {
	return func(o *options) {
		o.forwardDates = forward
	}
}

// New creates a Parser. Without options it uses the built-in keyword tables,
// INR, forward dates and the wall clock.
func New(opts ...Option) *Parser {
	o := options{
		keywords:        models.DefaultKeywordsConfig(),
		defaultCurrency: models.DefaultCurrency,
		placeholder:     models.DescriptionPlaceholder,
		forwardDates:    true,
		clock:           time.Now,
		logger:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Parser{
		amounts:     amount.NewExtractor(o.defaultCurrency),
		dates:       dateutils.NewExtractor(o.forwardDates),
		types:       categorizer.NewTypeClassifier(o.keywords.Income),
		categorizer: categorizer.NewCategorizer(o.keywords, o.logger),
		cleaner:     textutils.NewDescriptionCleaner(o.keywords.Fillers, o.placeholder),
		clock:       o.clock,
		logger:      o.logger,
	}
}

// Trace records which text each stage matched.
type Trace struct {
	AmountText       string      `json:"amount_text,omitempty"`
	AmountKind       amount.Kind `json:"amount_kind,omitempty"`
	DateText         string      `json:"date_text,omitempty"`
	CategoryStrategy string      `json:"category_strategy,omitempty"`
	Strategies       string      `json:"strategies"`
}

// Parse parses transcript relative to the parser's clock.
func (p *Parser) Parse(transcript string) models.ParsedVoiceCommand {
	return p.ParseAt(transcript, p.clock())
}

// ParseAt parses transcript resolving relative dates against now.
func (p *Parser) ParseAt(transcript string, now time.Time) models.ParsedVoiceCommand {
	cmd, _ := p.ParseWithTrace(transcript, now)
	return cmd
}

// ParseWithTrace is ParseAt that also reports what each stage matched.
func (p *Parser) ParseWithTrace(transcript string, now time.Time) (cmd models.ParsedVoiceCommand, trace Trace) {
	defer func() {
		// a panicking stage yields the bare defaults rather than crashing the caller
		if r := recover(); r != nil {
			p.logger.Error("Parser stage panicked",
				logging.Field{Key: logging.FieldTranscript, Value: transcript},
				logging.Field{Key: logging.FieldError, Value: r})
			cmd = models.NewCommandBuilder(transcript).
				WithCurrency(p.amounts.DefaultCurrency()).
				WithDescription(p.cleaner.Placeholder()).
				Build()
			trace = Trace{}
		}
	}()

	text := strings.TrimSpace(transcript)
	log := p.logger.WithField(logging.FieldTranscript, text)
	b := models.NewCommandBuilder(transcript).WithCurrency(p.amounts.DefaultCurrency())

	var spans []textutils.Span
	if m, ok := p.amounts.Extract(text); ok {
		b.WithAmount(m.Amount).WithCurrency(m.Currency)
		spans = append(spans, textutils.Span{Start: m.Start, End: m.End})
		trace.AmountText, trace.AmountKind = m.Text, m.Kind
		log.Debug("Amount detected",
			logging.Field{Key: logging.FieldStage, Value: "amount"},
			logging.Field{Key: logging.FieldAmount, Value: m.Amount.String()},
			logging.Field{Key: logging.FieldCurrency, Value: string(m.Currency)},
			logging.Field{Key: logging.FieldMatched, Value: m.Text})
	}

	if d, ok := p.dates.Extract(text, now); ok {
		b.WithOccurredAt(d.Time)
		spans = append(spans, textutils.Span{Start: d.Start, End: d.End})
		trace.DateText = d.Text
		log.Debug("Date detected",
			logging.Field{Key: logging.FieldStage, Value: "date"},
			logging.Field{Key: logging.FieldOccurredAt, Value: d.Time.Format(time.RFC3339)},
			logging.Field{Key: logging.FieldMatched, Value: d.Text})
	}

	txType := p.types.Classify(text)
	b.WithTransactionType(txType)

	category, results := p.categorizer.CategorizeWithResults(text)
	b.WithCategory(category.Name)
	trace.CategoryStrategy = results.MatchedBy()
	trace.Strategies = results.Summary()

	b.WithDescription(p.cleaner.CleanSpans(text, spans...))
	cmd = b.Build()

	log.Debug("Transcript parsed",
		logging.Field{Key: logging.FieldType, Value: string(txType)},
		logging.Field{Key: logging.FieldCategory, Value: cmd.Category()},
		logging.Field{Key: logging.FieldStrategy, Value: trace.CategoryStrategy})
	return cmd, trace
}

// Categories lists the category names the parser can produce.
func (p *Parser) Categories() []string {
	return p.categorizer.Categories()
}

// DefaultCurrency returns the currency used when no cue is spoken.
func (p *Parser) DefaultCurrency() models.Currency {
	return p.amounts.DefaultCurrency()
}
