// Package container provides dependency injection for the voice-ledger application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/voice-ledger/internal/common"
	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/store"
	"fjacquet/voice-ledger/internal/translate"
	"fjacquet/voice-ledger/internal/voiceparser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are only reachable
// through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      store.KeywordSource
	parser     *voiceparser.Parser
	translator translate.Translator
	location   *time.Location
	delimiter  rune
	closers    []io.Closer
}

// NewContainer creates and wires all application dependencies using the
// logger described by cfg.Log.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(ctx, cfg, config.NewLogger(cfg.Log))
}

// NewContainerWithLogger wires dependencies around an existing logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	location, err := cfg.Parser.Location()
	if err != nil {
		return nil, fmt.Errorf("error loading parser timezone: %w", err)
	}

	delimiter, err := common.ParseDelimiter(cfg.CSV.Delimiter)
	if err != nil {
		return nil, err
	}

	// Keyword tables
	keywordStore := store.NewKeywordStore(cfg.Keywords.File, logger)
	keywords, err := keywordStore.LoadKeywords()
	if err != nil {
		return nil, fmt.Errorf("error loading keywords: %w", err)
	}

	parser := voiceparser.New(
		voiceparser.WithLogger(logger),
		voiceparser.WithKeywords(keywords),
		voiceparser.WithDefaultCurrency(cfg.Parser.Currency()),
		voiceparser.WithPlaceholder(cfg.Parser.Placeholder),
		voiceparser.WithForwardDates(cfg.Parser.ForwardDates),
		voiceparser.WithClock(func() time.Time { return time.Now().In(location) }),
	)

	// Translation, optionally behind the Redis cache
	var closers []io.Closer
	translator, err := translate.New(ctx, cfg.Translate, logger)
	if err != nil {
		return nil, err
	}
	if c, ok := translator.(io.Closer); ok {
		closers = append(closers, c)
	}
	if cfg.Translate.Provider != config.ProviderNone && cfg.Cache.Address != "" {
		cache := translate.NewRedisCache(ctx, cfg.Cache, logger)
		closers = append(closers, cache)
		translator = translate.NewCachedTranslator(translator, cache, cfg.Cache.TTL(), logger)
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldProvider, Value: cfg.Translate.Provider},
		logging.Field{Key: logging.FieldCount, Value: len(parser.Categories())})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      keywordStore,
		parser:     parser,
		translator: translator,
		location:   location,
		delimiter:  delimiter,
		closers:    closers,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the keyword table source.
func (c *Container) GetStore() store.KeywordSource {
	return c.store
}

// GetParser returns the configured transcript parser.
func (c *Container) GetParser() *voiceparser.Parser {
	return c.parser
}

// GetTranslator returns the configured translator; translate.Noop when
// translation is disabled.
func (c *Container) GetTranslator() translate.Translator {
	return c.translator
}

// TranslationEnabled reports whether a real provider is configured.
func (c *Container) TranslationEnabled() bool {
	_, noop := c.translator.(translate.Noop)
	return !noop
}

// Translate runs the configured translator with fallback to the original
// text and the configured timeout.
func (c *Container) Translate(ctx context.Context, text string) string {
	if timeout := c.config.Translate.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return translate.Fallback(ctx, c.translator, text, c.config.Translate.Source, c.config.Translate.Target, c.logger)
}

// GetLocation returns the timezone used for reference times.
func (c *Container) GetLocation() *time.Location {
	return c.location
}

// GetDelimiter returns the CSV delimiter.
func (c *Container) GetDelimiter() rune {
	return c.delimiter
}

// Close releases translator and cache connections.
func (c *Container) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.logger.Debug("Container closed")
	return firstErr
}
