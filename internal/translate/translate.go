// Package translate turns non-English transcripts into English text before
// parsing. Providers are optional: a failed or disabled translation always
// leaves the transcript as spoken.
package translate

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/logging"
)

// Translator translates text between two language codes. Source may be
// "auto" for providers that detect the language.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Noop returns text unchanged. It is used when translation is disabled.
type Noop struct{}

// Translate implements Translator.
func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

// Fallback translates text with t and returns the original text whenever
// translation fails, times out or comes back empty. It never returns an error.
func Fallback(ctx context.Context, t Translator, text, source, target string, logger logging.Logger) string {
	if t == nil || strings.TrimSpace(text) == "" {
		return text
	}
	if logger == nil {
		logger = logging.Discard()
	}

	translated, err := t.Translate(ctx, text, source, target)
	if err != nil {
		logger.WithError(err).Warn("Translation failed, using original transcript",
			logging.Field{Key: logging.FieldTranscript, Value: text})
		return text
	}
	if strings.TrimSpace(translated) == "" {
		logger.Warn("Translation returned empty text, using original transcript",
			logging.Field{Key: logging.FieldTranscript, Value: text})
		return text
	}
	return translated
}

// New builds the Translator selected by cfg.Provider. An empty or "none"
// provider yields Noop.
func New(ctx context.Context, cfg config.TranslateConfig, logger logging.Logger) (Translator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", config.ProviderNone:
		return Noop{}, nil
	case config.ProviderLibre:
		return NewLibreClient(cfg, logger), nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating gemini translator: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown translation provider '%s'", cfg.Provider)
	}
}
