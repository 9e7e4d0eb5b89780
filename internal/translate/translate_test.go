package translate

import (
	"context"
	"errors"
	"testing"

	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTranslator struct {
	out   string
	err   error
	calls int
}

func (s *stubTranslator) Translate(_ context.Context, _, _, _ string) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestNoop(t *testing.T) {
	out, err := Noop{}.Translate(context.Background(), "paanch sau rupees", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "paanch sau rupees", out)
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		stub     *stubTranslator
		input    string
		expected string
		warned   bool
	}{
		{"translated", &stubTranslator{out: "coffee 50"}, "कॉफी 50", "coffee 50", false},
		{"provider error", &stubTranslator{err: errors.New("boom")}, "कॉफी 50", "कॉफी 50", true},
		{"empty result", &stubTranslator{out: "  "}, "कॉफी 50", "कॉफी 50", true},
		{"blank input skips provider", &stubTranslator{out: "x"}, " ", " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewMockLogger()
			got := Fallback(context.Background(), tt.stub, tt.input, "auto", "en", logger)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.warned, len(logger.GetEntriesByLevel("WARN")) > 0)
		})
	}
}

func TestFallback_NilTranslator(t *testing.T) {
	assert.Equal(t, "tea 20", Fallback(context.Background(), nil, "tea 20", "auto", "en", nil))
}

func TestFallback_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stub := &stubTranslator{err: context.Canceled}
	assert.Equal(t, "tea 20", Fallback(ctx, stub, "tea 20", "auto", "en", nil))
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	tr, err := New(ctx, config.TranslateConfig{Provider: config.ProviderNone}, nil)
	require.NoError(t, err)
	assert.IsType(t, Noop{}, tr)

	tr, err = New(ctx, config.TranslateConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, Noop{}, tr)

	tr, err = New(ctx, config.TranslateConfig{Provider: "LIBRE", URL: "http://localhost/translate", TimeoutSeconds: 1}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LibreClient{}, tr)

	_, err = New(ctx, config.TranslateConfig{Provider: config.ProviderGemini}, nil)
	assert.Error(t, err)

	_, err = New(ctx, config.TranslateConfig{Provider: "deepl"}, nil)
	assert.EqualError(t, err, "unknown translation provider 'deepl'")
}
