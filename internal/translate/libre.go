package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/parsererror"

	"github.com/avast/retry-go"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const providerLibre = "libretranslate"

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// LibreClient calls a LibreTranslate compatible /translate endpoint.
type LibreClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	attempts   uint
	retryDelay time.Duration
	logger     logging.Logger
}

// NewLibreClient creates a client from the translate configuration section.
// RequestsPerMinute of 0 disables client side rate limiting.
func NewLibreClient(cfg config.TranslateConfig, logger logging.Logger) *LibreClient {
	if logger == nil {
		logger = logging.Discard()
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &LibreClient{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		limiter:    limiter,
		attempts:   uint(maxRetries) + 1,
		retryDelay: 500 * time.Millisecond,
		logger:     logger.WithField(logging.FieldProvider, providerLibre),
	}
}

// Translate implements Translator. Rate limiting, transport failures and
// server errors are retried; other HTTP errors fail immediately.
func (c *LibreClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == "" {
		return text, nil
	}

	body, err := json.Marshal(libreRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("error encoding translation request: %w", err)
	}

	var translated string
	attempt := 0
	err = retry.Do(
		func() error {
			attempt++
			if err := c.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(&parsererror.TranslationError{Provider: providerLibre, Err: err})
			}
			out, err := c.post(ctx, body)
			if err != nil {
				c.logger.WithError(err).Debug("Translation attempt failed",
					logging.Field{Key: logging.FieldAttempt, Value: attempt})
				return err
			}
			translated = out
			return nil
		},
		retry.RetryIf(func(err error) bool {
			var tErr *parsererror.TranslationError
			return errors.As(err, &tErr) && tErr.Retryable()
		}),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return "", err
	}
	return translated, nil
}

func (c *LibreClient) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", retry.Unrecoverable(&parsererror.TranslationError{Provider: providerLibre, Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &parsererror.TranslationError{Provider: providerLibre, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WithError(closeErr).Warn("Failed to close response body")
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &parsererror.TranslationError{Provider: providerLibre, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &parsererror.TranslationError{
			Provider:   providerLibre,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", bytes.TrimSpace(data)),
		}
	}

	var decoded libreResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", &parsererror.TranslationError{Provider: providerLibre, StatusCode: resp.StatusCode, Err: err}
	}
	if decoded.Error != "" {
		return "", &parsererror.TranslationError{Provider: providerLibre, StatusCode: resp.StatusCode, Err: errors.New(decoded.Error)}
	}
	return decoded.TranslatedText, nil
}
