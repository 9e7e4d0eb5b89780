package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/parsererror"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const providerGemini = "gemini"

// GeminiClient translates through a Gemini generative model.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	logger    logging.Logger
}

// NewGeminiClient creates a client authenticated with cfg.APIKey.
func NewGeminiClient(ctx context.Context, cfg config.TranslateConfig, logger logging.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, &parsererror.ValidationError{Field: "translate.api_key", Reason: "required for the gemini provider"}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, &parsererror.TranslationError{Provider: providerGemini, Err: err}
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.Model,
		logger:    logger.WithField(logging.FieldProvider, providerGemini),
	}, nil
}

// Translate implements Translator.
func (g *GeminiClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == "" {
		return text, nil
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0)

	res, err := model.GenerateContent(ctx, genai.Text(buildTranslationPrompt(text, source, target)))
	if err != nil {
		return "", &parsererror.TranslationError{Provider: providerGemini, Err: err}
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", &parsererror.TranslationError{Provider: providerGemini, Err: errors.New("no response from model")}
	}

	part, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", &parsererror.TranslationError{Provider: providerGemini, Err: errors.New("unexpected response format")}
	}

	translated := cleanModelOutput(string(part))
	g.logger.Debug("Transcript translated",
		logging.Field{Key: logging.FieldTranscript, Value: text})
	return translated, nil
}

// Close releases the underlying client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func buildTranslationPrompt(text, source, target string) string {
	from := "the detected language"
	if source != "" && source != "auto" {
		from = fmt.Sprintf("language code '%s'", source)
	}
	return fmt.Sprintf(`Translate the following spoken expense note from %s to language code '%s'.
Keep numbers, amounts and currency symbols exactly as they are.
Respond with the translation only, without quotes or explanations.

%s`, from, target, text)
}

// cleanModelOutput strips the quoting and code fences models add despite
// being asked not to.
func cleanModelOutput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
