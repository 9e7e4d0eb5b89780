package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "basic parse error",
			err: &ParseError{
				Source: "transcripts.csv",
				Field:  "transcript",
				Value:  "",
				Err:    errors.New("empty transcript"),
			},
			expected: "transcripts.csv: failed to parse transcript='': empty transcript",
		},
		{
			name: "parse error with value",
			err: &ParseError{
				Source: "request",
				Field:  "now",
				Value:  "yesterday-ish",
				Err:    errors.New("unknown layout"),
			},
			expected: "request: failed to parse now='yesterday-ish': unknown layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{Source: "batch", Field: "transcript", Err: originalErr}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "parser.default_currency", Reason: "must be one of INR, USD, EUR"}
	assert.Equal(t, "invalid configuration parser.default_currency: must be one of INR, USD, EUR", err.Error())
}

func TestKeywordTableError(t *testing.T) {
	cause := errors.New("yaml: line 1: did not find expected key")
	err := &KeywordTableError{FilePath: "keywords.yaml", Reason: "cannot decode", Err: cause}

	assert.Equal(t, "keyword table 'keywords.yaml': cannot decode: yaml: line 1: did not find expected key", err.Error())
	assert.True(t, errors.Is(err, cause))

	noCause := &KeywordTableError{FilePath: "keywords.yaml", Reason: "no categories"}
	assert.Equal(t, "keyword table 'keywords.yaml': no categories", noCause.Error())
}

func TestTranslationError(t *testing.T) {
	cause := errors.New("too many requests")
	err := &TranslationError{Provider: "libre", StatusCode: 429, Err: cause}

	assert.Equal(t, "translation via libre failed with status 429: too many requests", err.Error())
	assert.True(t, err.Retryable())

	wrapped := fmt.Errorf("translate transcript: %w", err)
	var target *TranslationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "libre", target.Provider)

	tests := []struct {
		status    int
		retryable bool
	}{
		{0, true},
		{400, false},
		{403, false},
		{429, true},
		{502, true},
	}
	for _, tt := range tests {
		e := &TranslationError{Provider: "libre", StatusCode: tt.status, Err: cause}
		assert.Equal(t, tt.retryable, e.Retryable(), "status %d", tt.status)
	}

	noStatus := &TranslationError{Provider: "gemini", Err: cause}
	assert.Equal(t, "translation via gemini failed: too many requests", noStatus.Error())
}

func TestInvalidInputError(t *testing.T) {
	err := &InvalidInputError{Field: "transcript", Reason: "must not be empty"}
	assert.Equal(t, "invalid transcript: must not be empty", err.Error())

	withValue := &InvalidInputError{Field: "now", Value: "tomorrow-ish", Reason: "unrecognised date"}
	assert.Equal(t, "invalid now 'tomorrow-ish': unrecognised date", withValue.Error())
}
