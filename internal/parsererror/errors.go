// Package parsererror defines the typed errors returned by the layers around
// the voice parser: keyword table loading, translation and request input.
package parsererror

import "fmt"

// ParseError represents a row of batch input that could not be read
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an invalid configuration value
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}

// KeywordTableError represents a keyword file that exists but cannot be used.
type KeywordTableError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *KeywordTableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("keyword table '%s': %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("keyword table '%s': %s", e.FilePath, e.Reason)
}

func (e *KeywordTableError) Unwrap() error {
	return e.Err
}

// TranslationError represents a failed call to a translation provider.
// StatusCode is set for HTTP providers when a response was received.
type TranslationError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *TranslationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("translation via %s failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("translation via %s failed: %v", e.Provider, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the provider may succeed on a later attempt:
// transport failures, rate limiting and server errors.
func (e *TranslationError) Retryable() bool {
	return e.StatusCode == 0 || e.StatusCode == 429 || e.StatusCode >= 500
}

// InvalidInputError represents a request or command line value that cannot
// be handed to the parser.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
