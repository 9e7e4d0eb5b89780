package server

import "fjacquet/voice-ledger/internal/models"

// ParseRequest is the body of POST /api/v1/voice/parse.
type ParseRequest struct {
	Transcript string `json:"transcript" validate:"required,max=2000"`
	// Now pins the reference time for relative dates (RFC 3339 or YYYY-MM-DD).
	Now       string `json:"now,omitempty" validate:"omitempty,max=64"`
	Translate bool   `json:"translate,omitempty"`
	// Categories, when given, are the caller's stored categories; the
	// response then carries the id matching the parsed category.
	Categories []StoredCategory `json:"categories,omitempty" validate:"omitempty,max=200,dive"`
}

// StoredCategory is a category persisted by the caller.
type StoredCategory struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// ParseResponse wraps a parsed command.
type ParseResponse struct {
	RequestID  string             `json:"request_id"`
	Translated string             `json:"translated_transcript,omitempty"`
	Command    models.CommandView `json:"command"`
	CategoryID string             `json:"category_id,omitempty"`
}

// CategoriesResponse lists the categories the parser can assign.
type CategoriesResponse struct {
	Categories      []string `json:"categories"`
	DefaultCurrency string   `json:"default_currency"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	RequestID string            `json:"request_id,omitempty"`
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
}
