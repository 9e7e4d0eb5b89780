package models

import "time"

// CommandView is the flat, serialisable form of a ParsedVoiceCommand used for
// JSON responses and CSV rows.
type CommandView struct {
	Transcript  string `json:"raw_transcript" csv:"transcript"`
	Amount      string `json:"amount,omitempty" csv:"amount"`
	Currency    string `json:"currency" csv:"currency"`
	Type        string `json:"type" csv:"type"`
	Category    string `json:"category" csv:"category"`
	OccurredAt  string `json:"occurred_at,omitempty" csv:"occurred_at"`
	Description string `json:"description" csv:"description"`
	CanSave     bool   `json:"can_save" csv:"can_save"`
}

// View flattens the command. Amount keeps its natural precision; dates use RFC 3339.
func (c ParsedVoiceCommand) View() CommandView {
	view := CommandView{
		Transcript:  c.rawTranscript,
		Currency:    string(c.currency),
		Type:        string(c.txType),
		Category:    c.category,
		Description: c.description,
		CanSave:     c.HasUsableAmount(),
	}
	if amount, ok := c.Amount(); ok {
		view.Amount = amount.String()
	}
	if occurredAt, ok := c.OccurredAt(); ok {
		view.OccurredAt = occurredAt.Format(time.RFC3339)
	}
	return view
}

// TranscriptRow is one input line of a batch file. Now optionally pins the
// reference time used to resolve relative dates (RFC 3339 or YYYY-MM-DD).
type TranscriptRow struct {
	Transcript string `csv:"transcript"`
	Now        string `csv:"now"`
}
