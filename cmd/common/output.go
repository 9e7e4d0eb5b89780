// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"fjacquet/voice-ledger/internal/currencyutils"
	"fjacquet/voice-ledger/internal/dateutils"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/parsererror"
	"fjacquet/voice-ledger/internal/voiceparser"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReferenceTime parses a --now flag value in loc. An empty value yields
// fallback.
func ReferenceTime(value string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	t, _, err := dateutils.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, &parsererror.InvalidInputError{Field: "now", Value: value, Reason: "expected RFC 3339 or YYYY-MM-DD"}
	}
	return t, nil
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// PrintCommand writes a human readable summary of cmd. When trace is set,
// the matched fragments and strategy outcomes are included.
func PrintCommand(w io.Writer, cmd models.ParsedVoiceCommand, trace *voiceparser.Trace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	amount := "(none)"
	if value, ok := cmd.Amount(); ok {
		amount = currencyutils.FormatAmount(value, cmd.Currency())
	}
	date := "(none)"
	if occurredAt, ok := cmd.OccurredAt(); ok {
		date = dateutils.FormatDate(occurredAt, dateutils.DateLayoutISO)
	}

	rows := [][2]string{
		{"Transcript", cmd.RawTranscript()},
		{"Amount", amount},
		{"Type", string(cmd.TransactionType())},
		{"Category", cmd.Category()},
		{"Date", date},
		{"Description", cmd.Description()},
		{"Can save", fmt.Sprintf("%t", cmd.HasUsableAmount())},
	}
	if trace != nil {
		rows = append(rows,
			[2]string{"Amount text", orNone(trace.AmountText)},
			[2]string{"Amount kind", orNone(string(trace.AmountKind))},
			[2]string{"Date text", orNone(trace.DateText)},
			[2]string{"Category via", orNone(trace.CategoryStrategy)},
			[2]string{"Strategies", orNone(trace.Strategies)},
		)
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
