// Package common provides CSV input and output shared by the batch command.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

// ParseDelimiter validates a configured delimiter, which must be a single
// character. An empty string yields DefaultDelimiter.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return DefaultDelimiter, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("CSV delimiter must be a single character, got '%s'", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("CSV delimiter cannot be %q", r)
	}
	return r, nil
}

// ReadCSV reads CSV rows into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSV[TCSVRow any](r io.Reader, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV input")
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	logger.Debug("Read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadCSVFile reads a CSV file into a slice of structs.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger.Info("Reading CSV file", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return ReadCSV[TCSVRow](file, delimiter, logger)
}

// ReadTranscripts reads batch input rows. Rows with a blank transcript are
// kept so output lines stay aligned with input lines.
func ReadTranscripts(r io.Reader, delimiter rune, logger logging.Logger) ([]models.TranscriptRow, error) {
	return ReadCSV[models.TranscriptRow](r, delimiter, logger)
}

// WriteCSV writes rows with a header line derived from their csv tags.
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow, delimiter rune) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCommandsToCSV writes parsed commands to a CSV file, creating parent
// directories as needed.
func WriteCommandsToCSV(views []models.CommandView, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.Discard()
	}
	if views == nil {
		return fmt.Errorf("cannot write nil commands to CSV")
	}

	logger.Info("Writing parsed commands to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(views)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, views, delimiter); err != nil {
		logger.WithError(err).Error("Failed to marshal commands to CSV")
		return err
	}
	return nil
}
