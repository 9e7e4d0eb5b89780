// Package batch parses many transcripts at once for the batch command.
package batch

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"fjacquet/voice-ledger/internal/dateutils"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/translate"
	"fjacquet/voice-ledger/internal/voiceparser"
)

// sequentialThreshold is the row count below which workers are not started.
const sequentialThreshold = 100

// Options controls translation and reference time handling.
type Options struct {
	// Translator, when set, runs on every transcript before parsing.
	Translator translate.Translator
	Source     string
	Target     string
	// Location interprets row reference times that carry no zone.
	Location *time.Location
	// Workers overrides the worker count; 0 means runtime.NumCPU().
	Workers int
}

// Processor parses transcript rows concurrently while keeping output in
// input order.
type Processor struct {
	parser      *voiceparser.Parser
	opts        Options
	workerCount int
	logger      logging.Logger
}

// NewProcessor creates a processor around parser.
func NewProcessor(parser *voiceparser.Parser, opts Options, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{
		parser:      parser,
		opts:        opts,
		workerCount: workers,
		logger:      logger,
	}
}

// Process parses every row. Rows without a usable reference time use now.
// Cancelling ctx stops translation; remaining rows are parsed untranslated.
func (p *Processor) Process(ctx context.Context, rows []models.TranscriptRow, now time.Time) ([]models.CommandView, Stats) {
	var views []models.CommandView
	if len(rows) < sequentialThreshold {
		views = p.processSequential(ctx, rows, now)
	} else {
		views = p.processConcurrent(ctx, rows, now)
	}

	stats := NewStats()
	for _, v := range views {
		stats.Add(v)
	}
	stats.LogSummary(p.logger)
	return views, *stats
}

func (p *Processor) processSequential(ctx context.Context, rows []models.TranscriptRow, now time.Time) []models.CommandView {
	views := make([]models.CommandView, 0, len(rows))
	for i := range rows {
		views = append(views, p.processRow(ctx, i, rows[i], now))
	}
	return views
}

type indexedRow struct {
	index int
	row   models.TranscriptRow
}

type indexedView struct {
	index int
	view  models.CommandView
}

func (p *Processor) processConcurrent(ctx context.Context, rows []models.TranscriptRow, now time.Time) []models.CommandView {
	rowChan := make(chan indexedRow, p.workerCount)
	resultChan := make(chan indexedView, len(rows))

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range rowChan {
				resultChan <- indexedView{index: item.index, view: p.processRow(ctx, item.index, item.row, now)}
			}
		}()
	}

	go func() {
		defer close(rowChan)
		for i := range rows {
			rowChan <- indexedRow{index: i, row: rows[i]}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	views := make([]models.CommandView, len(rows))
	for result := range resultChan {
		views[result.index] = result.view
	}

	p.logger.Debug("Concurrent processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: "workers", Value: p.workerCount})
	return views
}

func (p *Processor) processRow(ctx context.Context, index int, row models.TranscriptRow, now time.Time) models.CommandView {
	rowNow := now
	if strings.TrimSpace(row.Now) != "" {
		parsed, _, err := dateutils.ParseDate(row.Now, p.opts.Location)
		if err != nil {
			p.logger.WithError(err).Warn("Ignoring invalid reference time",
				logging.Field{Key: "row", Value: index + 1})
		} else {
			rowNow = parsed
		}
	}

	transcript := row.Transcript
	if p.opts.Translator != nil && ctx.Err() == nil {
		transcript = translate.Fallback(ctx, p.opts.Translator, transcript, p.opts.Source, p.opts.Target, p.logger)
	}

	view := p.parser.ParseAt(transcript, rowNow).View()
	if transcript != row.Transcript {
		// Output keeps what was spoken; the parse reflects the translation.
		view.Transcript = row.Transcript
	}
	return view
}
