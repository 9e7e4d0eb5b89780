// Package batch handles batch processing of transcript files
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"fjacquet/voice-ledger/cmd/common"
	"fjacquet/voice-ledger/cmd/root"
	"fjacquet/voice-ledger/internal/batch"
	csvio "fjacquet/voice-ledger/internal/common"
	"fjacquet/voice-ledger/internal/container"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/parsererror"
	"fjacquet/voice-ledger/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the batch command flags.
type Options struct {
	Input     string
	Output    string
	Now       string
	Translate bool
	Workers   int
}

var opts Options

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process a CSV file of transcripts",
	Long: `Batch process a CSV file of transcripts and write one parsed command per row.

The input needs a "transcript" column and may carry a "now" column with the
reference time for that row. Output rows keep the input order; without
--output they are written to standard output.

Example:
  voice-ledger batch -i transcripts.csv -o parsed.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), cmd.OutOrStdout(), root.GetContainer(), opts, time.Now())
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output CSV file (default: stdout)")
	Cmd.Flags().StringVar(&opts.Now, "now", "", "Reference time for rows without one (RFC 3339 or YYYY-MM-DD)")
	Cmd.Flags().BoolVar(&opts.Translate, "translate", false, "Translate every transcript with the configured provider first")
	Cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (default: number of CPUs)")
}

// Run reads opts.Input, parses every row and writes the result.
func Run(ctx context.Context, stdout io.Writer, c *container.Container, o Options, now time.Time) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	if o.Input == "" {
		return &parsererror.InvalidInputError{Field: "input", Reason: "an input file is required"}
	}
	logger := c.GetLogger()

	if err := validation.IsValidInputFile(o.Input); err != nil {
		return err
	}
	if o.Output != "" {
		if err := validation.IsValidOutputPath(o.Output); err != nil {
			return err
		}
	}

	ref, err := common.ReferenceTime(o.Now, c.GetLocation(), now.In(c.GetLocation()))
	if err != nil {
		return err
	}

	file, err := os.Open(o.Input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	rows, err := csvio.ReadTranscripts(file, c.GetDelimiter(), logger)
	if err != nil {
		return err
	}
	logger.Info("Found transcripts for processing",
		logging.Field{Key: logging.FieldInputFile, Value: o.Input},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	batchOpts := batch.Options{
		Location: c.GetLocation(),
		Workers:  o.Workers,
	}
	if o.Translate {
		cfg := c.GetConfig().Translate
		batchOpts.Translator = c.GetTranslator()
		batchOpts.Source = cfg.Source
		batchOpts.Target = cfg.Target
	}

	views, stats := batch.NewProcessor(c.GetParser(), batchOpts, logger).Process(ctx, rows, ref)

	if o.Output == "" {
		return csvio.WriteCSV(stdout, views, c.GetDelimiter())
	}
	if err := csvio.WriteCommandsToCSV(views, o.Output, c.GetDelimiter(), logger); err != nil {
		return err
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d of %d rows can be saved.", stats.Saveable, stats.Total))
	return nil
}
