// Package parse handles the single transcript command
package parse

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/voice-ledger/cmd/common"
	"fjacquet/voice-ledger/cmd/root"
	"fjacquet/voice-ledger/internal/container"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/parsererror"
	"fjacquet/voice-ledger/internal/voiceparser"

	"github.com/spf13/cobra"
)

// Options are the parse command flags.
type Options struct {
	Text      string
	Now       string
	Translate bool
	JSON      bool
	Explain   bool
}

var opts Options

type explainedCommand struct {
	Command    models.CommandView `json:"command"`
	Translated string             `json:"translated_transcript,omitempty"`
	Trace      *voiceparser.Trace `json:"trace,omitempty"`
}

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [transcript]",
	Short: "Parse one voice transcript",
	Long: `Parse one voice transcript into a structured transaction.

The transcript is taken from --text or from the remaining arguments.

Example:
  voice-ledger parse --text "add dinner ₹300"
  voice-ledger parse received 50000 salary yesterday --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), cmd.OutOrStdout(), root.GetContainer(), opts, args, time.Now())
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "Transcript to parse")
	Cmd.Flags().StringVar(&opts.Now, "now", "", "Reference time for relative dates (RFC 3339 or YYYY-MM-DD)")
	Cmd.Flags().BoolVar(&opts.Translate, "translate", false, "Translate the transcript with the configured provider first")
	Cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	Cmd.Flags().BoolVar(&opts.Explain, "explain", false, "Show which fragments and strategies produced the result")
}

// Run parses one transcript and writes the result to w.
func Run(ctx context.Context, w io.Writer, c *container.Container, o Options, args []string, now time.Time) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	transcript := o.Text
	if transcript == "" {
		transcript = strings.Join(args, " ")
	}
	if strings.TrimSpace(transcript) == "" {
		return &parsererror.InvalidInputError{Field: "transcript", Reason: "provide --text or arguments"}
	}

	ref, err := common.ReferenceTime(o.Now, c.GetLocation(), now.In(c.GetLocation()))
	if err != nil {
		return err
	}

	input := transcript
	translated := ""
	if o.Translate {
		if !c.TranslationEnabled() {
			c.GetLogger().Warn("Translation requested but no provider is configured")
		}
		input = c.Translate(ctx, transcript)
		if input != transcript {
			translated = input
		}
	}

	cmd, trace := c.GetParser().ParseWithTrace(input, ref)

	if o.JSON {
		view := cmd.View()
		view.Transcript = transcript
		if !o.Explain && translated == "" {
			return common.WriteJSON(w, view)
		}
		out := explainedCommand{Command: view, Translated: translated}
		if o.Explain {
			out.Trace = &trace
		}
		return common.WriteJSON(w, out)
	}

	if translated != "" {
		if _, err := fmt.Fprintf(w, "Translated: %s\n", translated); err != nil {
			return err
		}
	}
	if o.Explain {
		return common.PrintCommand(w, cmd, &trace)
	}
	return common.PrintCommand(w, cmd, nil)
}
