// Package keywords manages the keyword tables file
package keywords

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"fjacquet/voice-ledger/cmd/root"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/store"

	"github.com/spf13/cobra"
)

var force bool

// Cmd represents the keywords command
var Cmd = &cobra.Command{
	Use:   "keywords",
	Short: "Inspect or create the keyword tables",
	Long: `Inspect or create the keyword tables used for categories, income
detection and filler removal.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the keyword tables in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		if c == nil {
			return fmt.Errorf("container not initialized")
		}
		cfg, err := c.GetStore().LoadKeywords()
		if err != nil {
			return err
		}
		return List(cmd.OutOrStdout(), cfg)
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in keyword tables to a file",
	Long: `Write the built-in keyword tables to a YAML file for editing.

Example:
  voice-ledger keywords init ~/.voice-ledger/keywords.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := store.DefaultKeywordsFile
		if len(args) == 1 {
			path = args[0]
		}
		if err := Init(path, force); err != nil {
			return err
		}
		root.Log.Info(fmt.Sprintf("Keyword tables written to %s", path))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	Cmd.AddCommand(listCmd, initCmd)
}

// Init writes the built-in tables to path, refusing to overwrite an
// existing file unless overwrite is set.
func Init(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	return store.SaveKeywords(path, models.DefaultKeywordsConfig())
}

// List prints the tables in cfg.
func List(w io.Writer, cfg models.KeywordsConfig) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, category := range cfg.Categories {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", category.Name, strings.Join(category.Keywords, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw, "(income)\t%s\n", strings.Join(cfg.Income, ", ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "(fillers)\t%s\n", strings.Join(cfg.Fillers, ", ")); err != nil {
		return err
	}
	return tw.Flush()
}
