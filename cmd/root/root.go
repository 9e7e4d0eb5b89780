// Package root contains the root command for the application
package root

import (
	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/container"
	"fjacquet/voice-ledger/internal/logging"

	"github.com/spf13/cobra"
)

// Flags holds the persistent flags shared by every command.
type Flags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// SharedFlags are bound to the root command's persistent flags
	SharedFlags = Flags{}

	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "voice-ledger",
		Short: "A CLI tool to turn spoken expense notes into structured transactions.",
		Long: `voice-ledger parses voice transcripts such as "add dinner ₹300" or
"received 50000 salary yesterday" into an amount, currency, transaction type,
category, date and description.

Use the parse command for a single transcript, batch for CSV files and serve
for the HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to voice-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				if err := appContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to release resources")
				}
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.ConfigFile, "config", "c", "", "Config file (default: config.yaml in $HOME/.voice-ledger, .voice-ledger or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the container; used by tests that run commands
// without configuration files.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

func initialize(cmd *cobra.Command) error {
	if appContainer != nil {
		return nil
	}

	config.LoadEnv(Log)

	cfg, err := config.Load(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}

	Log = config.NewLogger(cfg.Log)

	c, err := container.NewContainerWithLogger(cmd.Context(), cfg, Log)
	if err != nil {
		return err
	}
	appContainer = c
	return nil
}
