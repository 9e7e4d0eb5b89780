// Package serve runs the HTTP API
package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"fjacquet/voice-ledger/cmd/root"
	"fjacquet/voice-ledger/internal/container"
	"fjacquet/voice-ledger/internal/server"

	"github.com/spf13/cobra"
)

var port int

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transcript parser over HTTP",
	Long: `Serve the transcript parser over HTTP.

Routes:
  GET  /                          health check
  POST /api/v1/voice/parse        {"transcript": "...", "now": "...", "translate": true}
  GET  /api/v1/voice/categories   categories and default currency

Example:
  voice-ledger serve --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return Run(ctx, root.GetContainer(), port)
	},
}

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default: server.port from config)")
}

// NewServer builds the HTTP server from the container.
func NewServer(c *container.Container) (*server.Server, error) {
	if c == nil {
		return nil, fmt.Errorf("container not initialized")
	}

	deps := server.Dependencies{
		Parser:    c.GetParser(),
		Location:  c.GetLocation(),
		Logger:    c.GetLogger(),
		RateLimit: c.GetConfig().Server.RateLimit,
	}
	if c.TranslationEnabled() {
		deps.Translate = c.Translate
	}
	return server.New(deps)
}

// Run serves until ctx is cancelled. A zero port uses the configured one.
func Run(ctx context.Context, c *container.Container, port int) error {
	srv, err := NewServer(c)
	if err != nil {
		return err
	}
	if port == 0 {
		port = c.GetConfig().Server.Port
	}
	return srv.Listen(ctx, port)
}
