// Package server exposes the transcript parser over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/voiceparser"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

// TranslateFunc translates a transcript, returning it unchanged on failure.
type TranslateFunc func(ctx context.Context, text string) string

// Dependencies are the collaborators a Server needs.
type Dependencies struct {
	Parser *voiceparser.Parser
	// Translate is optional; requests asking for translation are parsed
	// untranslated when it is nil.
	Translate TranslateFunc
	Location  *time.Location
	Logger    logging.Logger
	// RateLimit is requests per minute per client IP; 0 disables limiting.
	RateLimit int
	// Clock overrides time.Now for reference times.
	Clock func() time.Time
}

// Server is the HTTP API.
type Server struct {
	app       *fiber.App
	parser    *voiceparser.Parser
	translate TranslateFunc
	location  *time.Location
	validator *validator.Validate
	logger    logging.Logger
	clock     func() time.Time
}

// New builds the fiber application and registers routes.
func New(deps Dependencies) (*Server, error) {
	if deps.Parser == nil {
		return nil, errors.New("server requires a parser")
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	s := &Server{
		parser:    deps.Parser,
		translate: deps.Translate,
		location:  deps.Location,
		validator: validator.New(),
		logger:    deps.Logger,
		clock:     deps.Clock,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "voice-ledger",
		BodyLimit:             64 * 1024,
		StrictRouting:         true,
		CaseSensitive:         true,
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.Marshal,
		JSONDecoder:           jsoniter.Unmarshal,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(requestIDMiddleware())
	s.app.Use(loggingMiddleware(deps.Logger))
	if deps.RateLimit > 0 {
		s.app.Use(newRateLimiter(deps.RateLimit).handler(deps.Logger))
	}

	s.app.Get("/", s.health)
	v1 := s.app.Group("/api/v1")
	voice := v1.Group("/voice")
	voice.Post("/parse", s.parse)
	voice.Get("/categories", s.categories)

	return s, nil
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on port until ctx is cancelled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, port int) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logging.Field{Key: "port", Value: port})
		errCh <- s.app.Listen(fmt.Sprintf(":%d", port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		s.logger.WithError(err).Error("Unhandled request error",
			logging.Field{Key: logging.FieldRequestID, Value: getRequestID(c)})
	}

	return c.Status(code).JSON(ErrorResponse{
		RequestID: getRequestID(c),
		Error:     message,
	})
}
