package server

import (
	"errors"
	"strings"

	"fjacquet/voice-ledger/internal/categorizer"
	"fjacquet/voice-ledger/internal/dateutils"
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) categories(c *fiber.Ctx) error {
	return c.JSON(CategoriesResponse{
		Categories:      s.parser.Categories(),
		DefaultCurrency: string(s.parser.DefaultCurrency()),
	})
}

func (s *Server) parse(c *fiber.Ctx) error {
	requestID := getRequestID(c)

	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			RequestID: requestID,
			Error:     "validation failed",
			Fields:    validationFields(err),
		})
	}

	now := s.clock().In(s.location)
	if strings.TrimSpace(req.Now) != "" {
		parsed, _, err := dateutils.ParseDate(req.Now, s.location)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				RequestID: requestID,
				Error:     "invalid reference time",
				Fields:    map[string]string{"now": err.Error()},
			})
		}
		now = parsed
	}

	transcript := req.Transcript
	resp := ParseResponse{RequestID: requestID}
	if req.Translate && s.translate != nil {
		transcript = s.translate(c.UserContext(), transcript)
		if transcript != req.Transcript {
			resp.Translated = transcript
		}
	}

	cmd := s.parser.ParseAt(transcript, now)
	resp.Command = cmd.View()
	resp.Command.Transcript = req.Transcript

	if len(req.Categories) > 0 {
		stored := make([]models.StoredCategory, len(req.Categories))
		for i, sc := range req.Categories {
			stored[i] = models.StoredCategory{ID: sc.ID, Name: sc.Name}
		}
		if id, ok := categorizer.MatchCategoryID(resp.Command.Category, stored); ok {
			resp.CategoryID = id
		}
	}

	s.logger.Debug("Transcript parsed",
		logging.Field{Key: logging.FieldRequestID, Value: requestID},
		logging.Field{Key: logging.FieldCategory, Value: resp.Command.Category})

	return c.JSON(resp)
}

func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return fields
}
