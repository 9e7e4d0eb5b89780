package categorizer

import (
	"strings"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
)

// CategoryNameStrategy matches the category names themselves, for short
// utterances such as "utilities 900" that name the category directly.
type CategoryNameStrategy struct {
	names  []string
	logger logging.Logger
}

// NewCategoryNameStrategy creates a CategoryNameStrategy over the names of
// categories, in order. The fallback category is never matched by name.
func NewCategoryNameStrategy(categories []models.CategoryConfig, logger logging.Logger) *CategoryNameStrategy {
	if logger == nil {
		logger = logging.Discard()
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" || name == models.CategoryOther {
			continue
		}
		names = append(names, name)
	}
	return &CategoryNameStrategy{names: names, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *CategoryNameStrategy) Name() string {
	return "CategoryName"
}

// Categorize returns the first category whose name appears in text.
func (s *CategoryNameStrategy) Categorize(text string) (models.Category, bool) {
	lower := strings.ToLower(text)
	for _, name := range s.names {
		if strings.Contains(lower, name) {
			s.logger.Debug("Transcript categorized by category name",
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldCategory, Value: name})
			return newCategory(name), true
		}
	}
	return models.Category{}, false
}
