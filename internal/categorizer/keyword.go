package categorizer

import (
	"strings"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
)

type keywordEntry struct {
	name     string
	keywords []string
}

// KeywordStrategy implements categorization by keyword substring matching
// over an ordered category table. The first category with a matching keyword
// wins.
type KeywordStrategy struct {
	entries []keywordEntry
	logger  logging.Logger
}

// NewKeywordStrategy creates a new KeywordStrategy from categories, keeping
// their order.
func NewKeywordStrategy(categories []models.CategoryConfig, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.Discard()
	}

	entries := make([]keywordEntry, 0, len(categories))
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		entry := keywordEntry{name: name}
		for _, k := range c.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				entry.keywords = append(entry.keywords, k)
			}
		}
		entries = append(entries, entry)
	}

	return &KeywordStrategy{entries: entries, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize returns the first category with a keyword contained in text.
func (s *KeywordStrategy) Categorize(text string) (models.Category, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return models.Category{}, false
	}

	for _, entry := range s.entries {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				s.logger.Debug("Transcript categorized using keyword matching",
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldMatched, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: entry.name})
				return newCategory(entry.name), true
			}
		}
	}

	return models.Category{}, false
}
