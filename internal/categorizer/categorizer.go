// Package categorizer classifies voice transcripts:
// 1. transaction type (income or expense) from income keywords
// 2. category from an ordered keyword table
// 3. category from the category names themselves as a fallback
//
// Anything no strategy recognises is filed under models.CategoryOther.
package categorizer

import (
	"strings"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
)

// Categorizer runs its strategies in order and keeps the first hit.
type Categorizer struct {
	strategies []CategorizationStrategy
	names      []string
	logger     logging.Logger
}

// NewCategorizer creates the default strategy chain for the category table in cfg.
func NewCategorizer(cfg models.KeywordsConfig, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.Discard()
	}
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = models.DefaultCategories()
	}

	c := NewCategorizerWithStrategies(logger,
		NewKeywordStrategy(categories, logger),
		NewCategoryNameStrategy(categories, logger),
	)
	for _, cat := range categories {
		if name := strings.TrimSpace(cat.Name); name != "" {
			c.names = append(c.names, name)
		}
	}
	c.names = append(c.names, models.CategoryOther)
	return c
}

// NewCategorizerWithStrategies creates a Categorizer from explicit strategies.
func NewCategorizerWithStrategies(logger logging.Logger, strategies ...CategorizationStrategy) *Categorizer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Categorizer{strategies: strategies, logger: logger}
}

// Categorize returns the category of text, models.CategoryOther when no
// strategy matches.
func (c *Categorizer) Categorize(text string) models.Category {
	category, _ := c.CategorizeWithResults(text)
	return category
}

// CategorizeWithResults is Categorize that also reports each strategy attempt.
// Strategies after the first hit are not run.
func (c *Categorizer) CategorizeWithResults(text string) (models.Category, StrategyResults) {
	var results StrategyResults
	for _, s := range c.strategies {
		category, found := s.Categorize(text)
		results.Results = append(results.Results, StrategyResult{
			Strategy: s.Name(),
			Category: category,
			Found:    found,
		})
		if found {
			return category, results
		}
	}

	c.logger.Debug("No strategy matched, using fallback category",
		logging.Field{Key: logging.FieldCategory, Value: models.CategoryOther},
		logging.Field{Key: logging.FieldStatus, Value: results.Summary()})
	return newCategory(models.CategoryOther), results
}

// Categories lists the category names this categorizer can produce, in
// table order, ending with the fallback.
func (c *Categorizer) Categories() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func newCategory(name string) models.Category {
	return models.Category{Name: name, Description: categoryDescriptionFromName(name)}
}

func categoryDescriptionFromName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
