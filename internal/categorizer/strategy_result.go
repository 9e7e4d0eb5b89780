package categorizer

import (
	"fmt"
	"strings"

	"fjacquet/voice-ledger/internal/models"
)

// StrategyResult represents the result of a categorization strategy attempt
type StrategyResult struct {
	Strategy string
	Category models.Category
	Found    bool
}

// StrategyResults aggregates results from multiple strategies
type StrategyResults struct {
	Results []StrategyResult
}

// GetBestResult returns the first successful result.
func (sr StrategyResults) GetBestResult() (models.Category, bool) {
	for _, r := range sr.Results {
		if r.Found {
			return r.Category, true
		}
	}
	return models.Category{}, false
}

// MatchedBy returns the name of the strategy that produced the category, or "".
func (sr StrategyResults) MatchedBy() string {
	for _, r := range sr.Results {
		if r.Found {
			return r.Strategy
		}
	}
	return ""
}

// Summary returns a human-readable summary of all strategy attempts
func (sr StrategyResults) Summary() string {
	var parts []string
	for _, result := range sr.Results {
		status := "no_match"
		if result.Found {
			status = "success"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", result.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
