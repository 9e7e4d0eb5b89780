package categorizer

import (
	"strings"

	"fjacquet/voice-ledger/internal/models"
)

// TypeClassifier decides between income and expense.
type TypeClassifier struct {
	incomeKeywords []string
}

// NewTypeClassifier creates a TypeClassifier; an empty keyword list falls
// back to models.DefaultIncomeKeywords.
func NewTypeClassifier(incomeKeywords []string) *TypeClassifier {
	if len(incomeKeywords) == 0 {
		incomeKeywords = models.DefaultIncomeKeywords()
	}
	lowered := make([]string, 0, len(incomeKeywords))
	for _, k := range incomeKeywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			lowered = append(lowered, k)
		}
	}
	return &TypeClassifier{incomeKeywords: lowered}
}

// Classify returns INCOME when text contains any income keyword, EXPENSE otherwise.
func (c *TypeClassifier) Classify(text string) models.TransactionType {
	lower := strings.ToLower(text)
	for _, k := range c.incomeKeywords {
		if strings.Contains(lower, k) {
			return models.TransactionTypeIncome
		}
	}
	return models.TransactionTypeExpense
}
