package categorizer

import "fjacquet/voice-ledger/internal/models"

// CategorizationStrategy defines one way of deriving a category from a transcript.
// Strategies are read-only after construction and safe for concurrent use.
type CategorizationStrategy interface {
	// Categorize returns the category for text and whether this strategy
	// recognised one.
	Categorize(text string) (models.Category, bool)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
