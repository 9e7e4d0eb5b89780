package categorizer

import (
	"strings"

	"fjacquet/voice-ledger/internal/models"
)

// MatchCategoryID maps a parsed category name onto the id of a stored
// category: an exact (case-insensitive) name match first, then the first
// stored name containing the parsed one.
func MatchCategoryID(name string, stored []models.StoredCategory) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}

	for _, c := range stored {
		if strings.ToLower(strings.TrimSpace(c.Name)) == lower {
			return c.ID, true
		}
	}
	for _, c := range stored {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			return c.ID, true
		}
	}
	return "", false
}
