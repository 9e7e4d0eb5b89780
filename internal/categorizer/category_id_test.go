package categorizer

import (
	"testing"

	"fjacquet/voice-ledger/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMatchCategoryID(t *testing.T) {
	stored := []models.StoredCategory{
		{ID: "1", Name: "Groceries & Household"},
		{ID: "2", Name: "Rent"},
		{ID: "3", Name: "Dining Out"},
		{ID: "4", Name: "dining"},
	}

	tests := []struct {
		name       string
		parsed     string
		expectedID string
		expectedOk bool
	}{
		{"exact match beats earlier substring", "dining", "4", true},
		{"exact match ignores case", "RENT", "2", true},
		{"substring match", "groceries", "1", true},
		{"unknown category", "travel", "", false},
		{"empty name", " ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := MatchCategoryID(tt.parsed, stored)
			assert.Equal(t, tt.expectedOk, ok)
			assert.Equal(t, tt.expectedID, id)
		})
	}

	_, ok := MatchCategoryID("rent", nil)
	assert.False(t, ok)
}
