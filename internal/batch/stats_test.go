package batch

import (
	"testing"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	var s Stats
	s.Add(models.CommandView{Category: "dining", CanSave: true, OccurredAt: "2024-01-09T10:00:00Z"})
	s.Add(models.CommandView{Category: "other"})
	s.Add(models.CommandView{Category: "dining", CanSave: true})
	s.Add(models.CommandView{Category: "rent"})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Saveable)
	assert.Equal(t, 1, s.Dated)
	assert.Equal(t, 50.0, s.SaveRate())
	assert.Equal(t, map[string]int{"dining": 2, "other": 1, "rent": 1}, s.ByCategory)

	logger := logging.NewMockLogger()
	s.LogSummary(logger)
	entries := logger.GetEntriesByLevel("INFO")
	if assert.Len(t, entries, 1) {
		v, ok := entries[0].FieldValue("uncategorized")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	}
	s.LogSummary(nil)
}
