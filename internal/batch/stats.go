package batch

import (
	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
)

// Stats summarises a batch run.
type Stats struct {
	Total      int            // Rows processed
	Saveable   int            // Rows with an amount greater than zero
	Dated      int            // Rows where a date was recognised
	ByCategory map[string]int // Row count per category
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{ByCategory: make(map[string]int)}
}

// Add records one parsed row.
func (s *Stats) Add(view models.CommandView) {
	if s.ByCategory == nil {
		s.ByCategory = make(map[string]int)
	}
	s.Total++
	if view.CanSave {
		s.Saveable++
	}
	if view.OccurredAt != "" {
		s.Dated++
	}
	s.ByCategory[view.Category]++
}

// SaveRate returns the share of saveable rows as a percentage.
func (s Stats) SaveRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Saveable) / float64(s.Total) * 100.0
}

// LogSummary logs the batch statistics at info level.
func (s Stats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Batch summary",
		logging.Field{Key: "total", Value: s.Total},
		logging.Field{Key: "saveable", Value: s.Saveable},
		logging.Field{Key: "dated", Value: s.Dated},
		logging.Field{Key: "uncategorized", Value: s.ByCategory[models.CategoryOther]},
		logging.Field{Key: "save_rate", Value: s.SaveRate()},
	)
}
