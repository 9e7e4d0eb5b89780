package store

import "fjacquet/voice-ledger/internal/models"

// MockKeywordStore is a mock KeywordSource for testing.
type MockKeywordStore struct {
	Config models.KeywordsConfig
	Err    error
	Calls  int
}

// LoadKeywords returns the mock tables or the configured error.
func (m *MockKeywordStore) LoadKeywords() (models.KeywordsConfig, error) {
	m.Calls++
	if m.Err != nil {
		return models.KeywordsConfig{}, m.Err
	}
	return m.Config, nil
}
