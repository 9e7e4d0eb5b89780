// Package store loads and saves the keyword tables that drive classification.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/parsererror"
	"fjacquet/voice-ledger/internal/validation"

	"gopkg.in/yaml.v3"
)

// DefaultKeywordsFile is looked up when no file is configured.
const DefaultKeywordsFile = "keywords.yaml"

// KeywordSource provides keyword tables. It allows for dependency injection
// and easier testing.
type KeywordSource interface {
	LoadKeywords() (models.KeywordsConfig, error)
}

// KeywordStore manages loading and saving of the keyword tables
type KeywordStore struct {
	KeywordsFile string
	logger       logging.Logger
}

// NewKeywordStore creates a new store reading keywordsFile
// (DefaultKeywordsFile when empty).
func NewKeywordStore(keywordsFile string, logger logging.Logger) *KeywordStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &KeywordStore{KeywordsFile: keywordsFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *KeywordStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".voice-ledger", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".voice-ledger", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadKeywords loads the keyword tables. A missing file yields the built-in
// tables; sections absent from the file keep their built-in values.
func (s *KeywordStore) LoadKeywords() (models.KeywordsConfig, error) {
	filename := s.KeywordsFile
	if filename == "" {
		filename = DefaultKeywordsFile
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.Debug("Keywords file not found, using built-in tables",
			logging.Field{Key: logging.FieldFile, Value: filename})
		return models.DefaultKeywordsConfig(), nil
	}

	if info, err := os.Stat(path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			s.logger.WithError(err).Warn("Keywords file can be modified by other users",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.KeywordsConfig{}, &parsererror.KeywordTableError{FilePath: path, Reason: "cannot read", Err: err}
	}

	cfg, err := decodeKeywords(data)
	if err != nil {
		return models.KeywordsConfig{}, &parsererror.KeywordTableError{FilePath: path, Reason: "cannot decode", Err: err}
	}
	for i, c := range cfg.Categories {
		if c.Name == "" {
			return models.KeywordsConfig{}, &parsererror.KeywordTableError{
				FilePath: path,
				Reason:   fmt.Sprintf("category #%d has no name", i+1),
			}
		}
	}

	defaults := models.DefaultKeywordsConfig()
	if len(cfg.Categories) == 0 {
		cfg.Categories = defaults.Categories
	}
	if len(cfg.Income) == 0 {
		cfg.Income = defaults.Income
	}
	if len(cfg.Fillers) == 0 {
		cfg.Fillers = defaults.Fillers
	}

	s.logger.Debug("Loaded keyword tables",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(cfg.Categories)})
	return cfg, nil
}

// decodeKeywords accepts the full document ("categories:", "income:",
// "fillers:") or a bare list of categories.
func decodeKeywords(data []byte) (models.KeywordsConfig, error) {
	var cfg models.KeywordsConfig
	errFull := yaml.Unmarshal(data, &cfg)
	if errFull == nil {
		return cfg, nil
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err == nil {
		return models.KeywordsConfig{Categories: categories}, nil
	}
	return models.KeywordsConfig{}, errFull
}

// SaveKeywords writes cfg to path as YAML, creating parent directories.
func SaveKeywords(path string, cfg models.KeywordsConfig) error {
	if path == "" {
		return errors.New("no keywords file path given")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating directory for keywords file: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling keywords: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing keywords file: %w", err)
	}
	return nil
}
