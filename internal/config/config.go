package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/voice-ledger/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. Variables already set are kept.
func LoadEnv(logger logging.Logger) {
	envOnce.Do(func() {
		loadEnvFile(logger)
	})
}

func loadEnvFile(logger logging.Logger) string {
	if logger == nil {
		logger = logging.Discard()
	}

	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			logger.Debug("No .env file found, using environment variables")
			return ""
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file")
		return ""
	}
	logger.Debug("Loaded environment variables", logging.Field{Key: logging.FieldFile, Value: envFile})
	return envFile
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// NewLogger builds the application logger described by cfg.
func NewLogger(cfg LogConfig) logging.Logger {
	return logging.NewLogrusAdapterWithOptions(logging.Options{
		Level:      cfg.Level,
		Format:     cfg.Format,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
	})
}
