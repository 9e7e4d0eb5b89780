// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/parsererror"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Translation providers
const (
	ProviderNone   = "none"
	ProviderLibre  = "libre"
	ProviderGemini = "gemini"
)

// Config represents the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Parser    ParserConfig    `mapstructure:"parser" yaml:"parser"`
	Keywords  KeywordsConfig  `mapstructure:"keywords" yaml:"keywords"`
	Translate TranslateConfig `mapstructure:"translate" yaml:"translate"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	CSV       CSVConfig       `mapstructure:"csv" yaml:"csv"`
}

// LogConfig controls the application logger. File enables a rotated log file.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// ParserConfig controls transcript parsing.
type ParserConfig struct {
	DefaultCurrency string `mapstructure:"default_currency" yaml:"default_currency"`
	Placeholder     string `mapstructure:"placeholder" yaml:"placeholder"`
	ForwardDates    bool   `mapstructure:"forward_dates" yaml:"forward_dates"`
	Timezone        string `mapstructure:"timezone" yaml:"timezone"`
}

// KeywordsConfig points at the keyword tables file.
type KeywordsConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// TranslateConfig selects and tunes the translation provider.
type TranslateConfig struct {
	Provider          string `mapstructure:"provider" yaml:"provider"`
	URL               string `mapstructure:"url" yaml:"url"`
	APIKey            string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	Model             string `mapstructure:"model" yaml:"model"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	MaxRetries        int    `mapstructure:"max_retries" yaml:"max_retries"`
	Source            string `mapstructure:"source" yaml:"source"`
	Target            string `mapstructure:"target" yaml:"target"`
}

// CacheConfig enables the Redis translation cache when Address is set.
type CacheConfig struct {
	Address    string `mapstructure:"address" yaml:"address"`
	Password   string `mapstructure:"password" yaml:"-"`
	DB         int    `mapstructure:"db" yaml:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds" yaml:"ttl_seconds"`
}

// ServerConfig controls the HTTP API. RateLimit is requests per minute per
// client IP; 0 disables limiting.
type ServerConfig struct {
	Port      int `mapstructure:"port" yaml:"port"`
	RateLimit int `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// CSVConfig controls batch input and output.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Timeout returns the translation timeout as a duration.
func (c TranslateConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TTL returns the cache entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Location resolves the parser timezone, defaulting to the local zone.
func (c ParserConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Currency returns the configured default currency.
func (c ParserConfig) Currency() models.Currency {
	cur, ok := models.ParseCurrency(c.DefaultCurrency)
	if !ok {
		return models.DefaultCurrency
	}
	return cur
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load reads configuration from defaults, then configFile (or config.yaml in
// the standard locations when empty), then VOICE_* environment variables.
// An explicitly named file must exist.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.voice-ledger")
		v.AddConfigPath(".voice-ledger")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("VOICE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. Provider API key may also come from the provider's usual variable
	if err := v.BindEnv("translate.api_key", "VOICE_TRANSLATE_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind translate.api_key: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	// Parser defaults
	v.SetDefault("parser.default_currency", string(models.DefaultCurrency))
	v.SetDefault("parser.placeholder", models.DescriptionPlaceholder)
	v.SetDefault("parser.forward_dates", true)
	v.SetDefault("parser.timezone", "Local")

	// Keyword tables
	v.SetDefault("keywords.file", "keywords.yaml")

	// Translation defaults
	v.SetDefault("translate.provider", ProviderNone)
	v.SetDefault("translate.url", "https://libretranslate.com/translate")
	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.model", "gemini-2.0-flash")
	v.SetDefault("translate.timeout_seconds", 10)
	v.SetDefault("translate.requests_per_minute", 30)
	v.SetDefault("translate.max_retries", 2)
	v.SetDefault("translate.source", "auto")
	v.SetDefault("translate.target", "en")

	// Cache defaults
	v.SetDefault("cache.address", "")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl_seconds", 86400)

	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 60)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
}

func invalid(field, format string, args ...interface{}) error {
	return &parsererror.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return invalid("log.level", "unknown level %q", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return invalid("log.format", "must be 'text' or 'json', got %q", config.Log.Format)
	}

	if _, ok := models.ParseCurrency(config.Parser.DefaultCurrency); !ok {
		return invalid("parser.default_currency", "must be one of INR, USD, EUR, got %q", config.Parser.DefaultCurrency)
	}
	if _, err := config.Parser.Location(); err != nil {
		return invalid("parser.timezone", "%v", err)
	}

	if len(config.CSV.Delimiter) != 1 {
		return invalid("csv.delimiter", "must be a single character, got %q", config.CSV.Delimiter)
	}

	t := config.Translate
	switch t.Provider {
	case ProviderNone:
	case ProviderLibre:
		if t.URL == "" {
			return invalid("translate.url", "required for the libre provider")
		}
	case ProviderGemini:
		if t.APIKey == "" {
			return invalid("translate.api_key", "GEMINI_API_KEY required for the gemini provider")
		}
	default:
		return invalid("translate.provider", "must be none, libre or gemini, got %q", t.Provider)
	}
	if t.Provider != ProviderNone {
		if t.RequestsPerMinute < 1 || t.RequestsPerMinute > 1000 {
			return invalid("translate.requests_per_minute", "must be between 1 and 1000, got %d", t.RequestsPerMinute)
		}
		if t.TimeoutSeconds < 1 || t.TimeoutSeconds > 300 {
			return invalid("translate.timeout_seconds", "must be between 1 and 300, got %d", t.TimeoutSeconds)
		}
		if t.MaxRetries < 0 || t.MaxRetries > 10 {
			return invalid("translate.max_retries", "must be between 0 and 10, got %d", t.MaxRetries)
		}
	}

	if config.Cache.TTLSeconds < 0 {
		return invalid("cache.ttl_seconds", "must not be negative, got %d", config.Cache.TTLSeconds)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return invalid("server.port", "must be between 1 and 65535, got %d", config.Server.Port)
	}
	if config.Server.RateLimit < 0 {
		return invalid("server.rate_limit", "must not be negative, got %d", config.Server.RateLimit)
	}

	return nil
}
