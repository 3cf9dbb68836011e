package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Extraction
	Suggestion SuggestionConfig
	OCR        OCRConfig
	Telegram   TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
}

// RateLimitConfig bounds requests per client IP on the public API.
type RateLimitConfig struct {
	RequestsPerMin int
}

// SuggestionConfig tunes extraction and the heuristic fallback.
type SuggestionConfig struct {
	Timezone            string
	MonthFirst          bool
	AITimeout           time.Duration
	EnrichFallback      bool
	FallbackDescription string
}

// OCRConfig configures the Cloud Vision transcription used when AI vision fails.
type OCRConfig struct {
	Enabled         bool
	APIKey          string
	CredentialsPath string
	LanguageHints   []string
}

// TelegramConfig enables the bot. Without WebhookURL the public URL is read
// from the ngrok agent API at TunnelAPIURL, when set.
type TelegramConfig struct {
	BotToken     string
	WebhookURL   string
	TunnelAPIURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// With an empty configFile, config.yaml is searched in ./config, ., /etc/app/.
// Variables from a local .env file are loaded into the environment first.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Extraction
	cfg.Suggestion.Timezone = v.GetString("suggestion.timezone")
	cfg.Suggestion.MonthFirst = v.GetBool("suggestion.month_first")
	cfg.Suggestion.AITimeout = v.GetDuration("suggestion.ai_timeout")
	cfg.Suggestion.EnrichFallback = v.GetBool("suggestion.enrich_fallback")
	cfg.Suggestion.FallbackDescription = v.GetString("suggestion.fallback_description")

	cfg.OCR.Enabled = v.GetBool("ocr.enabled")
	cfg.OCR.APIKey = expandEnvVar(v, v.GetString("ocr.api_key"))
	cfg.OCR.CredentialsPath = v.GetString("ocr.credentials_path")
	cfg.OCR.LanguageHints = splitList(v.GetStringSlice("ocr.language_hints"))

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.TunnelAPIURL = v.GetString("telegram.tunnel_api_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
		for _, p := range providersList {
			if providerMap, ok := p.(map[string]interface{}); ok {
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if _, err := time.LoadLocation(cfg.Suggestion.Timezone); err != nil {
		return nil, fmt.Errorf("suggestion.timezone: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("suggestion.timezone", "UTC")
	v.SetDefault("suggestion.month_first", false)
	v.SetDefault("suggestion.ai_timeout", "8s")
	v.SetDefault("suggestion.enrich_fallback", true)
	v.SetDefault("suggestion.fallback_description", "Generated based on your note context")

	v.SetDefault("ocr.enabled", false)

	// One attempt, one provider: a slow model must not hold up the heuristic fallback.
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "8s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig checks enabled providers. An empty provider list is
// valid and means the service runs heuristic-only.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]string)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if other, dup := priorityMap[provider.Priority]; dup {
			return fmt.Errorf("provider %s: duplicate priority %d (also used by %s)", provider.Name, provider.Priority, other)
		}
		priorityMap[provider.Priority] = provider.Name
	}

	if cfg.RetryAttempts < 0 {
		return fmt.Errorf("llm.retry_attempts must not be negative")
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
