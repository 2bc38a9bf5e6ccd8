package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSummaryModel = "gpt-4o-mini"
	DefaultRelatedModel = "sonar-pro"

	DefaultOEmbedURL     = "https://www.youtube.com/oembed"
	DefaultTranscriptURL = "https://youtubetranscript.com/"
	DefaultOpenAIURL     = "https://api.openai.com/v1"
	DefaultPerplexityURL = "https://api.perplexity.ai"
)

type Config struct {
	// Server settings
	ServerPort      string        `yaml:"server_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Version         string        `yaml:"version"`

	Log  LogConfig  `yaml:"log"`
	CORS CORSConfig `yaml:"cors"`

	// Remote collaborators
	Upstream UpstreamConfig `yaml:"upstream"`
	Summary  LLMConfig      `yaml:"summary"`
	Related  LLMConfig      `yaml:"related"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

type CORSConfig struct {
	AllowedOrigin  string   `yaml:"allowed_origin"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

type UpstreamConfig struct {
	OEmbedURL     string        `yaml:"oembed_url"`
	TranscriptURL string        `yaml:"transcript_url"`
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
}

// LLMConfig describes one chat-completion collaborator. An empty APIKey
// disables the path that depends on it.
type LLMConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

func (c LLMConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func defaultConfig() *Config {
	return &Config{
		ServerPort:      "3001",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    3 * time.Minute,
		IdleTimeout:     60 * time.Second,
		RequestTimeout:  3 * time.Minute,
		ShutdownTimeout: 30 * time.Second,
		Version:         "1.0.0",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		CORS: CORSConfig{
			AllowedOrigin:  "*",
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         86400,
		},
		Upstream: UpstreamConfig{
			OEmbedURL:     DefaultOEmbedURL,
			TranscriptURL: DefaultTranscriptURL,
			Timeout:       15 * time.Second,
			UserAgent:     "Mozilla/5.0",
		},
		Summary: LLMConfig{
			BaseURL: DefaultOpenAIURL,
			Model:   DefaultSummaryModel,
			Timeout: 60 * time.Second,
		},
		Related: LLMConfig{
			BaseURL: DefaultPerplexityURL,
			Model:   DefaultRelatedModel,
			Timeout: 60 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_PATH and the environment, in that order of increasing precedence.
// A .env file in the working directory is merged into the environment first,
// so it may also set CONFIG_PATH.
func Load() (*Config, error) {
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		logrus.WithError(err).Warn("Could not load .env file")
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "parse config file")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.ServerPort = getEnv("PORT", cfg.ServerPort)
	cfg.ReadTimeout = getEnvAsDuration("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvAsDuration("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.IdleTimeout = getEnvAsDuration("IDLE_TIMEOUT", cfg.IdleTimeout)
	cfg.RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.Version = getEnv("VERSION", cfg.Version)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Dir = getEnv("LOG_DIR", cfg.Log.Dir)

	cfg.CORS.AllowedOrigin = getEnv("CORS_ORIGIN", cfg.CORS.AllowedOrigin)
	cfg.CORS.AllowedMethods = getEnvAsStringSlice("CORS_ALLOWED_METHODS", cfg.CORS.AllowedMethods)
	cfg.CORS.AllowedHeaders = getEnvAsStringSlice("CORS_ALLOWED_HEADERS", cfg.CORS.AllowedHeaders)
	cfg.CORS.MaxAge = getEnvAsInt("CORS_MAX_AGE", cfg.CORS.MaxAge)

	cfg.Upstream.OEmbedURL = getEnv("OEMBED_URL", cfg.Upstream.OEmbedURL)
	cfg.Upstream.TranscriptURL = getEnv("TRANSCRIPT_URL", cfg.Upstream.TranscriptURL)
	cfg.Upstream.Timeout = getEnvAsDuration("UPSTREAM_TIMEOUT", cfg.Upstream.Timeout)

	cfg.Summary.APIKey = getEnv("OPENAI_API_KEY", cfg.Summary.APIKey)
	cfg.Summary.BaseURL = getEnv("OPENAI_BASE_URL", cfg.Summary.BaseURL)
	cfg.Summary.Model = getEnv("OPENAI_SUMMARY_MODEL", cfg.Summary.Model)
	cfg.Summary.Timeout = getEnvAsDuration("LLM_TIMEOUT", cfg.Summary.Timeout)

	cfg.Related.APIKey = getEnv("PERPLEXITY_API_KEY", cfg.Related.APIKey)
	cfg.Related.BaseURL = getEnv("PERPLEXITY_BASE_URL", cfg.Related.BaseURL)
	cfg.Related.Model = getEnv("PPLX_MODEL", cfg.Related.Model)
	cfg.Related.Timeout = getEnvAsDuration("LLM_TIMEOUT", cfg.Related.Timeout)
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return errors.New("server port is required")
	}

	timeouts := []struct {
		value time.Duration
		name  string
	}{
		{c.ReadTimeout, "read timeout"},
		{c.WriteTimeout, "write timeout"},
		{c.IdleTimeout, "idle timeout"},
		{c.RequestTimeout, "request timeout"},
		{c.ShutdownTimeout, "shutdown timeout"},
		{c.Upstream.Timeout, "upstream timeout"},
		{c.Summary.Timeout, "summary timeout"},
		{c.Related.Timeout, "related timeout"},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("%s must be positive", t.name)
		}
	}

	return nil
}

// Warnings lists the optional capabilities that are switched off.
func (c *Config) Warnings() []string {
	var out []string
	if !c.Summary.Enabled() {
		out = append(out, "OPENAI_API_KEY not set in environment")
	}
	if !c.Related.Enabled() {
		out = append(out, "PERPLEXITY_API_KEY not set in environment")
	}
	return out
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid duration, using default")
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return parts
		}
	}
	return defaultValue
}
