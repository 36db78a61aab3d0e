// SPDX-License-Identifier: MIT

// Package config loads lvlmath settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// AI providers.
const (
	ProviderGateway = "gateway"
	ProviderGenAI   = "genai"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "lvlmath.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all lvlmath configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AI       AIConfig       `yaml:"ai"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// MaxUploadMB bounds multipart bodies on /api/solve.
	MaxUploadMB int `yaml:"max_upload_mb"`
}

// DatabaseConfig configures the history store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AIConfig configures the completion provider.
type AIConfig struct {
	Provider string `yaml:"provider"` // gateway, genai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "30s",
			ShutdownTimeout: "10s",
			MaxUploadMB:     10,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(".lvlmath", "history.db"),
		},
		AI: AIConfig{
			Provider: ProviderGateway,
			Timeout:  "2m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies LVLMATH_* variables. The API key falls back to
// LOVABLE_API_KEY for the gateway and GEMINI_API_KEY for genai.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LVLMATH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LVLMATH_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LVLMATH_AI_PROVIDER"); v != "" {
		c.AI.Provider = v
	}
	if v := os.Getenv("LVLMATH_AI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("LVLMATH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LVLMATH_AI_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if c.AI.APIKey != "" {
		return
	}
	switch c.AI.Provider {
	case ProviderGateway:
		c.AI.APIKey = os.Getenv("LOVABLE_API_KEY")
	case ProviderGenAI:
		c.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks the configuration for errors. A missing API key is not an
// error here: the solver reports it when a problem is submitted.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required: %w", ErrInvalid)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required: %w", ErrInvalid)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive: %w", ErrInvalid)
	}
	switch c.AI.Provider {
	case ProviderGateway, ProviderGenAI:
	default:
		return fmt.Errorf("ai.provider %q: %w", c.AI.Provider, ErrInvalid)
	}
	for name, v := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"ai.timeout":              c.AI.Timeout,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("%s %q: %w", name, v, ErrInvalid)
		}
	}
	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalid)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}

	return nil
}

// ReadTimeout returns the parsed server read timeout (30s when unparsable).
func (c *Config) ReadTimeout() time.Duration { return duration(c.Server.ReadTimeout, 30*time.Second) }

// ShutdownTimeout returns the parsed graceful shutdown timeout (10s when unparsable).
func (c *Config) ShutdownTimeout() time.Duration {
	return duration(c.Server.ShutdownTimeout, 10*time.Second)
}

// AITimeout returns the parsed upstream timeout (2m when unparsable).
func (c *Config) AITimeout() time.Duration { return duration(c.AI.Timeout, 2*time.Minute) }

func duration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}

	return d
}

// Logger builds the zap logger described by Logging; verbose forces debug.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if c.Logging.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Logging.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.Level = level

	return zcfg.Build()
}
