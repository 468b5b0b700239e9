// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port         string
	FrontendURL  string
	DemoUsername string
	DemoPassword string
	SessionTTL   time.Duration
	Gemini       GeminiConfig
}

// GeminiConfig controls the remote chat provider. An empty APIKey disables
// it; the chat then uses the local echo bot.
type GeminiConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// fileConfig mirrors the optional YAML overlay file. Zero values mean "not
// set" and keep the defaults.
type fileConfig struct {
	Port         string `yaml:"port"`
	FrontendURL  string `yaml:"frontend_url"`
	DemoUsername string `yaml:"demo_username"`
	DemoPassword string `yaml:"demo_password"`
	SessionTTL   string `yaml:"session_ttl"`
	Gemini       struct {
		APIKey   string `yaml:"api_key"`
		Endpoint string `yaml:"endpoint"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"gemini"`
}

// Load reads configuration from the optional SHERPA_CONFIG YAML file and the
// environment. Environment variables win over the file, the file over
// built-in defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         "8080",
		FrontendURL:  "",
		DemoUsername: "admin",
		DemoPassword: "password123",
		SessionTTL:   60 * time.Minute,
		Gemini: GeminiConfig{
			Timeout: 30 * time.Second,
		},
	}

	if path := os.Getenv("SHERPA_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.FrontendURL = getEnv("FRONTEND_URL", cfg.FrontendURL)
	cfg.DemoUsername = getEnv("DEMO_USERNAME", cfg.DemoUsername)
	cfg.DemoPassword = getEnv("DEMO_PASSWORD", cfg.DemoPassword)
	cfg.SessionTTL = getEnvDuration("SESSION_TTL", cfg.SessionTTL)
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.Endpoint = getEnv("GEMINI_ENDPOINT", cfg.Gemini.Endpoint)
	cfg.Gemini.Timeout = getEnvDuration("GEMINI_TIMEOUT", cfg.Gemini.Timeout)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.FrontendURL != "" {
		c.FrontendURL = fc.FrontendURL
	}
	if fc.DemoUsername != "" {
		c.DemoUsername = fc.DemoUsername
	}
	if fc.DemoPassword != "" {
		c.DemoPassword = fc.DemoPassword
	}
	if fc.SessionTTL != "" {
		d, err := time.ParseDuration(fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("parse session_ttl: %w", err)
		}
		c.SessionTTL = d
	}
	if fc.Gemini.APIKey != "" {
		c.Gemini.APIKey = fc.Gemini.APIKey
	}
	if fc.Gemini.Endpoint != "" {
		c.Gemini.Endpoint = fc.Gemini.Endpoint
	}
	if fc.Gemini.Timeout != "" {
		d, err := time.ParseDuration(fc.Gemini.Timeout)
		if err != nil {
			return fmt.Errorf("parse gemini timeout: %w", err)
		}
		c.Gemini.Timeout = d
	}
	return nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DemoUsername == "" || c.DemoPassword == "" {
		return fmt.Errorf("demo credentials cannot be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
