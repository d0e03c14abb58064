package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"SignalDeck/internal/model"
)

// RefreshOff disables the periodic refresh.
const RefreshOff = "off"

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL string        `yaml:"base_url"`
		Proxy   string        `yaml:"proxy"`
		Timeout time.Duration `yaml:"timeout"`
		Retries *int          `yaml:"retries"`
		Backoff time.Duration `yaml:"backoff"`
	} `yaml:"api"`
	Dashboard struct {
		Symbol  string   `yaml:"symbol"`
		Tab     string   `yaml:"tab"`
		Symbols []string `yaml:"symbols"`
	} `yaml:"dashboard"`
	Refresh struct {
		Cron string `yaml:"cron"`
	} `yaml:"refresh"`
	Education struct {
		TablePath string `yaml:"table_path"`
	} `yaml:"education"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		Pretty     bool   `yaml:"pretty"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
	MockAPI struct {
		Addr string   `yaml:"addr"`
		Fail []string `yaml:"fail"`
		Seed int64    `yaml:"seed"`
	} `yaml:"mock_api"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SIGNALDECK_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.API.Proxy = v
	}
	if v := os.Getenv("SIGNALDECK_SYMBOL"); v != "" {
		c.Dashboard.Symbol = v
	}
	if v := os.Getenv("SIGNALDECK_REFRESH_CRON"); v != "" {
		c.Refresh.Cron = v
	}
	if v := os.Getenv("SIGNALDECK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SIGNALDECK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("SIGNALDECK_MOCK_ADDR"); v != "" {
		c.MockAPI.Addr = v
	}
	if v := os.Getenv("SIGNALDECK_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.Retries = &n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000/api"
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout == 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.API.Retries == nil {
		n := 2
		c.API.Retries = &n
	}
	if c.API.Backoff == 0 {
		c.API.Backoff = time.Second
	}
	if c.Dashboard.Symbol == "" {
		c.Dashboard.Symbol = "IBM"
	}
	c.Dashboard.Symbol = strings.ToUpper(strings.TrimSpace(c.Dashboard.Symbol))
	if c.Dashboard.Tab == "" {
		c.Dashboard.Tab = "overview"
	}
	if c.Refresh.Cron == "" {
		c.Refresh.Cron = "@every 30s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "logs/signaldeck.log"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 25
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 5
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 14
	}
	if c.MockAPI.Addr == "" {
		c.MockAPI.Addr = ":8000"
	}
}

// RetryCount returns the configured number of retries after the first attempt.
func (c *Config) RetryCount() int {
	if c.API.Retries == nil {
		return 0
	}
	return *c.API.Retries
}

// RefreshEnabled reports whether a periodic refresh is configured.
func (c *Config) RefreshEnabled() bool {
	return !strings.EqualFold(strings.TrimSpace(c.Refresh.Cron), RefreshOff)
}

// FailKinds parses mock_api.fail into resource kinds.
func (c *Config) FailKinds() ([]model.ResourceKind, error) {
	kinds := make([]model.ResourceKind, 0, len(c.MockAPI.Fail))
	for _, name := range c.MockAPI.Fail {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := model.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("mock_api.fail: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks that all required fields are set and well formed.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.RetryCount() < 0 {
		return fmt.Errorf("api.retries must not be negative")
	}
	if _, err := model.NormalizeSymbol(c.Dashboard.Symbol); err != nil {
		return fmt.Errorf("dashboard.symbol: %w", err)
	}
	if c.RefreshEnabled() {
		if _, err := cron.ParseStandard(c.Refresh.Cron); err != nil {
			return fmt.Errorf("refresh.cron: %w", err)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if _, err := c.FailKinds(); err != nil {
		return err
	}
	return nil
}
