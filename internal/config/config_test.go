package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SIGNALDECK_API_URL", "HTTPS_PROXY", "SIGNALDECK_SYMBOL", "SIGNALDECK_REFRESH_CRON",
		"SIGNALDECK_LOG_LEVEL", "SIGNALDECK_LOG_FILE", "SIGNALDECK_MOCK_ADDR", "SIGNALDECK_RETRIES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.RetryCount())
	assert.Equal(t, time.Second, cfg.API.Backoff)
	assert.Equal(t, "IBM", cfg.Dashboard.Symbol)
	assert.Equal(t, "overview", cfg.Dashboard.Tab)
	assert.Equal(t, "@every 30s", cfg.Refresh.Cron)
	assert.True(t, cfg.RefreshEnabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8000", cfg.MockAPI.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api:
  base_url: https://analytics.example.com/api/
  timeout: 5s
  retries: 0
  backoff: 250ms
dashboard:
  symbol: ibm
  tab: technical
  symbols: [IBM, MSFT]
refresh:
  cron: "off"
log:
  level: debug
mock_api:
  fail: [signals, trading-expert]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://analytics.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.RetryCount(), "explicit zero retries survives defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.API.Backoff)
	assert.Equal(t, "IBM", cfg.Dashboard.Symbol)
	assert.Equal(t, []string{"IBM", "MSFT"}, cfg.Dashboard.Symbols)
	assert.False(t, cfg.RefreshEnabled())

	kinds, err := cfg.FailKinds()
	require.NoError(t, err)
	assert.Equal(t, []model.ResourceKind{model.KindSignals, model.KindExpert}, kinds)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "dashboard:\n  symbol: IBM\n")
	t.Setenv("SIGNALDECK_API_URL", "http://127.0.0.1:9000/api")
	t.Setenv("SIGNALDECK_SYMBOL", "tsla")
	t.Setenv("SIGNALDECK_LOG_LEVEL", "warn")
	t.Setenv("SIGNALDECK_REFRESH_CRON", "@every 1m")
	t.Setenv("HTTPS_PROXY", "http://proxy:3128")
	t.Setenv("SIGNALDECK_RETRIES", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/api", cfg.API.BaseURL)
	assert.Equal(t, "TSLA", cfg.Dashboard.Symbol)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "@every 1m", cfg.Refresh.Cron)
	assert.Equal(t, "http://proxy:3128", cfg.API.Proxy)
	assert.Equal(t, 4, cfg.RetryCount())
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "api: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"bad url", func(c *Config) { c.API.BaseURL = "localhost:8000" }, "api.base_url"},
		{"bad cron", func(c *Config) { c.Refresh.Cron = "every now and then" }, "refresh.cron"},
		{"off cron", func(c *Config) { c.Refresh.Cron = "OFF" }, ""},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad fail kind", func(c *Config) { c.MockAPI.Fail = []string{"quotes"} }, "mock_api.fail"},
		{"negative retries", func(c *Config) { n := -1; c.API.Retries = &n }, "api.retries"},
		{"blank symbol", func(c *Config) { c.Dashboard.Symbol = "  " }, "dashboard.symbol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
