package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "hfsearch.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
hub:
  endpoint: "https://hub.example.com"
  user_agent: "hfsearch-test/1.0"
search:
  default_limit: 25
  max_limit: 500
retry:
  max_attempts: 2
  initial_delay_ms: 100
  max_delay_ms: 5000
  backoff_multiplier: 2.0
  timeout_sec: 15
export:
  dir: "./exports"
  format: "txt"
logging:
  level: "debug"
`

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://hub.example.com", cfg.Hub.Endpoint)
	assert.Equal(t, 25, cfg.Search.DefaultLimit)
	assert.Equal(t, 500, cfg.Search.MaxLimit)
	assert.Equal(t, 2, cfg.Retry.MaxAttempts)
	assert.Equal(t, "./exports", cfg.Export.Dir)
	assert.Equal(t, "txt", cfg.Export.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	configPath := createTempConfigFile(t, "search:\n  default_limit: 3\n")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Search.DefaultLimit)
	assert.Equal(t, "https://huggingface.co", cfg.Hub.Endpoint)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "hub: [broken")

	_, err := LoadConfig(configPath)
	require.Error(t, err)
}

func TestLoadConfig_TokenFromEnv(t *testing.T) {
	t.Setenv(TokenEnvVar, "hf_testtoken")

	configPath := createTempConfigFile(t, "hub:\n  endpoint: \"https://hub.example.com\"\n")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "hf_testtoken", cfg.Hub.Token)
}

func TestLoadConfig_FileTokenWinsOverEnv(t *testing.T) {
	t.Setenv(TokenEnvVar, "hf_envtoken")

	configPath := createTempConfigFile(t, "hub:\n  token: \"hf_filetoken\"\n")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "hf_filetoken", cfg.Hub.Token)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing endpoint", func(c *Config) { c.Hub.Endpoint = "" }, ErrMissingEndpoint},
		{"zero default limit", func(c *Config) { c.Search.DefaultLimit = 0 }, ErrInvalidDefaultLimit},
		{"max below default", func(c *Config) { c.Search.MaxLimit = 5 }, ErrInvalidMaxLimit},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }, ErrInvalidMaxAttempts},
		{"negative delay", func(c *Config) { c.Retry.InitialDelayMs = -1 }, ErrInvalidInitialDelay},
		{"low multiplier", func(c *Config) { c.Retry.BackoffMultiplier = 0.5 }, ErrInvalidBackoffMultiplier},
		{"zero timeout", func(c *Config) { c.Retry.TimeoutSec = 0 }, ErrInvalidTimeout},
		{"bad export format", func(c *Config) { c.Export.Format = "xml" }, ErrInvalidExportFormat},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, ErrInvalidLogLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestRetryPolicy_GetRetryDelay(t *testing.T) {
	rp := RetryPolicy{
		MaxAttempts:       5,
		InitialDelayMs:    100,
		MaxDelayMs:        350,
		BackoffMultiplier: 2.0,
		TimeoutSec:        30,
	}

	assert.Equal(t, time.Duration(0), rp.GetRetryDelay(1))
	assert.Equal(t, 100*time.Millisecond, rp.GetRetryDelay(2))
	assert.Equal(t, 200*time.Millisecond, rp.GetRetryDelay(3))
	// Capped at MaxDelayMs.
	assert.Equal(t, 350*time.Millisecond, rp.GetRetryDelay(4))
}

func TestRetryPolicy_GetTimeout(t *testing.T) {
	rp := RetryPolicy{TimeoutSec: 15}
	assert.Equal(t, 15*time.Second, rp.GetTimeout())
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.DefaultLimit = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Search.DefaultLimit)
}
