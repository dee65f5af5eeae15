package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adviceslip/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultBusBuffer, cfg.Bus.Buffer)
	assert.True(t, cfg.UI.AltScreen)
	assert.True(t, cfg.UI.Animate)
	assert.Equal(t, 1, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func Test_LoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		check   func(t *testing.T, cfg *Config)
		wantErr error
	}{
		{
			name: "no config file found - uses default",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), FileName) },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "valid config file",
			path: func(t *testing.T) string {
				return writeConfig(t, `version: 1
api:
  base_url: http://localhost:8080/
  timeout: 3s
ui:
  animate: false
  wrap_width: 60
logging:
  level: DEBUG
  format: json
`)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
				assert.Equal(t, 3*time.Second, cfg.API.Timeout)
				assert.Equal(t, DefaultUserAgent, cfg.API.UserAgent)
				assert.False(t, cfg.UI.Animate)
				assert.True(t, cfg.UI.AltScreen)
				assert.Equal(t, 60, cfg.UI.WrapWidth)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "api: [unclosed\n") },
			wantErr: errors.ErrFailedToParseConfig,
		},
		{
			name:    "invalid base url",
			path:    func(t *testing.T) string { return writeConfig(t, "api:\n  base_url: ftp://example.com\n") },
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "unknown log level",
			path:    func(t *testing.T) string { return writeConfig(t, "logging:\n  level: loud\n") },
			wantErr: errors.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(tt.path(t))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_LoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("ADVICE_API_BASE_URL", "https://advice.example.com")
	t.Setenv("ADVICE_API_TIMEOUT", "250ms")
	t.Setenv("ADVICE_LOGGING_LEVEL", "warn")

	cfg, err := LoadFrom(writeConfig(t, "api:\n  base_url: http://localhost:1\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://advice.example.com", cfg.API.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{name: "relative base url", mutate: func(cfg *Config) { cfg.API.BaseURL = "/advice" }, wantErr: errors.ErrInvalidBaseURL},
		{name: "zero timeout", mutate: func(cfg *Config) { cfg.API.Timeout = 0 }, wantErr: errors.ErrInvalidTimeout},
		{name: "unknown format", mutate: func(cfg *Config) { cfg.Logging.Format = "xml" }, wantErr: errors.ErrInvalidLogFormat},
		{name: "zero bus buffer", mutate: func(cfg *Config) { cfg.Bus.Buffer = 0 }, wantErr: errors.ErrInvalidBusBuffer},
		{name: "negative wrap width", mutate: func(cfg *Config) { cfg.UI.WrapWidth = -1 }, wantErr: errors.ErrInvalidWrapWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.API.BaseURL = "  https://api.adviceslip.com///  "
	cfg.Logging.Level = " Info "

	cfg.ApplyDefaults()

	assert.Equal(t, "https://api.adviceslip.com", cfg.API.BaseURL)
	assert.Equal(t, DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}
