package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"adviceslip/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `yaml:"api" mapstructure:"api"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Bus     BusConfig     `yaml:"bus" mapstructure:"bus"`
	Version int           `yaml:"version" mapstructure:"version"`
}

// APIConfig describes how the advice api is reached
type APIConfig struct {
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent string        `yaml:"user_agent" mapstructure:"user_agent"`
}

// UIConfig holds terminal presentation settings
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
	Animate   bool `yaml:"animate" mapstructure:"animate"`
	WrapWidth int  `yaml:"wrap_width" mapstructure:"wrap_width"`
}

// LoggingConfig holds logger settings, File is only used while the TUI owns the terminal
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// BusConfig holds pub/sub settings
type BusConfig struct {
	Buffer int `yaml:"buffer" mapstructure:"buffer"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.API.BaseURL = DefaultBaseURL
	cfg.API.Timeout = DefaultTimeout
	cfg.API.UserAgent = DefaultUserAgent

	cfg.UI.AltScreen = DefaultAltScreen
	cfg.UI.Animate = DefaultAnimate
	cfg.UI.WrapWidth = DefaultWrapWidth

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Bus.Buffer = DefaultBusBuffer

	return cfg
}

// Load loads the configuration from the default file in the working directory
func Load() (*Config, error) {
	return LoadFrom(FileName)
}

// LoadFrom loads .env, the YAML file at path (optional) and ADVICE_* overrides
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToLoadEnv
	}

	v := newViper(DefaultConfig())

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case !os.IsNotExist(err):
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with defaults so every key is env-overridable
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", defaults.Version)
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("api.user_agent", defaults.API.UserAgent)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)
	v.SetDefault("ui.animate", defaults.UI.Animate)
	v.SetDefault("ui.wrap_width", defaults.UI.WrapWidth)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("bus.buffer", defaults.Bus.Buffer)

	return v
}

// ApplyDefaults fills empty values and normalizes user input
func (c *Config) ApplyDefaults() {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}

	if c.API.UserAgent == "" {
		c.API.UserAgent = DefaultUserAgent
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if c.Bus.Buffer <= 0 {
		return errors.ErrInvalidBusBuffer
	}

	if c.UI.WrapWidth < 0 {
		return errors.ErrInvalidWrapWidth
	}

	return nil
}

// validateAPI validates api settings
func (c *Config) validateAPI() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidBaseURL, c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return errors.ErrInvalidTimeout
	}

	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogLevel, c.Logging.Level)
	}

	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}
