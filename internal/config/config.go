// Package config loads the CLI settings from the environment and an optional .env file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "BIRATES"

const (
	KeyBaseURL  = "BASE_URL"
	KeyTimeout  = "TIMEOUT"
	KeyLang     = "LANG"
	KeyLogLevel = "LOG_LEVEL"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultLang     = "En"
	DefaultLogLevel = "warn"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the CLI settings. Command line flags take precedence over it
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Lang     string
	LogLevel string
}

// Load reads BIRATES_* variables. Files are loaded with godotenv first, a missing file is not an error,
// and variables already set in the environment are never overwritten
func Load(defaultBaseURL string, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyBaseURL, defaultBaseURL)
	v.SetDefault(KeyTimeout, DefaultTimeout.String())
	v.SetDefault(KeyLang, DefaultLang)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	cfg := Config{
		BaseURL:  v.GetString(KeyBaseURL),
		Lang:     v.GetString(KeyLang),
		LogLevel: v.GetString(KeyLogLevel),
	}

	timeout, err := time.ParseDuration(v.GetString(KeyTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s_%s: %v", ErrInvalidConfig, envPrefix, KeyTimeout, err)
	}
	cfg.Timeout = timeout

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that can not be fixed up later by flags
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidConfig, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be absolute", ErrInvalidConfig, c.BaseURL)
	}

	return nil
}
