// Package config loads reviewstars settings from defaults, a YAML file, a
// .env file, and REVIEWSTARS_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	"github.com/dshills/reviewstars/internal/rating"
)

const (
	// DefaultFile is read when no --config path is given and it exists.
	DefaultFile = "reviewstars.yaml"
	// DefaultEnvFile is read when present; existing variables win.
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "REVIEWSTARS_"

	defaultEndpoint = "http://127.0.0.1:5000/review"
	healthPath      = "/api/test"
	maxStars        = 20
)

// Config holds every setting a command needs.
type Config struct {
	Endpoint   string        `yaml:"endpoint" env:"ENDPOINT"`
	HealthURL  string        `yaml:"health_url" env:"HEALTH_URL"`
	Timeout    time.Duration `yaml:"timeout" env:"TIMEOUT"`
	MaxRating  int           `yaml:"max_rating" env:"MAX_RATING"`
	TierSource string        `yaml:"tier_source" env:"TIER_SOURCE"`
	Theme      string        `yaml:"theme" env:"THEME"`
	Redact     bool          `yaml:"redact" env:"REDACT"`
	Offline    bool          `yaml:"offline" env:"OFFLINE"`
	LogLevel   string        `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Endpoint:   defaultEndpoint,
		MaxRating:  rating.DefaultMax,
		TierSource: string(rating.SourceScore),
		Theme:      "classic",
		LogLevel:   "warn",
	}
}

// Load layers the config file, the env file, and the environment over the
// defaults. An empty path falls back to DefaultFile when it exists; an
// explicit path must exist. The result is not validated; callers apply
// flag overrides first and then call Validate.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load: %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := gotenv.Load(envFile); err != nil {
		slog.Debug("no env file loaded, using OS environment", slog.String("path", envFile))
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config.Load: parse env: %w", err)
	}
	return cfg, nil
}

// ResolvedHealthURL returns HealthURL, or the endpoint's origin plus
// /api/test when unset.
func (c Config) ResolvedHealthURL() string {
	if c.HealthURL != "" {
		return c.HealthURL
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: healthPath}).String()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !c.Offline {
		u, err := url.Parse(c.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: endpoint %q must be an http(s) URL", c.Endpoint)
		}
	}
	if c.MaxRating < 1 || c.MaxRating > maxStars {
		return fmt.Errorf("config: max_rating %d out of range 1..%d", c.MaxRating, maxStars)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative")
	}
	if _, err := rating.ParseTierSource(c.TierSource); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
