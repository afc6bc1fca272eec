package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ENDPOINT", "HEALTH_URL", "TIMEOUT", "MAX_RATING", "TIER_SOURCE", "THEME", "REDACT", "OFFLINE", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.yaml", `
endpoint: https://sentiment.example.com/review
timeout: 15s
max_rating: 10
tier_source: sentiment
theme: ascii
redact: true
`)
	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Endpoint != "https://sentiment.example.com/review" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.MaxRating != 10 || cfg.TierSource != "sentiment" || cfg.Theme != "ascii" || !cfg.Redact {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("unset fields should keep defaults, log_level = %q", cfg.LogLevel)
	}
}

func TestLoadDefaultFileInWorkingDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, DefaultFile, "theme: mono\n")
	t.Chdir(dir)

	cfg, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("theme = %q, want mono", cfg.Theme)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadUnknownField(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cfg.yaml", "endpont: http://typo\n")
	if _, err := Load(path, ""); err == nil {
		t.Error("expected error for unknown YAML field")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.yaml", "endpoint: http://file.example/review\nmax_rating: 5\n")
	t.Setenv(EnvPrefix+"ENDPOINT", "http://env.example/review")
	t.Setenv(EnvPrefix+"TIMEOUT", "2s")

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Endpoint != "http://env.example/review" {
		t.Errorf("endpoint = %q, want env override", cfg.Endpoint)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := writeFile(t, dir, "test.env", "REVIEWSTARS_THEME=ascii\nREVIEWSTARS_OFFLINE=true\n")
	t.Cleanup(func() {
		os.Unsetenv(EnvPrefix + "THEME")
		os.Unsetenv(EnvPrefix + "OFFLINE")
	})

	t.Chdir(dir)
	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "ascii" || !cfg.Offline {
		t.Errorf("cfg = %+v, want values from env file", cfg)
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvPrefix+"MAX_RATING", "lots")
	if _, err := Load("", ""); err == nil {
		t.Error("expected error for non-numeric MAX_RATING")
	}
}

func TestResolvedHealthURL(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Endpoint: "http://127.0.0.1:5000/review"}, "http://127.0.0.1:5000/api/test"},
		{Config{Endpoint: "https://api.example.com/v1/review?x=1"}, "https://api.example.com/api/test"},
		{Config{Endpoint: "http://a/review", HealthURL: "http://a/healthz"}, "http://a/healthz"},
		{Config{Endpoint: ""}, ""},
	}
	for _, tt := range tests {
		if got := tt.cfg.ResolvedHealthURL(); got != tt.want {
			t.Errorf("ResolvedHealthURL(%q) = %q, want %q", tt.cfg.Endpoint, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad scheme", func(c *Config) { c.Endpoint = "ftp://x/review" }, true},
		{"no host", func(c *Config) { c.Endpoint = "http:///review" }, true},
		{"offline ignores endpoint", func(c *Config) { c.Endpoint = ""; c.Offline = true }, false},
		{"zero stars", func(c *Config) { c.MaxRating = 0 }, true},
		{"too many stars", func(c *Config) { c.MaxRating = 50 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"bad tier source", func(c *Config) { c.TierSource = "vibes" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
