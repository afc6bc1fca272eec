package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/reviewstars/internal/client"
	"github.com/dshills/reviewstars/internal/config"
	"github.com/dshills/reviewstars/internal/logging"
	"github.com/dshills/reviewstars/internal/rating"
	"github.com/dshills/reviewstars/internal/render"
	"github.com/dshills/reviewstars/internal/theme"
)

type rootFlags struct {
	configPath string
	envFile    string
	endpoint   string
	timeout    time.Duration
	offline    bool
	logLevel   string
	verbose    bool
}

// displayFlags are shared by commands that draw ratings.
type displayFlags struct {
	maxRating  int
	tierSource string
	themeName  string
	noColor    bool
	noScore    bool
	redact     bool
}

func addDisplayFlags(cmd *cobra.Command, d *displayFlags) {
	flags := cmd.Flags()
	flags.IntVar(&d.maxRating, "max-rating", rating.DefaultMax, "Number of stars")
	flags.StringVar(&d.tierSource, "tier-source", "score", "Color tier from: score or sentiment")
	flags.StringVar(&d.themeName, "theme", theme.Default, "Star theme (see `reviewstars themes`)")
	flags.BoolVar(&d.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&d.noScore, "no-score", false, "Hide the numeric score next to the stars")
	flags.BoolVar(&d.redact, "redact", false, "Redact contact and booking details before sending")
}

// loadConfig layers explicitly set flags over the loaded configuration.
func loadConfig(cmd *cobra.Command, rf *rootFlags, d *displayFlags) (config.Config, error) {
	cfg, err := config.Load(rf.configPath, rf.envFile)
	if err != nil {
		return config.Config{}, exitError(exitInput, "failed to load config: %v", err)
	}

	changed := cmd.Flags().Changed
	if changed("endpoint") {
		cfg.Endpoint = rf.endpoint
	}
	if changed("timeout") {
		cfg.Timeout = rf.timeout
	}
	if changed("offline") {
		cfg.Offline = rf.offline
	}
	if changed("log-level") {
		cfg.LogLevel = rf.logLevel
	}
	if rf.verbose {
		cfg.LogLevel = "debug"
	}
	if d != nil {
		if changed("max-rating") {
			cfg.MaxRating = d.maxRating
		}
		if changed("tier-source") {
			cfg.TierSource = d.tierSource
		}
		if changed("theme") {
			cfg.Theme = d.themeName
		}
		if changed("redact") {
			cfg.Redact = d.redact
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, exitError(exitInput, "invalid configuration: %v", err)
	}
	return cfg, nil
}

func setupLogging(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, exitError(exitInput, "%v", err)
	}
	return logging.Init(w, level, colorEnabled(w, false)), nil
}

func resolveAnalyzer(cfg config.Config, injected client.Analyzer) (client.Analyzer, error) {
	if injected != nil {
		return injected, nil
	}
	a, err := client.Resolve(client.Settings{
		Endpoint:  cfg.Endpoint,
		HealthURL: cfg.ResolvedHealthURL(),
		Timeout:   cfg.Timeout,
		Offline:   cfg.Offline,
	})
	if err != nil {
		return nil, exitError(exitInput, "analyzer error: %v", err)
	}
	return a, nil
}

func renderOptions(cfg config.Config, d *displayFlags, w io.Writer) (render.Options, rating.TierSource, error) {
	th, err := theme.LoadBuiltin(cfg.Theme)
	if err != nil {
		return render.Options{}, "", exitError(exitInput, "failed to load theme: %v", err)
	}
	src, err := rating.ParseTierSource(cfg.TierSource)
	if err != nil {
		return render.Options{}, "", exitError(exitInput, "%v", err)
	}
	return render.Options{
		Theme:     th,
		Color:     colorEnabled(w, d.noColor),
		ShowScore: !d.noScore,
	}, src, nil
}

// colorEnabled is true only for terminals, and never when NO_COLOR is set.
func colorEnabled(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
