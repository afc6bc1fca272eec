package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/reviewstars/internal/client"
	"github.com/dshills/reviewstars/internal/config"
	"github.com/dshills/reviewstars/internal/controller"
	"github.com/dshills/reviewstars/internal/rating"
	"github.com/dshills/reviewstars/internal/redact"
	"github.com/dshills/reviewstars/internal/render"
)

const (
	cmdClear = ":clear"
	cmdQuit  = ":quit"
)

type interactiveFlags struct {
	display  displayFlags
	analyzer client.Analyzer
}

func newInteractiveCmd(rf *rootFlags) *cobra.Command {
	f := &interactiveFlags{}

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Paste reviews one after another; a blank line submits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rf, &f.display)
			if err != nil {
				return err
			}
			logger, err := setupLogging(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := streams{in: cmd.InOrStdin(), out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
			return runInteractive(cmd.Context(), cfg, f, s, logger)
		},
	}
	addDisplayFlags(cmd, &f.display)
	return cmd
}

// runInteractive reads reviews until EOF or :quit. Lines accumulate until a
// blank line, which submits them. Failures are reported and the loop goes on.
func runInteractive(ctx context.Context, cfg config.Config, f *interactiveFlags, s streams, logger *slog.Logger) error {
	analyzer, err := resolveAnalyzer(cfg, f.analyzer)
	if err != nil {
		return err
	}
	opts, src, err := renderOptions(cfg, &f.display, s.out)
	if err != nil {
		return err
	}

	ctrlOpts := []controller.Option{
		controller.WithNotifier(controller.WriterNotifier{W: s.err}),
		controller.WithLogger(logger),
	}
	if cfg.Redact {
		ctrlOpts = append(ctrlOpts, controller.WithPrepare(redact.Redact))
	}
	ctrl := controller.New(analyzer, ctrlOpts...)

	fmt.Fprintf(s.err, "Paste a review, then an empty line to analyze. %s resets, %s exits.\n", cmdClear, cmdQuit)

	var pending []string
	submit := func() {
		text := strings.Join(pending, "\n")
		pending = pending[:0]
		res, err := ctrl.Submit(ctx, text)
		if err != nil {
			// the notifier already told the user
			logger.Debug("submit failed", slog.Any("error", err))
			return
		}
		r := rating.ForResult(res, cfg.MaxRating, src)
		if err := render.Terminal(s.out, res, r, opts); err != nil {
			logger.Error("render failed", slog.Any("error", err))
		}
		fmt.Fprintln(s.out)
	}

	sc := bufio.NewScanner(s.in)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case cmdQuit:
			return nil
		case cmdClear:
			pending = pending[:0]
			if err := ctrl.Reset(); err != nil {
				logger.Warn("reset failed", slog.Any("error", err))
			}
			continue
		case "":
			if len(pending) > 0 {
				submit()
			}
			continue
		}
		pending = append(pending, line)
	}
	if err := sc.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(pending) > 0 {
		submit()
	}
	return nil
}
