package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/reviewstars/internal/client"
)

const defaultPingTimeout = 5 * time.Second

func newPingCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the analysis service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rf, nil)
			if err != nil {
				return err
			}
			if _, err := setupLogging(cfg, cmd.ErrOrStderr()); err != nil {
				return err
			}
			if cfg.Offline {
				fmt.Fprintln(cmd.OutOrStdout(), "offline: using the local analyzer, nothing to ping")
				return nil
			}

			a, err := resolveAnalyzer(cfg, nil)
			if err != nil {
				return err
			}
			timeout := cfg.Timeout
			if timeout == 0 {
				timeout = defaultPingTimeout
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			p, ok := a.(client.Pinger)
			if !ok {
				return exitError(exitInput, "analyzer %s cannot be pinged", a.Name())
			}
			start := time.Now()
			if err := p.Ping(ctx); err != nil {
				return exitError(exitAnalysis, "%s unreachable: %v", cfg.ResolvedHealthURL(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s (%s)\n", cfg.ResolvedHealthURL(), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
