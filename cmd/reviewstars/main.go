package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	root := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	root := &cobra.Command{
		Use:           "reviewstars",
		Short:         "Analyze the sentiment of hotel reviews and show it as a star rating",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "Config file path (default: ./reviewstars.yaml if present)")
	pf.StringVar(&rf.envFile, "env-file", "", "Env file to load (default: ./.env if present)")
	pf.StringVar(&rf.endpoint, "endpoint", "", "Sentiment analysis endpoint URL")
	pf.DurationVar(&rf.timeout, "timeout", 0, "Request timeout (0 waits indefinitely)")
	pf.BoolVar(&rf.offline, "offline", false, "Analyze locally with VADER instead of calling the endpoint")
	pf.StringVar(&rf.logLevel, "log-level", "", "Log level: debug, info, warn, or error")
	pf.BoolVar(&rf.verbose, "verbose", false, "Shorthand for --log-level debug")

	root.AddCommand(
		newAnalyzeCmd(rf),
		newInteractiveCmd(rf),
		newPingCmd(rf),
		newThemesCmd(),
	)
	return root
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// Exit codes.
const (
	exitBelowThreshold = 2
	exitInput          = 3
	exitAnalysis       = 4
	exitSchema         = 5
)
