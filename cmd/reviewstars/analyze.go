package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/reviewstars/internal/client"
	"github.com/dshills/reviewstars/internal/config"
	"github.com/dshills/reviewstars/internal/controller"
	"github.com/dshills/reviewstars/internal/rating"
	"github.com/dshills/reviewstars/internal/redact"
	"github.com/dshills/reviewstars/internal/render"
	"github.com/dshills/reviewstars/internal/reviewtext"
	"github.com/dshills/reviewstars/internal/schema"
)

type analyzeFlags struct {
	display      displayFlags
	file         string
	format       string
	out          string
	failBelow    float64
	hasFailBelow bool
	strict       bool

	// analyzer overrides resolution; set by tests.
	analyzer client.Analyzer
}

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newAnalyzeCmd(rf *rootFlags) *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [review text...]",
		Short: "Analyze one review and print its rating",
		Long: "Analyze one review. The text is taken from the arguments, from --file, " +
			"or from standard input when neither is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasFailBelow = cmd.Flags().Changed("fail-below")
			cfg, err := loadConfig(cmd, rf, &f.display)
			if err != nil {
				return err
			}
			logger, err := setupLogging(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := streams{in: cmd.InOrStdin(), out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
			return runAnalyze(cmd.Context(), cfg, args, f, s, logger)
		},
	}

	flags := cmd.Flags()
	addDisplayFlags(cmd, &f.display)
	flags.StringVar(&f.file, "file", "", "Read the review from a file")
	flags.StringVar(&f.format, "format", "terminal", "Output format: terminal, md, or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.Float64Var(&f.failBelow, "fail-below", 0, "Exit 2 if the score is below this value")
	flags.BoolVar(&f.strict, "strict", false, "Exit 5 if the response has out-of-range or duplicate values")

	return cmd
}

func runAnalyze(ctx context.Context, cfg config.Config, args []string, f *analyzeFlags, s streams, logger *slog.Logger) error {
	switch f.format {
	case "terminal", "md", "json":
	default:
		return exitError(exitInput, "unknown format: %s", f.format)
	}
	if f.file != "" && len(args) > 0 {
		return exitError(exitInput, "give the review as arguments or --file, not both")
	}

	// 1. Read review
	var txt *reviewtext.Text
	var err error
	switch {
	case f.file != "":
		txt, err = reviewtext.Load(f.file)
	case len(args) > 0:
		txt = reviewtext.FromArgs(args)
	default:
		txt, err = reviewtext.Read(s.in, "stdin")
	}
	if err != nil {
		return exitError(exitInput, "failed to read review: %v", err)
	}
	logger.Debug("review loaded", slog.String("source", txt.Source), slog.Int("chars", txt.Chars()))

	// 2. Resolve analyzer and display settings before any network call
	analyzer, err := resolveAnalyzer(cfg, f.analyzer)
	if err != nil {
		return err
	}
	outW := s.out
	if f.out != "" {
		outW = io.Discard
	}
	opts, src, err := renderOptions(cfg, &f.display, outW)
	if err != nil {
		return err
	}

	// 3. Submit
	ctrlOpts := []controller.Option{
		controller.WithNotifier(controller.WriterNotifier{W: s.err}),
		controller.WithLogger(logger),
	}
	redacted := cfg.Redact && redact.Changed(txt.Raw)
	if cfg.Redact {
		ctrlOpts = append(ctrlOpts, controller.WithPrepare(redact.Redact))
	}
	ctrl := controller.New(analyzer, ctrlOpts...)

	res, err := ctrl.Submit(ctx, txt.Raw)
	if err != nil {
		return analysisExit(err)
	}

	// 4. Check response
	problems := schema.Validate(res, cfg.MaxRating)
	for _, p := range problems {
		logger.Warn("questionable response value", slog.String("field", p.Path), slog.String("problem", p.Message))
	}
	if f.strict && len(problems) > 0 {
		return exitError(exitSchema, "response failed strict checks: %s", joinProblems(problems))
	}

	// 5. Output
	r := rating.ForResult(res, cfg.MaxRating, src)
	var output string
	switch f.format {
	case "terminal":
		var b strings.Builder
		if err := render.Terminal(&b, res, r, opts); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
		output = b.String()
	case "md":
		output = render.Markdown(res, r, opts)
	case "json":
		rep := &render.Report{
			Tool:    "reviewstars",
			Version: version,
			Input: render.Input{
				Source:   txt.Source,
				Hash:     txt.Hash,
				Chars:    txt.Chars(),
				Redacted: redacted,
			},
			Result: res,
			Rating: render.NewRatingView(res, r, src),
			Meta:   render.Meta{Analyzer: analyzer.Name()},
		}
		if h, ok := analyzer.(*client.HTTPAnalyzer); ok {
			rep.Meta.Endpoint = h.Endpoint()
		}
		output, err = render.JSON(rep)
		if err != nil {
			return err
		}
	}

	if f.out != "" {
		logger.Debug("writing output", slog.String("path", f.out))
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(s.out, output)
	}

	// 6. Exit code based on --fail-below
	if f.hasFailBelow && res.Score < f.failBelow {
		return exitError(exitBelowThreshold, "score %.1f is below %.1f", res.Score, f.failBelow)
	}
	return nil
}

// analysisExit maps controller errors onto exit codes.
func analysisExit(err error) error {
	var ve *controller.ValidationError
	var se *controller.ServerError
	var ne *controller.NetworkError
	switch {
	case errors.As(err, &ve):
		return exitError(exitInput, "no review text given")
	case errors.As(err, &se):
		return exitError(exitAnalysis, "analysis failed: server returned %d", se.Status)
	case errors.As(err, &ne):
		return exitError(exitAnalysis, "analysis failed: %v", ne.Err)
	}
	return err
}

func joinProblems(errs []schema.ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
