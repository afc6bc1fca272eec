// Package controller owns the lifecycle of a review analysis request: input
// validation, the single in-flight call, and the settled outcome.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dshills/reviewstars/internal/analysis"
	"github.com/dshills/reviewstars/internal/client"
)

// Phase is the controller's position in the request lifecycle.
type Phase int

const (
	Idle Phase = iota
	InFlight
	Settled
)

func (p Phase) String() string {
	switch p {
	case InFlight:
		return "in_flight"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// Notification texts.
const (
	TitleComplete = "Analysis Complete"
	TitleFailed   = "Analysis Failed"
	TitleEmpty    = "Please enter a review"

	failedDescription = "Unable to connect to sentiment analysis API. Make sure the backend is running."
	emptyDescription  = "Enter some text to analyze the sentiment."
)

// Snapshot is a consistent view of the controller state. Result is set only
// when the last attempt succeeded; Err only when it failed.
type Snapshot struct {
	Phase    Phase
	Result   *analysis.Result
	Err      error
	Attempts int
}

// Controller mediates between review text and an Analyzer. A Controller
// allows at most one request in flight; further submits are rejected until
// it settles.
type Controller struct {
	analyzer client.Analyzer
	notifier Notifier
	logger   *slog.Logger
	prepare  func(string) string

	mu       sync.Mutex
	phase    Phase
	result   *analysis.Result
	err      error
	attempts int
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets where user notifications go. The default discards them.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithPrepare sets a transform applied to valid text before it is sent,
// such as redaction.
func WithPrepare(fn func(string) string) Option {
	return func(c *Controller) { c.prepare = fn }
}

// New creates an idle controller that sends reviews to a.
func New(a client.Analyzer, opts ...Option) *Controller {
	c := &Controller{
		analyzer: a,
		notifier: discardNotifier{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates text, sends it, and waits for the outcome. Empty input
// returns a *ValidationError without touching the state. A submit while
// another is in flight returns ErrInFlight. Otherwise the controller settles
// with either the result or a *ServerError / *NetworkError.
func (c *Controller) Submit(ctx context.Context, text string) (*analysis.Result, error) {
	if strings.TrimSpace(text) == "" {
		c.notifier.Notify(Notification{Kind: KindPrompt, Title: TitleEmpty, Description: emptyDescription})
		return nil, &ValidationError{Reason: "review text is empty"}
	}

	c.mu.Lock()
	if c.phase == InFlight {
		c.mu.Unlock()
		c.logger.Warn("submit rejected, request in flight")
		return nil, ErrInFlight
	}
	c.phase = InFlight
	c.result, c.err = nil, nil
	c.attempts++
	attempt := c.attempts
	c.mu.Unlock()

	if c.prepare != nil {
		text = c.prepare(text)
	}
	c.logger.Info("analysis started",
		slog.String("analyzer", c.analyzer.Name()),
		slog.Int("attempt", attempt))

	res, err := c.analyzer.Analyze(ctx, analysis.Request{ReviewText: text})
	if err == nil && res == nil {
		err = errors.New("analyzer returned no result")
	}
	if err != nil {
		err = classify(err)
		c.settle(nil, err)
		c.logger.Error("analysis failed", slog.Int("attempt", attempt), slog.Any("error", err))
		c.notifier.Notify(Notification{Kind: KindFailure, Title: TitleFailed, Description: failedDescription})
		return nil, err
	}

	c.settle(res, nil)
	c.logger.Info("analysis complete",
		slog.Int("attempt", attempt),
		slog.Float64("score", res.Score),
		slog.String("sentiment", string(res.Sentiment)))
	c.notifier.Notify(Notification{Kind: KindSuccess, Title: TitleComplete, Description: "Sentiment: " + string(res.Sentiment)})
	return res, nil
}

// Reset returns a settled controller to Idle. It fails with ErrInFlight
// while a request is running.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == InFlight {
		return ErrInFlight
	}
	c.phase = Idle
	c.result, c.err = nil, nil
	return nil
}

// State returns the current phase.
func (c *Controller) State() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Snapshot returns the current phase together with the settled outcome.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Phase: c.phase, Result: c.result, Err: c.err, Attempts: c.attempts}
}

func (c *Controller) settle(res *analysis.Result, err error) {
	c.mu.Lock()
	c.phase = Settled
	c.result, c.err = res, err
	c.mu.Unlock()
}

func classify(err error) error {
	var se *client.StatusError
	if errors.As(err, &se) {
		return &ServerError{Status: se.Status, Err: err}
	}
	return &NetworkError{Err: err}
}
