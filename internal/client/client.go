// Package client defines the Analyzer interface and its implementations for
// obtaining a sentiment analysis of a review.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/reviewstars/internal/analysis"
)

// Analyzer returns a normalized analysis for a single review.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
	Name() string
}

// Pinger is implemented by analyzers backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Settings selects and configures an Analyzer.
type Settings struct {
	Endpoint  string
	HealthURL string
	Timeout   time.Duration
	Offline   bool
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("client: endpoint returned %d", e.Status)
	}
	return fmt.Sprintf("client: endpoint returned %d: %s", e.Status, e.Body)
}
