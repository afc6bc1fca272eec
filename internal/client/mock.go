package client

import (
	"context"
	"sync"

	"github.com/dshills/reviewstars/internal/analysis"
)

// MockAnalyzer is a test double that returns a canned result or error.
type MockAnalyzer struct {
	Result *analysis.Result
	Err    error
	// Block, when non-nil, is received from before returning.
	Block chan struct{}

	mu       sync.Mutex
	requests []analysis.Request
}

func (m *MockAnalyzer) Name() string { return "mock" }

func (m *MockAnalyzer) Analyze(ctx context.Context, r analysis.Request) (*analysis.Result, error) {
	m.mu.Lock()
	m.requests = append(m.requests, r)
	m.mu.Unlock()

	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.Result, m.Err
}

// Calls returns the requests received so far.
func (m *MockAnalyzer) Calls() []analysis.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]analysis.Request(nil), m.requests...)
}
