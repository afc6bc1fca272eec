package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/reviewstars/internal/analysis"
)

const (
	maxResponseBytes = 1 << 20
	maxErrorBody     = 200
)

// HTTPAnalyzer posts reviews to a remote sentiment-analysis endpoint.
type HTTPAnalyzer struct {
	endpoint  string
	healthURL string
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTP creates an analyzer for endpoint. A zero timeout leaves requests
// bounded only by the caller's context.
func NewHTTP(endpoint, healthURL string, timeout time.Duration) *HTTPAnalyzer {
	return &HTTPAnalyzer{
		endpoint:  endpoint,
		healthURL: healthURL,
		client:    &http.Client{Timeout: timeout},
		logger:    slog.Default(),
	}
}

func (h *HTTPAnalyzer) Name() string { return "http" }

// Endpoint returns the URL reviews are posted to.
func (h *HTTPAnalyzer) Endpoint() string { return h.endpoint }

func (h *HTTPAnalyzer) Analyze(ctx context.Context, r analysis.Request) (*analysis.Result, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("client: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	h.logger.Debug("posting review",
		slog.String("endpoint", h.endpoint),
		slog.String("request_id", requestID),
		slog.Int("chars", len(r.ReviewText)))

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("client: read response: %w", err)
	}

	h.logger.Debug("response received",
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: truncate(string(respBody), maxErrorBody)}
	}

	res, err := analysis.Normalize(respBody)
	if err != nil {
		return nil, fmt.Errorf("client: parse response: %w", err)
	}
	return res, nil
}

// Ping checks that the service answers on its health URL.
func (h *HTTPAnalyzer) Ping(ctx context.Context) error {
	if h.healthURL == "" {
		return fmt.Errorf("client: no health URL configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.healthURL, nil)
	if err != nil {
		return fmt.Errorf("client: create request: %w", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("client: health check failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode}
	}
	return nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
