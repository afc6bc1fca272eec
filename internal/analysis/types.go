// Package analysis defines the request and result types exchanged with a
// sentiment-analysis endpoint.
package analysis

import "strings"

// Request is a single review submitted for analysis.
type Request struct {
	ReviewText string `json:"review"`
}

// Valid reports whether the review has any non-whitespace content.
func (r Request) Valid() bool {
	return strings.TrimSpace(r.ReviewText) != ""
}

// Result is the normalized response of a sentiment-analysis call.
type Result struct {
	Score      float64   `json:"score"`
	Sentiment  Sentiment `json:"sentiment"`
	Issues     []string  `json:"issues"`
	Response   string    `json:"response"`
	Confidence *float64  `json:"confidence,omitempty"`
}

// Raw mirrors the server JSON before defaults are applied. Pointer fields
// distinguish "absent" from zero values.
type Raw struct {
	Score      *float64  `json:"score"`
	Sentiment  Sentiment `json:"sentiment"`
	Issues     []string  `json:"issues"`
	Response   *string   `json:"response"`
	Confidence *float64  `json:"confidence"`
}
