package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Normalize decodes a server response body and applies defaults: absent
// issues become an empty slice and an absent response becomes "". A missing
// or non-finite score is reported as an error. The sentiment is lowercased;
// values outside the known set are kept as sent. Scores outside 0..5 are
// passed through unchanged.
func Normalize(body []byte) (*Result, error) {
	var raw Raw
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("analysis.Normalize: decode: %w", err)
	}
	return FromRaw(raw)
}

// FromRaw applies the defaulting rules to an already-decoded response.
func FromRaw(raw Raw) (*Result, error) {
	if raw.Score == nil {
		return nil, fmt.Errorf("analysis.Normalize: score: required")
	}
	if math.IsNaN(*raw.Score) || math.IsInf(*raw.Score, 0) {
		return nil, fmt.Errorf("analysis.Normalize: score: not a finite number")
	}

	res := &Result{
		Score:      *raw.Score,
		Sentiment:  Sentiment(strings.ToLower(strings.TrimSpace(string(raw.Sentiment)))),
		Issues:     raw.Issues,
		Confidence: raw.Confidence,
	}
	if res.Issues == nil {
		res.Issues = []string{}
	}
	if raw.Response != nil {
		res.Response = *raw.Response
	}
	return res, nil
}
