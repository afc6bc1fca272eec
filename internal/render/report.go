package render

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/reviewstars/internal/analysis"
	"github.com/dshills/reviewstars/internal/rating"
)

// Report is the JSON document written by --format json.
type Report struct {
	Tool    string           `json:"tool"`
	Version string           `json:"version"`
	Input   Input            `json:"input"`
	Result  *analysis.Result `json:"result"`
	Rating  RatingView       `json:"rating"`
	Meta    Meta             `json:"meta"`
}

// Input describes the review that was analyzed.
type Input struct {
	Source   string `json:"source"`
	Hash     string `json:"hash"`
	Chars    int    `json:"chars"`
	Redacted bool   `json:"redacted"`
}

// RatingView is the serializable form of a rating.
type RatingView struct {
	Stars      []string      `json:"stars"`
	Label      string        `json:"label"`
	Tier       analysis.Tier `json:"tier"`
	TierSource string        `json:"tier_source"`
	Disagrees  bool          `json:"tier_disagrees_with_sentiment"`
}

// Meta records which analyzer produced the result.
type Meta struct {
	Analyzer string `json:"analyzer"`
	Endpoint string `json:"endpoint,omitempty"`
}

// NewRatingView converts r for serialization.
func NewRatingView(res *analysis.Result, r rating.Rating, src rating.TierSource) RatingView {
	stars := make([]string, len(r.Stars))
	for i, f := range r.Stars {
		stars[i] = f.String()
	}
	return RatingView{
		Stars:      stars,
		Label:      r.Label(),
		Tier:       r.Tier,
		TierSource: string(src),
		Disagrees:  rating.Disagrees(res),
	}
}

// JSON marshals rep with indentation and a trailing newline.
func JSON(rep *Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}
