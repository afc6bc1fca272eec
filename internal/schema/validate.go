// Package schema checks a normalized analysis result for values that render
// oddly but are not rejected outright.
package schema

import (
	"fmt"
	"strings"

	"github.com/dshills/reviewstars/internal/analysis"
)

// ValidationError describes a single questionable field.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate reports scores outside 0..maxRating, blank or duplicated issues,
// and a confidence outside 0..1. Scores are never clamped; this only flags them.
func Validate(r *analysis.Result, maxRating int) []ValidationError {
	var errs []ValidationError

	if r.Score < 0 || r.Score > float64(maxRating) {
		errs = append(errs, ValidationError{"score", fmt.Sprintf("%.2f outside 0..%d", r.Score, maxRating)})
	}
	if !r.Sentiment.Valid() {
		errs = append(errs, ValidationError{"sentiment", fmt.Sprintf("invalid: %q", r.Sentiment)})
	}

	seen := make(map[string]bool)
	for i, issue := range r.Issues {
		prefix := fmt.Sprintf("issues[%d]", i)
		key := strings.ToLower(strings.TrimSpace(issue))
		if key == "" {
			errs = append(errs, ValidationError{prefix, "blank"})
			continue
		}
		if seen[key] {
			errs = append(errs, ValidationError{prefix, fmt.Sprintf("duplicate: %q", issue)})
		}
		seen[key] = true
	}

	if r.Confidence != nil && (*r.Confidence < 0 || *r.Confidence > 1) {
		errs = append(errs, ValidationError{"confidence", fmt.Sprintf("%.2f outside 0..1", *r.Confidence)})
	}
	return errs
}
