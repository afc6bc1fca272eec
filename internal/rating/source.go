package rating

import (
	"fmt"
	"strings"

	"github.com/dshills/reviewstars/internal/analysis"
)

// TierSource selects which classification colors a rating.
type TierSource string

const (
	// SourceScore derives the tier from the numeric score.
	SourceScore TierSource = "score"
	// SourceSentiment uses the sentiment declared by the server.
	SourceSentiment TierSource = "sentiment"
)

// ParseTierSource accepts "score" or "sentiment" (case-insensitive).
func ParseTierSource(s string) (TierSource, error) {
	switch TierSource(strings.ToLower(strings.TrimSpace(s))) {
	case SourceScore, "":
		return SourceScore, nil
	case SourceSentiment:
		return SourceSentiment, nil
	}
	return "", fmt.Errorf("rating: unknown tier source %q (want score or sentiment)", s)
}

// ForResult renders a result with the tier chosen by src.
func ForResult(res *analysis.Result, maxRating int, src TierSource) Rating {
	tier := TierFor(res.Score)
	if src == SourceSentiment {
		tier = TierForSentiment(res.Sentiment)
	}
	return RenderWithTier(res.Score, maxRating, tier)
}

// Disagrees reports whether the score-derived tier differs from the
// server-declared sentiment.
func Disagrees(res *analysis.Result) bool {
	return TierFor(res.Score) != TierForSentiment(res.Sentiment)
}
