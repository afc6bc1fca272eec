// Package rating maps a continuous score onto a discrete star layout and a
// color tier.
package rating

import (
	"fmt"
	"math"

	"github.com/dshills/reviewstars/internal/analysis"
)

// DefaultMax is the number of stars drawn when no maximum is given.
const DefaultMax = 5

// Fill describes how much of a single star is drawn.
type Fill int

const (
	Empty Fill = iota
	Half
	Full
)

func (f Fill) String() string {
	switch f {
	case Full:
		return "full"
	case Half:
		return "half"
	default:
		return "empty"
	}
}

// Rating is the visual form of a score.
type Rating struct {
	Score float64
	Max   int
	Stars []Fill
	Tier  analysis.Tier
}

// Render lays out stars for score using the score-derived tier.
func Render(score float64, maxRating int) Rating {
	return RenderWithTier(score, maxRating, TierFor(score))
}

// RenderWithTier lays out stars for score and colors them with tier.
// No clamping is applied: scores above maxRating fill every star and
// negative scores leave every star empty.
func RenderWithTier(score float64, maxRating int, tier analysis.Tier) Rating {
	if maxRating <= 0 {
		maxRating = DefaultMax
	}
	stars := make([]Fill, maxRating)
	for i := 1; i <= maxRating; i++ {
		stars[i-1] = FillAt(score, i)
	}
	return Rating{Score: score, Max: maxRating, Stars: stars, Tier: tier}
}

// FillAt returns the fill of the star at 1-based position i.
func FillAt(score float64, i int) Fill {
	pos := float64(i)
	switch {
	case score >= pos:
		return Full
	case score >= pos-0.5:
		return Half
	default:
		return Empty
	}
}

// TierFor is the score threshold policy: 4 and above is positive, 3 and
// above is neutral, anything else (including NaN) is negative.
func TierFor(score float64) analysis.Tier {
	switch {
	case score >= 4:
		return analysis.TierPositive
	case score >= 3:
		return analysis.TierNeutral
	default:
		return analysis.TierNegative
	}
}

// TierForSentiment maps a server classification onto a tier. Unknown
// sentiments fall back to neutral.
func TierForSentiment(s analysis.Sentiment) analysis.Tier {
	switch s {
	case analysis.SentimentPositive:
		return analysis.TierPositive
	case analysis.SentimentNegative:
		return analysis.TierNegative
	default:
		return analysis.TierNeutral
	}
}

// Label formats the score to one decimal place against the maximum, e.g.
// "4.2/5". Ties round away from zero, so 4.25 shows as "4.3".
func (r Rating) Label() string {
	score := math.Round(r.Score*10) / 10
	if score == 0 {
		score = 0 // drop the sign of -0
	}
	return fmt.Sprintf("%.1f/%d", score, r.Max)
}

// Count returns how many stars have the given fill.
func (r Rating) Count(f Fill) int {
	n := 0
	for _, s := range r.Stars {
		if s == f {
			n++
		}
	}
	return n
}
