package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/dshills/reviewstars/internal/analysis"
	"github.com/dshills/reviewstars/internal/textprep"
)

// negativeCompound is VADER's conventional cut-off for a negative sentence.
const negativeCompound = -0.05

// The lexicon is loaded on first use and shared.
var vader = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

// LocalAnalyzer scores reviews on the machine with the VADER lexicon. It is
// used when no endpoint is reachable or --offline is given.
type LocalAnalyzer struct{}

// NewLocal creates a VADER-backed analyzer.
func NewLocal() *LocalAnalyzer {
	return &LocalAnalyzer{}
}

func (l *LocalAnalyzer) Name() string { return "local" }

func (l *LocalAnalyzer) Analyze(ctx context.Context, r analysis.Request) (*analysis.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := textprep.Clean(r.ReviewText)
	compound := vader().PolarityScores(text).Compound

	// Map compound [-1, 1] onto a 0..1 positivity and reuse the service's
	// thresholds over it.
	positivity := (compound + 1) / 2
	var sentiment analysis.Sentiment
	switch {
	case positivity > 0.8:
		sentiment = analysis.SentimentPositive
	case positivity > 0.35:
		sentiment = analysis.SentimentNeutral
	default:
		sentiment = analysis.SentimentNegative
	}

	issues := []string{}
	for _, s := range textprep.Sentences(text) {
		if vader().PolarityScores(s).Compound <= negativeCompound {
			issues = append(issues, s)
		}
	}

	return &analysis.Result{
		Score:     positivity * 5,
		Sentiment: sentiment,
		Issues:    issues,
		Response:  summarize(sentiment, compound, len(issues)),
	}, nil
}

func summarize(s analysis.Sentiment, compound float64, negatives int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s review (VADER compound %.2f).", s.Title(), compound)
	switch negatives {
	case 0:
		b.WriteString(" No negative remarks found.")
	case 1:
		b.WriteString(" 1 negative remark found.")
	default:
		fmt.Fprintf(&b, " %d negative remarks found.", negatives)
	}
	return b.String()
}
