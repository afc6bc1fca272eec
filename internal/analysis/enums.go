package analysis

import "strings"

// Sentiment is the classification declared by the analysis service.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Title returns the sentiment with its first letter upper-cased.
func (s Sentiment) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Tier selects the color coding of a rating.
type Tier string

const (
	TierPositive Tier = "positive"
	TierNeutral  Tier = "neutral"
	TierNegative Tier = "negative"
)

func (t Tier) Valid() bool {
	switch t {
	case TierPositive, TierNeutral, TierNegative:
		return true
	}
	return false
}
