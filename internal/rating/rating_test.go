package rating

import (
	"math"
	"testing"

	"github.com/dshills/reviewstars/internal/analysis"
)

func TestFillAtGrid(t *testing.T) {
	// Sweep scores across [0, 5.5] in 0.05 steps and check the fill rule
	// against every position.
	for step := 0; step <= 110; step++ {
		score := float64(step) * 0.05
		for i := 1; i <= 5; i++ {
			got := FillAt(score, i)
			pos := float64(i)
			var want Fill
			switch {
			case score >= pos:
				want = Full
			case score >= pos-0.5 && score < pos:
				want = Half
			default:
				want = Empty
			}
			if got != want {
				t.Errorf("FillAt(%v, %d) = %s, want %s", score, i, got, want)
			}
		}
	}
}

func TestRenderLayouts(t *testing.T) {
	tests := []struct {
		score float64
		want  []Fill
	}{
		{0, []Fill{Empty, Empty, Empty, Empty, Empty}},
		{0.5, []Fill{Half, Empty, Empty, Empty, Empty}},
		{1, []Fill{Full, Empty, Empty, Empty, Empty}},
		{2.49, []Fill{Full, Full, Empty, Empty, Empty}},
		{2.5, []Fill{Full, Full, Half, Empty, Empty}},
		{3.7, []Fill{Full, Full, Full, Half, Empty}},
		{4.2, []Fill{Full, Full, Full, Full, Empty}},
		{4.5, []Fill{Full, Full, Full, Full, Half}},
		{5, []Fill{Full, Full, Full, Full, Full}},
	}
	for _, tt := range tests {
		r := Render(tt.score, 5)
		if len(r.Stars) != 5 {
			t.Fatalf("Render(%v) has %d stars", tt.score, len(r.Stars))
		}
		for i := range tt.want {
			if r.Stars[i] != tt.want[i] {
				t.Errorf("Render(%v).Stars[%d] = %s, want %s", tt.score, i, r.Stars[i], tt.want[i])
			}
		}
	}
}

func TestRenderDefaultMax(t *testing.T) {
	for _, m := range []int{0, -3} {
		r := Render(3, m)
		if r.Max != DefaultMax || len(r.Stars) != DefaultMax {
			t.Errorf("Render(3, %d) max=%d stars=%d, want %d", m, r.Max, len(r.Stars), DefaultMax)
		}
	}
	r := Render(7.5, 10)
	if r.Count(Full) != 7 || r.Count(Half) != 1 || r.Count(Empty) != 2 {
		t.Errorf("Render(7.5, 10) = %v", r.Stars)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  analysis.Tier
	}{
		{5, analysis.TierPositive},
		{4.0, analysis.TierPositive},
		{3.99, analysis.TierNeutral},
		{3.0, analysis.TierNeutral},
		{2.99, analysis.TierNegative},
		{0, analysis.TierNegative},
		{-1, analysis.TierNegative},
		{12, analysis.TierPositive},
		{math.NaN(), analysis.TierNegative},
	}
	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
		if got := Render(tt.score, 5).Tier; got != tt.want {
			t.Errorf("Render(%v).Tier = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRenderOutOfRange(t *testing.T) {
	high := Render(9, 5)
	if high.Count(Full) != 5 || high.Tier != analysis.TierPositive {
		t.Errorf("Render(9) = %v tier %s", high.Stars, high.Tier)
	}
	low := Render(-2, 5)
	if low.Count(Empty) != 5 || low.Tier != analysis.TierNegative {
		t.Errorf("Render(-2) = %v tier %s", low.Stars, low.Tier)
	}
	nan := Render(math.NaN(), 5)
	if nan.Count(Empty) != 5 {
		t.Errorf("Render(NaN) = %v", nan.Stars)
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, score := range []float64{0.3, 2.5, 3.0, 4.2, 4.75} {
		a := Render(score, 5)
		b := Render(score, 5)
		if a.Tier != b.Tier || a.Label() != b.Label() {
			t.Errorf("Render(%v) not stable: %v vs %v", score, a, b)
		}
		for i := range a.Stars {
			if a.Stars[i] != b.Stars[i] {
				t.Errorf("Render(%v).Stars[%d] differs between calls", score, i)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		max   int
		want  string
	}{
		{4.2, 5, "4.2/5"},
		{4.25, 5, "4.3/5"},
		{2.25, 5, "2.3/5"},
		{0.25, 5, "0.3/5"},
		{4.24, 5, "4.2/5"},
		{-0.04, 5, "0.0/5"},
		{3, 5, "3.0/5"},
		{0, 5, "0.0/5"},
		{math.Copysign(0, -1), 5, "0.0/5"},
		{7.5, 10, "7.5/10"},
	}
	for _, tt := range tests {
		if got := Render(tt.score, tt.max).Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTierForSentiment(t *testing.T) {
	tests := map[analysis.Sentiment]analysis.Tier{
		analysis.SentimentPositive: analysis.TierPositive,
		analysis.SentimentNeutral:  analysis.TierNeutral,
		analysis.SentimentNegative: analysis.TierNegative,
		"bogus":                    analysis.TierNeutral,
	}
	for in, want := range tests {
		if got := TierForSentiment(in); got != want {
			t.Errorf("TierForSentiment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestForResultTierSource(t *testing.T) {
	res := &analysis.Result{Score: 4.5, Sentiment: analysis.SentimentNeutral}

	byScore := ForResult(res, 5, SourceScore)
	if byScore.Tier != analysis.TierPositive {
		t.Errorf("score source tier = %q, want positive", byScore.Tier)
	}
	bySentiment := ForResult(res, 5, SourceSentiment)
	if bySentiment.Tier != analysis.TierNeutral {
		t.Errorf("sentiment source tier = %q, want neutral", bySentiment.Tier)
	}
	if byScore.Count(Full) != bySentiment.Count(Full) {
		t.Error("tier source must not change the star layout")
	}
	if !Disagrees(res) {
		t.Error("expected score and sentiment to disagree")
	}
	if Disagrees(&analysis.Result{Score: 4.2, Sentiment: analysis.SentimentPositive}) {
		t.Error("expected agreement for 4.2/positive")
	}
}

func TestParseTierSource(t *testing.T) {
	tests := []struct {
		in      string
		want    TierSource
		wantErr bool
	}{
		{"score", SourceScore, false},
		{"", SourceScore, false},
		{"Sentiment", SourceSentiment, false},
		{"server", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTierSource(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTierSource(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTierSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
