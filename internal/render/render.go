// Package render produces terminal, Markdown, and JSON output for an
// analyzed review.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/reviewstars/internal/analysis"
	"github.com/dshills/reviewstars/internal/rating"
	"github.com/dshills/reviewstars/internal/theme"
)

// Options controls how a rating is drawn.
type Options struct {
	Theme     *theme.Theme
	Color     bool
	ShowScore bool
}

func (o Options) theme() *theme.Theme {
	if o.Theme != nil {
		return o.Theme
	}
	if th, err := theme.LoadBuiltin(theme.Default); err == nil {
		return th
	}
	return &theme.Theme{Glyphs: theme.Glyphs{Full: "*", Half: "+", Empty: "."}}
}

// Stars draws a rating as glyphs, followed by the score label when
// opts.ShowScore is set. Filled and half stars take the tier color; empty
// stars take the muted color.
func Stars(r rating.Rating, opts Options) string {
	th := opts.theme()
	tierColor := th.Color(r.Tier)

	var b strings.Builder
	for _, f := range r.Stars {
		glyph := th.Glyph(f)
		if f == rating.Empty {
			b.WriteString(paint(glyph, th.Colors.Muted, opts.Color))
		} else {
			b.WriteString(paint(glyph, tierColor, opts.Color))
		}
	}
	if opts.ShowScore {
		b.WriteString("  ")
		b.WriteString(paint(r.Label(), "1;"+tierColor, opts.Color && tierColor != ""))
	}
	return b.String()
}

// Terminal writes the rating and summary panel for res.
func Terminal(w io.Writer, res *analysis.Result, r rating.Rating, opts Options) error {
	var b strings.Builder

	b.WriteString("Overall Rating\n")
	fmt.Fprintf(&b, "  %s\n\n", Stars(r, opts))

	b.WriteString("Analysis Summary\n")
	if res.Response != "" {
		fmt.Fprintf(&b, "  %s\n", res.Response)
	}
	for _, issue := range res.Issues {
		fmt.Fprintf(&b, "  - %s\n", issue)
	}
	badge := fmt.Sprintf("[%s Sentiment]", res.Sentiment.Title())
	fmt.Fprintf(&b, "  %s\n", paint(badge, opts.theme().Color(rating.TierForSentiment(res.Sentiment)), opts.Color))
	if res.Confidence != nil {
		fmt.Fprintf(&b, "  confidence %.0f%%\n", *res.Confidence*100)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown renders res as a Markdown report.
func Markdown(res *analysis.Result, r rating.Rating, opts Options) string {
	var b strings.Builder
	plain := opts
	plain.Color = false

	b.WriteString("# Review Sentiment\n\n")
	fmt.Fprintf(&b, "**Rating:** %s (%s tier)\n", Stars(r, plain), r.Tier)
	fmt.Fprintf(&b, "**Sentiment:** %s\n", res.Sentiment.Title())
	if res.Confidence != nil {
		fmt.Fprintf(&b, "**Confidence:** %.0f%%\n", *res.Confidence*100)
	}
	b.WriteString("\n")

	b.WriteString("## Summary\n\n")
	if res.Response != "" {
		fmt.Fprintf(&b, "%s\n\n", res.Response)
	} else {
		b.WriteString("No summary provided.\n\n")
	}

	if len(res.Issues) > 0 {
		b.WriteString("## Issues\n\n")
		for _, issue := range res.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func paint(s, code string, enabled bool) string {
	if !enabled || code == "" {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
