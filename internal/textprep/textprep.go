// Package textprep turns pasted review text into plain prose for scoring.
package textprep

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern   = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
	punctGapPattern = regexp.MustCompile(`\s+([.,!?;:])`)
)

// RemoveLinks keeps the text of markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// Clean renders markdown to HTML, strips the tags, and collapses whitespace.
func Clean(input string) string {
	input = RemoveLinks(input)
	out := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := tagPattern.ReplaceAllString(string(out), " ")
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")
	return punctGapPattern.ReplaceAllString(text, "$1")
}

// Sentences splits cleaned text on terminal punctuation. Empty fragments are
// dropped.
func Sentences(text string) []string {
	var out []string
	for _, m := range sentencePattern.FindAllString(text, -1) {
		if s := strings.TrimSpace(m); s != "" && strings.Trim(s, ".!?") != "" {
			out = append(out, s)
		}
	}
	return out
}
