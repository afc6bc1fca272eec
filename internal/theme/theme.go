// Package theme loads the glyph and color sets used to draw star ratings.
package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/reviewstars/internal/analysis"
	"github.com/dshills/reviewstars/internal/rating"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Default is the theme used when none is named.
const Default = "classic"

// Theme maps star fills to glyphs and tiers to ANSI SGR color codes.
type Theme struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Glyphs      Glyphs `yaml:"glyphs"`
	Colors      Colors `yaml:"colors"`
}

// Glyphs are the characters drawn for each star fill.
type Glyphs struct {
	Full  string `yaml:"full"`
	Half  string `yaml:"half"`
	Empty string `yaml:"empty"`
}

// Colors holds SGR parameters such as "32" or "1;33". Empty means uncolored.
type Colors struct {
	Positive string `yaml:"positive"`
	Neutral  string `yaml:"neutral"`
	Negative string `yaml:"negative"`
	Muted    string `yaml:"muted"`
}

// Glyph returns the character for f.
func (t *Theme) Glyph(f rating.Fill) string {
	switch f {
	case rating.Full:
		return t.Glyphs.Full
	case rating.Half:
		return t.Glyphs.Half
	default:
		return t.Glyphs.Empty
	}
}

// Color returns the SGR code for tier.
func (t *Theme) Color(tier analysis.Tier) string {
	switch tier {
	case analysis.TierPositive:
		return t.Colors.Positive
	case analysis.TierNeutral:
		return t.Colors.Neutral
	default:
		return t.Colors.Negative
	}
}

// LoadBuiltin loads a built-in theme by name.
func LoadBuiltin(name string) (*Theme, error) {
	if name == "" {
		name = Default
	}
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("theme.LoadBuiltin: unknown theme %q: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a theme document and checks that every glyph is set.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme.Parse: %w", err)
	}
	var missing []string
	if t.Glyphs.Full == "" {
		missing = append(missing, "full")
	}
	if t.Glyphs.Half == "" {
		missing = append(missing, "half")
	}
	if t.Glyphs.Empty == "" {
		missing = append(missing, "empty")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("theme.Parse: %q missing glyphs: %s", t.Name, strings.Join(missing, ", "))
	}
	return &t, nil
}

// List returns the names of all built-in themes.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n := e.Name(); strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
