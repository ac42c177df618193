// Package styles holds the lipgloss styles of zen's terminal output.
//
// A Theme is parsed from YAML: a palette of adaptive colors, which follow
// the light or dark background of the terminal, and named styles that refer
// to those colors. The built-in theme is embedded from styles.yaml.
package styles

import (
	_ "embed"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/zen/pkg/errors"
)

// Names of the styles the renderers use
const (
	Header       = "Header"
	Muted        = "Muted"
	Error        = "Error"
	Info         = "Info"
	Caret        = "Caret"
	Abbreviation = "Abbreviation"
)

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Faint        bool   `yaml:"faint,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
}

type themeFile struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// Theme maps style names to styles. It is immutable once parsed.
type Theme struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedTheme []byte

var defaultTheme = mustParse(embeddedTheme)

func mustParse(data []byte) *Theme {
	t, err := ParseTheme(data)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTheme builds a theme from YAML. A style naming a color missing from
// the palette is an error.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse theme")
	}

	t := &Theme{styles: make(map[string]lipgloss.Style, len(file.Styles))}
	for name, def := range file.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline).
			Faint(def.Faint)

		if def.Foreground != "" {
			c, ok := file.Colors[def.Foreground]
			if !ok {
				return nil, errors.Newf(errors.ErrConfigValid, "style %s uses unknown color %s", name, def.Foreground).
					WithDetail("style", name)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		if def.MarginBottom > 0 {
			style = style.MarginBottom(def.MarginBottom)
		}
		t.styles[name] = style
	}
	return t, nil
}

// Get returns the named style, or an unstyled one
func (t *Theme) Get(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether the theme defines name
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Names lists the defined styles in sorted order
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the embedded theme
func Default() *Theme {
	return defaultTheme
}

// GetStyle returns a style of the embedded theme
func GetStyle(name string) lipgloss.Style {
	return defaultTheme.Get(name)
}
