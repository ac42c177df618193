package markup

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/profile"
)

// Renderer serializes a tree
type Renderer struct {
	Profile     profile.Profile
	Newline     string
	Indentation string
}

// NewRenderer returns a renderer using "\n" and a tab
func NewRenderer(p profile.Profile) *Renderer {
	return &Renderer{Profile: p, Newline: "\n", Indentation: "\t"}
}

// Render serializes n and its descendants
func (r *Renderer) Render(n Node) string {
	if n == nil {
		return ""
	}
	return n.render(r)
}

// renderChildren joins rendered children. With lookahead a newline also goes
// before a child that may start on a new line, not only after one.
func (r *Renderer) renderChildren(children []Node, lookahead bool) string {
	var b strings.Builder
	for i, c := range children {
		b.WriteString(c.render(r))
		if i == len(children)-1 {
			continue
		}
		if r.Profile.AllowNewline(c.IsBlock()) || (lookahead && r.Profile.AllowNewline(children[i+1].IsBlock())) {
			b.WriteString(r.Newline)
		}
	}
	return b.String()
}

func (r *Renderer) indentLevel() int {
	if r.Profile.Indent {
		return 1
	}
	return 0
}

// pad indents every line after the first by level indentation units
func (r *Renderer) pad(text string, level int) string {
	return PadString(text, strings.Repeat(r.Indentation, level), r.Newline)
}
