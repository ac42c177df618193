package markup

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/zen/pkg/profile"
	"github.com/arthur-debert/zen/pkg/settings"
)

// Tag is a generic element. An empty name makes it a container that only
// writes its children, which is how the tree root is modelled.
type Tag struct {
	element
	attributes []settings.Attribute
}

// NewTag creates a tag and applies the default attributes of its
// abbreviation definition, if any
func NewTag(name string, count int, docType string, reg *settings.Registry) *Tag {
	t := &Tag{element: newElement(name, count, docType, reg)}
	if t.hasDef {
		for _, a := range t.def.Attributes {
			t.AddAttribute(a.Name, a.Value)
		}
	}
	return t
}

// NewRoot creates the nameless container at the top of a tree
func NewRoot(docType string, reg *settings.Registry) *Tag {
	return NewTag("", 1, docType, reg)
}

// AddAttribute sets an attribute. An existing value is overwritten, except
// for class where the new value is appended after a space.
func (t *Tag) AddAttribute(name, value string) {
	for i := range t.attributes {
		a := &t.attributes[i]
		if a.Name != name {
			continue
		}
		if name == "class" {
			if a.Value != "" {
				value = " " + value
			}
			a.Value += value
		} else {
			a.Value = value
		}
		return
	}
	t.attributes = append(t.attributes, settings.Attribute{Name: name, Value: value})
}

// Attributes returns the attributes in insertion order
func (t *Tag) Attributes() []settings.Attribute {
	return append([]settings.Attribute(nil), t.attributes...)
}

// Attribute returns the value of one attribute
func (t *Tag) Attribute(name string) (string, bool) {
	for _, a := range t.attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// hasTagsInContent reports whether the injected content ends with markup
func (t *Tag) hasTagsInContent() bool {
	return t.content != "" && EndsWithTag(t.content)
}

// hasBlockChildren is used to decide whether the tag's body goes on its own
// lines
func (t *Tag) hasBlockChildren() bool {
	if t.hasTagsInContent() && t.IsBlock() {
		return true
	}
	for _, c := range t.children {
		if c.IsBlock() {
			return true
		}
	}
	return false
}

func (t *Tag) render(r *Renderer) string {
	p := r.Profile
	cursor := p.Cursor()
	quote := p.Quote()
	isEmpty := t.IsEmpty() && len(t.children) == 0

	var attrs strings.Builder
	for _, a := range t.attributes {
		value := markCarets(a.Value)
		if value == "" {
			value = cursor
		}
		attrs.WriteString(" " + p.AttrName(a.Name) + "=" + quote + value + quote)
	}

	deepest := FindDeepestChild(t)

	content := ""
	if !isEmpty {
		if deepest != nil && t.repeatByLines {
			deepest.SetContent(contentPlaceholder)
		}
		content = r.renderChildren(t.children, true)
	}

	var start, end string
	if t.name != "" {
		name := p.TagName(t.name)
		if isEmpty {
			start = "<" + name + attrs.String() + p.SelfClosingMark() + ">"
		} else {
			start = "<" + name + attrs.String() + ">"
			end = "</" + name + ">"
		}
	}

	if p.TagNewline != profile.NewlineNever && t.name != "" {
		if (p.TagNewline == profile.NewlineAlways || t.hasBlockChildren()) && !t.IsEmpty() {
			start += r.Newline + r.Indentation
			end = r.Newline + end
		}
		if content != "" {
			content = r.pad(content, r.indentLevel())
		} else if !isEmpty {
			start += cursor
		}
	}

	var result []string
	if t.repeatByLines {
		for j, line := range SplitLines(strings.TrimSpace(t.content), true) {
			cur := ""
			if deepest == nil {
				cur = contentPlaceholder
				if content != "" {
					cur += r.Newline
				}
			}
			elem := numbered(start, j) + cur + content + end
			result = append(result, strings.ReplaceAll(elem, contentPlaceholder, strings.TrimSpace(line)))
		}
	}

	if len(result) == 0 {
		if t.content != "" {
			pad := 0
			if p.TagNewline == profile.NewlineAlways || (t.hasTagsInContent() && t.IsBlock()) {
				pad = 1
			}
			content = r.pad(t.content, pad) + content
		}
		for i := 0; i < t.count; i++ {
			result = append(result, numbered(start, i)+content+end)
		}
	}

	glue := ""
	if p.AllowNewline(t.IsBlock()) {
		glue = r.Newline
	}
	return strings.Join(result, glue)
}

// numbered replaces '$' with the 1-based copy number
func numbered(s string, i int) string {
	return strings.ReplaceAll(s, "$", strconv.Itoa(i+1))
}
