package markup

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/profile"
	"github.com/arthur-debert/zen/pkg/settings"
)

const childToken = "${child}"

// Snippet renders a template from the snippet store. Its only attributes are
// the id and class slots substituted into ${id} and ${class}.
type Snippet struct {
	element
	template string
	slots    map[string]string
}

// NewSnippet creates a snippet node for the named template
func NewSnippet(name string, count int, docType string, reg *settings.Registry) *Snippet {
	s := &Snippet{
		element: newElement(name, count, docType, reg),
		slots:   make(map[string]string, 2),
	}
	s.template, _ = s.reg.Snippet(docType, name)
	return s
}

// AddAttribute fills a placeholder slot, overwriting any previous value
func (s *Snippet) AddAttribute(name, value string) {
	s.slots[name] = value
}

// Slot returns the value given to a placeholder slot
func (s *Snippet) Slot(name string) (string, bool) {
	v, ok := s.slots[name]
	return v, ok
}

// Template returns the raw snippet template
func (s *Snippet) Template() string {
	return s.template
}

// IsBlock is always true for snippets
func (s *Snippet) IsBlock() bool { return true }

func (s *Snippet) render(r *Renderer) string {
	p := r.Profile
	data := strings.ReplaceAll(markCarets(s.template), `\t`, r.Indentation)

	var begin, end, childPadding string
	if data != "" {
		if p.TagNewline != profile.NewlineNever {
			data = strings.ReplaceAll(data, `\n`, r.Newline)
			for _, line := range strings.Split(data, r.Newline) {
				if strings.Contains(line, childToken) {
					childPadding = leadingSpace(line)
					break
				}
			}
		} else {
			data = strings.ReplaceAll(data, `\n`, "")
		}

		if i := strings.Index(data, childToken); i >= 0 {
			begin, end = data[:i], data[i+len(childToken):]
		} else {
			begin = data
		}
	}

	content := r.renderChildren(s.children, false)
	if childPadding != "" {
		content = PadString(content, childPadding, r.Newline)
	}

	vars := map[string]string{"id": p.Cursor(), "class": p.Cursor()}
	for k, v := range s.slots {
		vars[k] = v
	}
	begin = ReplaceVariables(begin, vars)
	end = ReplaceVariables(end, vars)

	if s.content != "" {
		content = r.pad(s.content, 1) + content
	}

	result := make([]string, s.count)
	for i := range result {
		result[i] = begin + content + end
	}

	glue := ""
	if p.TagNewline != profile.NewlineNever {
		glue = r.Newline
	}
	return strings.Join(result, glue)
}
