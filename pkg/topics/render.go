package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/zen/pkg/logging"
)

// Renderer formats topic content. ext is the file extension of the topic.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content, ext string) string {
	return content
}

// MarkdownRenderer styles .md topics for the terminal with glamour. Other
// topics, and markdown glamour fails on, are returned unchanged.
type MarkdownRenderer struct {
	// Style is a glamour style name or style file; empty detects the
	// terminal background
	Style string
	// Width wraps lines; 0 keeps glamour's default
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewMarkdownRenderer returns a renderer detecting the terminal background
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) init() {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" {
		options = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	term, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger := logging.GetLogger("topics")
		logger.Debug().Err(err).Str("style", r.Style).Msg("Markdown rendering disabled")
		return
	}
	r.term = term
}

// Render styles markdown content
func (r *MarkdownRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}
	r.once.Do(r.init)
	if r.term == nil {
		return content
	}

	out, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return out
}
