// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/zen/pkg/ui/display"
	"github.com/arthur-debert/zen/pkg/ui/styles"
)

// Renderer provides rich terminal output using lipgloss styles and pterm tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Expansion:
		return r.writeBlock(highlightCarets(v.Output, v.Caret))
	case *display.LineMatch:
		return r.renderLineMatch(v)
	case *display.Edit:
		summary := fmt.Sprintf("%s [%d:%d] caret %d", v.Action, v.Start, v.End, v.Caret)
		if v.Select {
			summary = fmt.Sprintf("%s selects [%d:%d]", v.Action, v.Start, v.End)
		}
		header := styles.GetStyle(styles.Muted).Render(summary)
		if _, err := fmt.Fprintln(r.output, header); err != nil {
			return err
		}
		return r.writeBlock(v.Text)
	case *display.Table:
		return r.renderTable(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderLineMatch(m *display.LineMatch) error {
	if !m.Found() {
		_, err := fmt.Fprintln(r.output, styles.GetStyle(styles.Muted).Render("no abbreviation found"))
		return err
	}

	end := m.Start + len(m.Abbreviation)
	if m.Start < 0 || end > len(m.Line) {
		_, err := fmt.Fprintln(r.output, styles.GetStyle(styles.Abbreviation).Render(m.Abbreviation))
		return err
	}

	line := m.Line[:m.Start] +
		styles.GetStyle(styles.Abbreviation).Render(m.Abbreviation) +
		m.Line[end:]
	_, err := fmt.Fprintln(r.output, line)
	return err
}

func (r *Renderer) renderTable(t *display.Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(r.output, styles.GetStyle(styles.Header).Render(t.Title)); err != nil {
			return err
		}
	}

	data := make([][]string, 0, len(t.Rows)+1)
	hasHeader := len(t.Headers) > 0
	if hasHeader {
		data = append(data, t.Headers)
	}
	data = append(data, t.Rows...)

	out, err := pterm.DefaultTable.
		WithHasHeader(hasHeader).
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	return r.writeBlock(out)
}

func (r *Renderer) writeBlock(s string) error {
	if _, err := io.WriteString(r.output, s); err != nil {
		return err
	}
	if !strings.HasSuffix(s, "\n") {
		_, err := fmt.Fprintln(r.output)
		return err
	}
	return nil
}

// highlightCarets styles every caret marker in the output
func highlightCarets(s, caret string) string {
	if caret == "" || !strings.Contains(s, caret) {
		return s
	}
	return strings.ReplaceAll(s, caret, styles.GetStyle(styles.Caret).Render(caret))
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.GetStyle(styles.Error).Render("Error: "+err.Error()))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle(styles.Info).Render(msg))
	return err
}
