// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/zen/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text. Expansion output is
// written verbatim so it can be piped straight into a buffer.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Expansion:
		return r.writeBlock(v.Output)
	case *display.LineMatch:
		if !v.Found() {
			return nil
		}
		_, err := fmt.Fprintf(r.output, "%s\t%d\n", v.Abbreviation, v.Start)
		return err
	case *display.Edit:
		_, err := fmt.Fprintf(r.output, "%d\t%d\t%d\n%s", v.Start, v.End, v.Caret, v.Text)
		if err != nil {
			return err
		}
		if !strings.HasSuffix(v.Text, "\n") {
			_, err = fmt.Fprintln(r.output)
		}
		return err
	case *display.Table:
		return r.renderTable(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
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

func (r *Renderer) renderTable(t *display.Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(r.output, "%s\n\n", t.Title); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	if len(t.Headers) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(t.Headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return w.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
