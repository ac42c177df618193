// Package ui provides a unified interface for rendering command output in
// different formats. It supports terminal (rich), text (plain), and JSON
// output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/ui/json"
	"github.com/arthur-debert/zen/pkg/ui/terminal"
	"github.com/arthur-debert/zen/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a result value from the display package
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer writing to output. FormatAuto is resolved
// with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
