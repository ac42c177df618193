package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/zen/pkg/errors"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = iota
	// FormatTerminal styles output for a color terminal
	FormatTerminal
	// FormatText writes expansions verbatim, for pipes and editor filters
	FormatText
	// FormatJSON writes one JSON document per result, for editor integrations
	FormatJSON
)

// formatNames lists the accepted names, canonical name first
var formatNames = []struct {
	format Format
	names  []string
}{
	{FormatAuto, []string{"auto", ""}},
	{FormatTerminal, []string{"term", "terminal"}},
	{FormatText, []string{"text", "plain"}},
	{FormatJSON, []string{"json"}},
}

// String returns the canonical name of the format
func (f Format) String() string {
	for _, entry := range formatNames {
		if entry.format == f {
			return entry.names[0]
		}
	}
	return "unknown"
}

// Formats returns the canonical format names
func Formats() []string {
	out := make([]string, 0, len(formatNames))
	for _, entry := range formatNames {
		out = append(out, entry.names[0])
	}
	return out
}

// ParseFormat parses a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, entry := range formatNames {
		for _, name := range entry.names {
			if s == name {
				return entry.format, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s).
		WithDetail("valid", Formats())
}

// fdWriter is implemented by *os.File and other writers backed by a
// file descriptor
type fdWriter interface {
	Fd() uintptr
}

// DetectFormat resolves FormatAuto for w. Only a color capable terminal gets
// FormatTerminal; NO_COLOR, pipes, files and in-memory writers get text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(fdWriter)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
