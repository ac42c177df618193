package actions

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/profile"
	"github.com/arthur-debert/zen/pkg/zen"
)

// Options selects how abbreviations are expanded
type Options struct {
	DocType string
	Profile string
	// ExpandTabs replaces tabs in the output with that many spaces when > 0
	ExpandTabs int
}

func (o Options) withDefaults() Options {
	if o.DocType == "" {
		o.DocType = zen.DefaultDocType
	}
	if o.Profile == "" {
		o.Profile = zen.DefaultProfile
	}
	return o
}

// ExpandAbbreviation expands the abbreviation that ends at the caret. It
// reports false when there is no abbreviation, it does not expand, or the
// caret sits inside tag markup.
func ExpandAbbreviation(buf Buffer, e *zen.Engine, opts Options) (Edit, bool) {
	logger := logging.GetLogger("actions")
	opts = opts.withDefaults()

	caret := buf.clamp(buf.Caret)
	if zen.IsInsideTag(buf.Text, caret) {
		logger.Debug().Int("caret", caret).Msg("Caret is inside a tag, nothing to expand")
		return Edit{}, false
	}

	lineStart, _ := buf.LineRange(caret)
	abbreviation, offset := zen.FindAbbreviationInLine(buf.Text[lineStart:caret], caret-lineStart)
	if abbreviation == "" {
		return Edit{}, false
	}

	out := e.ExpandMarked(abbreviation, opts.DocType, opts.Profile)
	if out == "" {
		logger.Debug().Str("abbreviation", abbreviation).Msg("Abbreviation did not expand")
		return Edit{}, false
	}

	start := lineStart + offset
	text, at := finish(e, out, buf.LinePadding(caret), opts)
	logger.Debug().
		Str("abbreviation", abbreviation).
		Int("start", start).
		Int("end", caret).
		Msg("Expanded abbreviation")
	return Edit{Start: start, End: caret, Text: text, Caret: start + at}, true
}

// WrapWithAbbreviation wraps the selection, or the current line when nothing
// is selected, with the expanded abbreviation
func WrapWithAbbreviation(buf Buffer, e *zen.Engine, abbreviation string, opts Options) (Edit, bool) {
	logger := logging.GetLogger("actions")
	opts = opts.withDefaults()

	start, end, ok := buf.Selection()
	if !ok {
		start, end = buf.LineRange(buf.Caret)
		start += len(buf.LinePadding(buf.Caret))
		if start >= end {
			return Edit{}, false
		}
	}

	padding := buf.LinePadding(start)
	content := unindent(buf.Text[start:end], padding, e.Newline())

	out, ok := e.WrapMarked(abbreviation, content, opts.DocType, opts.Profile)
	if !ok {
		logger.Debug().Str("abbreviation", abbreviation).Msg("Abbreviation does not parse, nothing wrapped")
		return Edit{}, false
	}

	text, at := finish(e, out, padding, opts)
	return Edit{Start: start, End: end, Text: text, Caret: start + at}, true
}

// finish indents the output to the current line, expands tabs and removes
// caret placeholders, returning the text and the offset of the first caret
func finish(e *zen.Engine, out, padding string, opts Options) (string, int) {
	out = e.PadString(out, padding)
	if opts.ExpandTabs > 0 {
		out = strings.ReplaceAll(out, "\t", strings.Repeat(" ", opts.ExpandTabs))
	}
	return extractCaret(out)
}

// extractCaret removes every caret marker. The caret goes to the first one,
// or to the end of the text.
func extractCaret(text string) (string, int) {
	at := strings.Index(text, profile.CaretMarker)
	if at < 0 {
		return text, len(text)
	}
	return strings.ReplaceAll(text, profile.CaretMarker, ""), at
}

// unindent strips padding from the start of every line after the first
func unindent(text, padding, newline string) string {
	if padding == "" {
		return text
	}
	lines := strings.Split(text, newline)
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.TrimPrefix(lines[i], padding)
	}
	return strings.Join(lines, newline)
}
