package markup

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/zen/pkg/profile"
)

// contentPlaceholder marks where each line of wrapped text goes when a node
// repeats once per line
const contentPlaceholder = "{%::zen-content::%}"

// caretToken marks the caret in snippet templates and element definitions
const caretToken = "|"

var (
	endsWithTag = regexp.MustCompile(`<\/?[\w:\-]+(?:\s+[\w\-:]+(?:\s*=\s*(?:(?:"[^"]*")|(?:'[^']*')|[^>\s]+))?)*\s*(\/?)>$`)
	variable    = regexp.MustCompile(`\$\{([\w\-]+)\}`)
)

// EndsWithTag reports whether text ends with an opening, closing or
// self-closing tag. A single trailing newline is ignored.
func EndsWithTag(text string) bool {
	if endsWithTag.MatchString(text) {
		return true
	}
	return strings.HasSuffix(text, "\n") && endsWithTag.MatchString(text[:len(text)-1])
}

// markCarets turns the caret tokens of a definition into caret markers
func markCarets(text string) string {
	return strings.ReplaceAll(text, caretToken, profile.CaretMarker)
}

// ReplaceVariables substitutes ${name} tokens from vars. Unknown names are
// left as they are.
func ReplaceVariables(text string, vars map[string]string) string {
	if !strings.Contains(text, "${") {
		return text
	}
	return variable.ReplaceAllStringFunc(text, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// PadString prefixes every line after the first with pad. Lines are split on
// newline.
func PadString(text, pad, newline string) string {
	if pad == "" || newline == "" {
		return text
	}
	lines := strings.Split(text, newline)
	return strings.Join(lines, newline+pad)
}

// SplitLines splits text into lines, accepting \n, \r\n and \r. With
// removeEmpty, blank lines are dropped.
func SplitLines(text string, removeEmpty bool) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if !removeEmpty {
		return lines
	}
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// leadingSpace returns the whitespace prefix of line
func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
