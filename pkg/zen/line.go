package zen

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/zen/pkg/markup"
)

const abbrPunctuation = "#.>+*:$-_!@"

func isAllowedChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		strings.IndexByte(abbrPunctuation, c) >= 0
}

// FindAbbreviationInLine scans backwards from caret over the characters an
// abbreviation may contain and returns the abbreviation and its start offset.
// A '>' stops the scan only when it closes a tag already in the line.
func FindAbbreviationInLine(line string, caret int) (string, int) {
	if caret > len(line) {
		caret = len(line)
	}
	if caret < 0 {
		caret = 0
	}

	start := 0
	for i := caret - 1; i >= 0; i-- {
		c := line[i]
		if !isAllowedChar(c) || (c == '>' && markup.EndsWithTag(line[:i+1])) {
			start = i + 1
			break
		}
	}
	return line[start:caret], start
}

var tagAt = regexp.MustCompile(`^<\/?\w[\w:\-]*.*?>`)

// IsInsideTag reports whether the caret offset pos falls inside the markup
// of a tag, between its '<' and '>'
func IsInsideTag(text string, pos int) bool {
	if pos <= 0 || text == "" {
		return false
	}
	if pos > len(text) {
		pos = len(text)
	}
	open := strings.LastIndexByte(text[:pos], '<')
	if open < 0 {
		return false
	}
	m := tagAt.FindString(text[open:])
	return m != "" && pos > open && pos < open+len(m)
}

// DocTypeFor maps an editor language or file extension to a document type.
// Anything unknown is html.
func DocTypeFor(lang string) string {
	switch strings.ToLower(strings.TrimPrefix(lang, ".")) {
	case "css", "scss", "less":
		return "css"
	case "xsl", "xslt":
		return "xsl"
	case "xml", "svg", "rss", "atom":
		return "xml"
	default:
		return DefaultDocType
	}
}
