package actions

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/arthur-debert/zen/pkg/logging"
)

// pair is an element of a buffer located by its tags. An element without a
// closing tag, such as <br> or <img />, is unary and spans its opening tag.
type pair struct {
	name                 string
	openStart, openEnd   int
	closeStart, closeEnd int
	unary                bool
}

func (p pair) outer() (int, int) {
	if p.unary {
		return p.openStart, p.openEnd
	}
	return p.openStart, p.closeEnd
}

func (p pair) inner() (int, int) {
	return p.openEnd, p.closeStart
}

// scanPairs lists the elements of text in the order their opening tags
// appear. A closing tag closes the nearest open element of the same name and
// leaves the elements opened after it unary. Stray closing tags are ignored.
func scanPairs(text string) []pair {
	z := html.NewTokenizer(strings.NewReader(text))
	var pairs []pair
	var open []int
	pos := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return pairs
		}
		start := pos
		pos += len(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			pairs = append(pairs, pair{name: string(name), openStart: start, openEnd: pos, unary: true})
			if tt == html.StartTagToken {
				open = append(open, len(pairs)-1)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			for i := len(open) - 1; i >= 0; i-- {
				p := &pairs[open[i]]
				if p.name == string(name) {
					p.closeStart, p.closeEnd, p.unary = start, pos, false
					open = open[:i]
					break
				}
			}
		}
	}
}

// MatchPairOutward selects the content of the element around the selection,
// or the whole element when its content is already selected. Repeating it
// climbs one step at a time towards the root. It reports false when no
// element encloses the selection.
func MatchPairOutward(buf Buffer) (int, int, bool) {
	logger := logging.GetLogger("actions")
	s, e, ok := buf.Selection()
	if !ok {
		s, e = buf.Caret, buf.Caret
	}

	best, bestStart, bestEnd := -1, 0, 0
	consider := func(a, b int) {
		if a <= s && e <= b && b-a > e-s && (best < 0 || b-a < best) {
			best, bestStart, bestEnd = b-a, a, b
		}
	}
	for _, p := range scanPairs(buf.Text) {
		if !p.unary {
			consider(p.inner())
		}
		consider(p.outer())
	}

	if best < 0 {
		logger.Debug().Int("start", s).Int("end", e).Msg("No element encloses the selection")
		return s, e, false
	}
	return bestStart, bestEnd, true
}

// MatchPairInward is the reverse of MatchPairOutward. A selected element
// narrows to its content, and selected content narrows to its first child
// element. Without a selection it selects the element around the caret.
func MatchPairInward(buf Buffer) (int, int, bool) {
	s, e, ok := buf.Selection()
	if !ok {
		return MatchPairOutward(buf)
	}

	pairs := scanPairs(buf.Text)
	for _, p := range pairs {
		if a, b := p.outer(); a == s && b == e {
			if p.unary {
				return s, e, false
			}
			a, b = p.inner()
			return a, b, true
		}
	}

	for _, p := range pairs {
		if a, b := p.outer(); s <= a && b <= e {
			return a, b, true
		}
	}
	return s, e, false
}

// Select is an edit that selects Text[start:end] without changing it
func (b Buffer) Select(start, end int) Edit {
	start, end = b.clamp(start), b.clamp(end)
	return Edit{Start: start, End: end, Text: b.Text[start:end], Caret: end, Select: true}
}
