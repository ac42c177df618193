package actions

import "strings"

// NextEditPoint finds the next place worth typing at after pos: an empty
// attribute value, the gap between an opening and a closing tag, or a blank
// line.
func NextEditPoint(text string, pos int) (int, bool) {
	return findEditPoint(text, pos, 1)
}

// PrevEditPoint is NextEditPoint searching backwards
func PrevEditPoint(text string, pos int) (int, bool) {
	return findEditPoint(text, pos, -1)
}

func findEditPoint(text string, pos, inc int) (int, bool) {
	for i := pos + inc; i >= 0 && i < len(text); i += inc {
		p, ok := editPointAt(text, i)
		if ok && ((inc > 0 && p > pos) || (inc < 0 && p < pos)) {
			return p, true
		}
	}
	return pos, false
}

func editPointAt(text string, i int) (int, bool) {
	c := text[i]
	next := byte(0)
	if i+1 < len(text) {
		next = text[i+1]
	}

	switch c {
	case '"', '\'':
		if i > 0 && text[i-1] == '=' && next == c {
			return i + 1, true
		}
	case '>':
		if next == '<' && i+2 < len(text) && text[i+2] == '/' {
			return i + 1, true
		}
	case '\n':
		end := strings.IndexByte(text[i+1:], '\n')
		if end < 0 {
			return 0, false
		}
		end += i + 1
		line := strings.TrimRight(text[i+1:end], "\r")
		if strings.TrimSpace(line) == "" {
			return i + 1 + len(line), true
		}
	}
	return 0, false
}
