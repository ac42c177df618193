package actions

import "strings"

// Buffer is a snapshot of an editor document
type Buffer struct {
	Text  string
	Caret int

	// SelectionStart and SelectionEnd are equal when nothing is selected
	SelectionStart int
	SelectionEnd   int
}

// NewBuffer returns a buffer with the caret at caret and no selection
func NewBuffer(text string, caret int) Buffer {
	b := Buffer{Text: text}
	b.Caret = b.clamp(caret)
	b.SelectionStart, b.SelectionEnd = b.Caret, b.Caret
	return b
}

func (b Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.Text) {
		return len(b.Text)
	}
	return pos
}

// Selection returns the ordered selection bounds and whether anything is
// selected
func (b Buffer) Selection() (int, int, bool) {
	start, end := b.clamp(b.SelectionStart), b.clamp(b.SelectionEnd)
	if start > end {
		start, end = end, start
	}
	return start, end, start != end
}

// LineRange returns the bounds of the line holding pos, without its line
// terminator
func (b Buffer) LineRange(pos int) (int, int) {
	pos = b.clamp(pos)
	start := strings.LastIndexByte(b.Text[:pos], '\n') + 1
	end := strings.IndexByte(b.Text[pos:], '\n')
	if end < 0 {
		end = len(b.Text)
	} else {
		end += pos
	}
	if end > start && b.Text[end-1] == '\r' {
		end--
	}
	return start, end
}

// CurrentLine returns the line holding the caret
func (b Buffer) CurrentLine() string {
	start, end := b.LineRange(b.Caret)
	return b.Text[start:end]
}

// LinePadding returns the leading whitespace of the line holding pos
func (b Buffer) LinePadding(pos int) string {
	start, end := b.LineRange(pos)
	line := b.Text[start:end]
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// Edit replaces Text[Start:End] with Text and moves the caret to Caret
type Edit struct {
	Start int
	End   int
	Text  string
	Caret int

	// Select asks the editor to select Start:End. Text is left unchanged.
	Select bool
}

// Apply returns text with the edit applied
func (e Edit) Apply(text string) string {
	return text[:e.Start] + e.Text + text[e.End:]
}
