// Test Type: Unit Test
// Description: Editor actions over in-memory buffers using the embedded settings

package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/zen/pkg/profile"
	"github.com/arthur-debert/zen/pkg/zen"
)

func engine(t *testing.T) *zen.Engine {
	t.Helper()
	e, err := zen.NewDefault()
	require.NoError(t, err)
	return e
}

func TestExpandAbbreviation(t *testing.T) {
	e := engine(t)
	buf := NewBuffer("  ul>li*2", 9)

	edit, ok := ExpandAbbreviation(buf, e, Options{})
	require.True(t, ok)
	assert.Equal(t, 2, edit.Start)
	assert.Equal(t, 9, edit.End)
	assert.Equal(t, "<ul>\n  \t<li></li>\n  \t<li></li>\n  </ul>", edit.Text)
	assert.Equal(t, 14, edit.Caret)
	assert.Equal(t, "  <ul>\n  \t<li></li>\n  \t<li></li>\n  </ul>", edit.Apply(buf.Text))
}

func TestExpandAbbreviationExpandTabs(t *testing.T) {
	e := engine(t)
	edit, ok := ExpandAbbreviation(NewBuffer("  ul>li*2", 9), e, Options{ExpandTabs: 2})
	require.True(t, ok)
	assert.Equal(t, "<ul>\n    <li></li>\n    <li></li>\n  </ul>", edit.Text)
	assert.Equal(t, 15, edit.Caret)
}

func TestExpandAbbreviationInContext(t *testing.T) {
	e := engine(t)
	text := "<p>first</p>\n<div>a>b\nlast"
	buf := NewBuffer(text, 21)

	edit, ok := ExpandAbbreviation(buf, e, Options{Profile: "plain"})
	require.True(t, ok)
	assert.Equal(t, 18, edit.Start)
	assert.Equal(t, "<a href=\"\"><b></b></a>", edit.Text)
	assert.Equal(t, "<p>first</p>\n<div><a href=\"\"><b></b></a>\nlast", edit.Apply(text))
	assert.Equal(t, 18+len(edit.Text), edit.Caret, "no caret placeholder in plain output")
}

func TestExpandAbbreviationNothingToDo(t *testing.T) {
	e := engine(t)

	tests := []struct {
		name string
		buf  Buffer
	}{
		{"empty buffer", NewBuffer("", 0)},
		{"space before caret", NewBuffer("div ", 4)},
		{"syntax error", NewBuffer("div>", 4)},
		{"inside tag", NewBuffer(`<a href="ul">`, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ExpandAbbreviation(tt.buf, e, Options{})
			assert.False(t, ok)
		})
	}
}

func TestWrapCurrentLine(t *testing.T) {
	e := engine(t)
	buf := NewBuffer("  hello world", 5)

	edit, ok := WrapWithAbbreviation(buf, e, "div", Options{})
	require.True(t, ok)
	assert.Equal(t, 2, edit.Start)
	assert.Equal(t, 13, edit.End)
	assert.Equal(t, "<div>hello world</div>", edit.Text)
	assert.Equal(t, 7, edit.Caret)
	assert.Equal(t, "  <div>hello world</div>", edit.Apply(buf.Text))
}

func TestWrapSelection(t *testing.T) {
	e := engine(t)
	buf := Buffer{Text: "  one\n  two", Caret: 11, SelectionStart: 11, SelectionEnd: 2}

	edit, ok := WrapWithAbbreviation(buf, e, "ul>li*", Options{Profile: "plain"})
	require.True(t, ok)
	assert.Equal(t, 2, edit.Start)
	assert.Equal(t, 11, edit.End)
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", edit.Text)
	assert.Equal(t, edit.Start+len(edit.Text), edit.Caret)
}

func TestWrapKeepsPipes(t *testing.T) {
	e := engine(t)

	tests := []struct {
		name      string
		buf       Buffer
		abbr      string
		opts      Options
		wantText  string
		wantCaret int
	}{
		{
			name:      "plain profile",
			buf:       Buffer{Text: "a || b", SelectionEnd: 6},
			abbr:      "code",
			opts:      Options{Profile: "plain"},
			wantText:  "<code>a || b</code>",
			wantCaret: 19,
		},
		{
			name:      "caret still placed",
			buf:       Buffer{Text: "x | y", SelectionEnd: 5},
			abbr:      "p",
			wantText:  "<p>x | y</p>",
			wantCaret: 3,
		},
		{
			name:      "per line",
			buf:       Buffer{Text: "a|b\nc|d", SelectionEnd: 7},
			abbr:      "ul>li*",
			opts:      Options{Profile: "plain"},
			wantText:  "<ul><li>a|b</li><li>c|d</li></ul>",
			wantCaret: 33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit, ok := WrapWithAbbreviation(tt.buf, e, tt.abbr, tt.opts)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, edit.Text)
			assert.Equal(t, tt.wantCaret, edit.Caret)
		})
	}

	out, ok := e.Wrap("code", "a || b", "html", profile.XHTML)
	require.True(t, ok)
	assert.Equal(t, "<code>|a || b</code>", out, "host caret is placed once, user pipes stay")
}

func TestWrapNothingToDo(t *testing.T) {
	e := engine(t)

	_, ok := WrapWithAbbreviation(NewBuffer("text", 0), e, "div>", Options{})
	assert.False(t, ok)

	_, ok = WrapWithAbbreviation(NewBuffer("   \nx", 1), e, "div", Options{})
	assert.False(t, ok, "blank line")
}

func TestBuffer(t *testing.T) {
	buf := NewBuffer("one\r\n  two\nthree", 8)
	start, end := buf.LineRange(buf.Caret)
	assert.Equal(t, 5, start)
	assert.Equal(t, 10, end)
	assert.Equal(t, "  two", buf.CurrentLine())
	assert.Equal(t, "  ", buf.LinePadding(buf.Caret))

	start, end = buf.LineRange(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end, "carriage return is not part of the line")

	_, _, selected := buf.Selection()
	assert.False(t, selected)

	assert.Equal(t, 0, NewBuffer("abc", -3).Caret)
	assert.Equal(t, 3, NewBuffer("abc", 99).Caret)
}

func TestExtractCaret(t *testing.T) {
	m := profile.CaretMarker
	text, at := extractCaret("<a href=\"" + m + "\">" + m + "</a>")
	assert.Equal(t, "<a href=\"\"></a>", text)
	assert.Equal(t, 9, at)

	text, at = extractCaret("<br />")
	assert.Equal(t, "<br />", text)
	assert.Equal(t, 6, at)

	text, at = extractCaret("a|b")
	assert.Equal(t, "a|b", text, "a literal pipe is not a caret")
	assert.Equal(t, 3, at)
}

func TestEditPoints(t *testing.T) {
	text := "<a href=\"\"></a>\n\n<p></p>"

	forward := []int{9, 11, 16, 20}
	pos := 0
	for _, want := range forward {
		next, ok := NextEditPoint(text, pos)
		require.True(t, ok)
		assert.Equal(t, want, next)
		pos = next
	}
	_, ok := NextEditPoint(text, pos)
	assert.False(t, ok)

	backward := []int{16, 11, 9}
	for _, want := range backward {
		prev, ok := PrevEditPoint(text, pos)
		require.True(t, ok)
		assert.Equal(t, want, prev)
		pos = prev
	}
	_, ok = PrevEditPoint(text, pos)
	assert.False(t, ok)
}

const nested = "<div><p>one <b>two</b></p><br></div>"

func TestMatchPairOutward(t *testing.T) {
	steps := [][2]int{{15, 18}, {12, 22}, {8, 22}, {5, 26}, {5, 30}, {0, 36}}

	buf := NewBuffer(nested, 16)
	for _, want := range steps {
		start, end, ok := MatchPairOutward(buf)
		require.True(t, ok)
		assert.Equal(t, want, [2]int{start, end}, nested[start:end])
		buf.SelectionStart, buf.SelectionEnd = start, end
	}

	_, _, ok := MatchPairOutward(buf)
	assert.False(t, ok, "the root element is already selected")
}

func TestMatchPairOutwardFromTag(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		caret int
		want  [2]int
	}{
		{"inside opening tag", nested, 2, [2]int{0, 36}},
		{"inside unary tag", nested, 28, [2]int{26, 30}},
		{"case insensitive names", "<DIV>x</div>", 5, [2]int{5, 6}},
		{"raw text is not markup", "<script>if (a<b) {}</script>", 14, [2]int{8, 19}},
		{"unclosed elements are unary", "<ul><li>a<li>b</ul>", 14, [2]int{4, 14}},
		{"stray closing tag", "a</p>b<i>c</i>", 9, [2]int{9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := MatchPairOutward(NewBuffer(tt.text, tt.caret))
			require.True(t, ok)
			assert.Equal(t, tt.want, [2]int{start, end})
		})
	}

	_, _, ok := MatchPairOutward(NewBuffer("a</p>b<i>c</i>", 0))
	assert.False(t, ok, "no element around the caret")
}

func TestMatchPairInward(t *testing.T) {
	steps := [][2]int{{5, 30}, {5, 26}, {8, 22}, {12, 22}, {15, 18}}

	buf := Buffer{Text: nested, Caret: 36, SelectionStart: 0, SelectionEnd: 36}
	for _, want := range steps {
		start, end, ok := MatchPairInward(buf)
		require.True(t, ok)
		assert.Equal(t, want, [2]int{start, end}, nested[start:end])
		buf.SelectionStart, buf.SelectionEnd = start, end
	}

	_, _, ok := MatchPairInward(buf)
	assert.False(t, ok, "text without child elements")

	_, _, ok = MatchPairInward(Buffer{Text: nested, SelectionStart: 26, SelectionEnd: 30})
	assert.False(t, ok, "a unary element has no content")

	start, end, ok := MatchPairInward(NewBuffer(nested, 16))
	require.True(t, ok)
	assert.Equal(t, [2]int{15, 18}, [2]int{start, end}, "without a selection it matches around the caret")
}

func TestSelect(t *testing.T) {
	buf := NewBuffer(nested, 0)
	edit := buf.Select(15, 18)
	assert.True(t, edit.Select)
	assert.Equal(t, "two", edit.Text)
	assert.Equal(t, 18, edit.Caret)
	assert.Equal(t, nested, edit.Apply(nested))
}
