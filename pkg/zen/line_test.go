package zen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAbbreviationInLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		caret     int
		wantAbbr  string
		wantStart int
	}{
		{"whole line", "ul>li*3", 7, "ul>li*3", 0},
		{"after indentation", "    div#a", 9, "div#a", 4},
		{"caret in the middle", "div span", 3, "div", 0},
		{"after a tag", "<p>ul>li", 8, "ul>li", 3},
		{"after a closing tag", "text</b>a", 9, "a", 8},
		{"child operator kept", "<div>a>b", 8, "a>b", 5},
		{"nothing before caret", "div ", 4, "", 4},
		{"caret past end", "abc", 10, "abc", 0},
		{"negative caret", "abc", -1, "", 0},
		{"snippet characters", "x html:5", 8, "html:5", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, start := FindAbbreviationInLine(tt.line, tt.caret)
			assert.Equal(t, tt.wantAbbr, a)
			assert.Equal(t, tt.wantStart, start)
		})
	}
}

func TestIsInsideTag(t *testing.T) {
	text := `<a href="x">link</a>`
	assert.True(t, IsInsideTag(text, 3))
	assert.False(t, IsInsideTag(text, 0), "before the opening bracket")
	assert.False(t, IsInsideTag(text, 12), "right after the tag")
	assert.False(t, IsInsideTag(text, 13), "inside content")
	assert.True(t, IsInsideTag(text, 18))
	assert.False(t, IsInsideTag("plain", 2))
	assert.False(t, IsInsideTag("", 0))
	assert.False(t, IsInsideTag(text, -1))
}

func TestDocTypeFor(t *testing.T) {
	assert.Equal(t, "css", DocTypeFor("CSS"))
	assert.Equal(t, "css", DocTypeFor(".scss"))
	assert.Equal(t, "xsl", DocTypeFor("XSLT"))
	assert.Equal(t, "xml", DocTypeFor("svg"))
	assert.Equal(t, "html", DocTypeFor("python"))
	assert.Equal(t, "html", DocTypeFor(""))
}
