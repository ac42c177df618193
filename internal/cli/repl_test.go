package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/zen"
)

func newSession(t *testing.T) *session {
	t.Helper()
	e, err := zen.NewDefault()
	require.NoError(t, err)
	return &session{engine: e, docType: "html", profile: "plain"}
}

func TestSessionEval(t *testing.T) {
	s := newSession(t)

	tests := []struct {
		name string
		line string
		want string
		quit bool
	}{
		{"blank line", "   ", "", false},
		{"abbreviation", "ul>li*2", "<ul><li></li><li></li></ul>", false},
		{"wrap", `:wrap ul>li* one\ntwo`, "<ul><li>one</li><li>two</li></ul>", false},
		{"profiles", ":profiles", "html\nplain\nxhtml\nxml", false},
		{"quit", ":quit", "", true},
		{"short quit", ":q", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, quit, err := s.eval(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestSessionSwitches(t *testing.T) {
	s := newSession(t)

	_, _, err := s.eval(":type css")
	require.NoError(t, err)
	assert.Equal(t, "css", s.docType)
	assert.Equal(t, "css/plain zen> ", s.prompt())

	out, _, err := s.eval("pos:a")
	require.NoError(t, err)
	assert.Equal(t, "position:absolute;", out)

	_, _, err = s.eval(":profile xhtml")
	require.NoError(t, err)
	_, _, err = s.eval(":type html")
	require.NoError(t, err)
	out, _, err = s.eval("a")
	require.NoError(t, err)
	assert.Equal(t, `<a href="|">|</a>`, out)

	_, _, err = s.eval(":var locale fr-FR")
	require.NoError(t, err)
	out, _, err = s.eval("html:5")
	require.NoError(t, err)
	assert.Contains(t, out, `lang="fr-FR"`)

	out, _, err = s.eval(":types")
	require.NoError(t, err)
	assert.Contains(t, out, "xsl")
}

func TestSessionErrors(t *testing.T) {
	s := newSession(t)

	tests := []struct {
		line string
		code errors.ErrorCode
	}{
		{"div>>p", errors.ErrNotFound},
		{":type", errors.ErrInvalidInput},
		{":profile a b", errors.ErrInvalidInput},
		{":var", errors.ErrInvalidInput},
		{":wrap div", errors.ErrInvalidInput},
		{":wrap div> text", errors.ErrParse},
		{":bogus", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, _, err := s.eval(tt.line)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
