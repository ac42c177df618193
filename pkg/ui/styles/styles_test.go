package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/zen/pkg/errors"
)

func TestDefaultTheme(t *testing.T) {
	theme := Default()

	for _, name := range []string{Header, Muted, Error, Info, Caret, Abbreviation} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, theme.Has(name), "style %s should be defined", name)
		})
	}

	assert.True(t, GetStyle(Caret).GetBold())
	assert.True(t, GetStyle(Error).GetBold())
	assert.Equal(t, 1, GetStyle(Header).GetMarginBottom())
}

func TestUnknownStyleIsPlain(t *testing.T) {
	assert.Equal(t, "text", GetStyle("DoesNotExist").Render("text"))
}

func TestParseTheme(t *testing.T) {
	t.Run("custom definitions", func(t *testing.T) {
		theme, err := ParseTheme([]byte(`
colors:
  red:
    light: "#ff0000"
    dark: "#aa0000"
styles:
  Loud:
    bold: true
    underline: true
    foreground: red
  Quiet:
    faint: true
`))
		require.NoError(t, err)

		assert.Equal(t, []string{"Loud", "Quiet"}, theme.Names())
		assert.True(t, theme.Get("Loud").GetBold())
		assert.True(t, theme.Get("Loud").GetUnderline())
		assert.True(t, theme.Get("Quiet").GetFaint())
		assert.False(t, theme.Has(Header))
	})

	t.Run("unknown color", func(t *testing.T) {
		_, err := ParseTheme([]byte("styles:\n  Loud:\n    foreground: nope\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseTheme([]byte("styles: [unclosed"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}
