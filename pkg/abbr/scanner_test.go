package abbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/zen/pkg/errors"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		abbr string
		want []Token
	}{
		{
			name: "single name",
			abbr: "div",
			want: []Token{{Name: "div"}},
		},
		{
			name: "id classes and count",
			abbr: "li#item-$.a.b_c*3",
			want: []Token{{Name: "li", ID: "item-$", Classes: []string{"a", "b_c"}, HasMultiplier: true, Count: 3}},
		},
		{
			name: "operators",
			abbr: "ul>li+li",
			want: []Token{
				{Name: "ul"},
				{Operator: OpChild, Name: "li", Offset: 2},
				{Operator: OpSibling, Name: "li", Offset: 5},
			},
		},
		{
			name: "bare star",
			abbr: "ul>li*",
			want: []Token{{Name: "ul"}, {Operator: OpChild, Name: "li", HasMultiplier: true, Offset: 2}},
		},
		{
			name: "namespaced and snippet names",
			abbr: "xsl:when+html:5+!!!+@i",
			want: []Token{
				{Name: "xsl:when"},
				{Operator: OpSibling, Name: "html:5", Offset: 8},
				{Operator: OpSibling, Name: "!!!", Offset: 15},
				{Operator: OpSibling, Name: "@i", Offset: 19},
			},
		},
		{
			name: "trailing plus is an expando flag",
			abbr: "div>foo+",
			want: []Token{{Name: "div"}, {Operator: OpChild, Name: "foo", Expando: true, Offset: 3}},
		},
		{
			name: "mixed case",
			abbr: "DIV.Main",
			want: []Token{{Name: "DIV", Classes: []string{"Main"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.abbr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		abbr   string
		offset int
	}{
		{"div>", 3},
		{"div>>p", 3},
		{"div p", 3},
		{"#id", 0},
		{"div#", 3},
		{"1div", 0},
		{"p+*2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.abbr, func(t *testing.T) {
			_, err := Scan(tt.abbr)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.abbr, details["abbreviation"])
			assert.Equal(t, tt.offset, details["offset"])
		})
	}
}

func TestScanMultiplierLimit(t *testing.T) {
	tokens, err := Scan("p*10000")
	require.NoError(t, err)
	assert.Equal(t, MaxCount, tokens[0].Count)

	for _, abbr := range []string{"p*10001", "ul>li*100000000", "p*99999999999999999999999"} {
		t.Run(abbr, func(t *testing.T) {
			_, err := Scan(abbr)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
			assert.Contains(t, err.Error(), "exceeds")
			assert.Equal(t, MaxCount, errors.GetErrorDetails(err)["max"])
		})
	}
}

func TestRepeatsByLines(t *testing.T) {
	assert.True(t, Token{HasMultiplier: true}.RepeatsByLines())
	assert.False(t, Token{HasMultiplier: true, Count: 2}.RepeatsByLines())
	assert.False(t, Token{}.RepeatsByLines())
}
