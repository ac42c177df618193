package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/zen/pkg/errors"
)

func bundle(extends ...string) *Bundle {
	b := NewBundle()
	b.Extends = extends
	return b
}

func TestLookupExtendsOrder(t *testing.T) {
	base := bundle()
	base.Snippets["doc"] = "base"
	base.Snippets["only-base"] = "deep"
	other := bundle()
	other.Snippets["doc"] = "other"
	mid := bundle("base")
	child := bundle("mid", "other")
	child.Snippets["own"] = "mine"

	r, err := New(map[string]*Bundle{
		"base": base, "other": other, "mid": mid, "child": child,
	}, nil)
	require.NoError(t, err)

	tpl, ok := r.Snippet("child", "own")
	assert.True(t, ok)
	assert.Equal(t, "mine", tpl)

	// depth first: mid -> base wins over other
	tpl, ok = r.Snippet("child", "doc")
	assert.True(t, ok)
	assert.Equal(t, "base", tpl)

	tpl, ok = r.Snippet("child", "only-base")
	assert.True(t, ok)
	assert.Equal(t, "deep", tpl)

	_, ok = r.Snippet("child", "missing")
	assert.False(t, ok)

	_, ok = r.Snippet("unknown", "doc")
	assert.False(t, ok)
}

func TestLookupByCategory(t *testing.T) {
	b := bundle()
	b.Snippets["x"] = "tpl"
	b.Abbreviations["x"] = Definition{Kind: KindElement, Name: "x"}
	r, err := New(map[string]*Bundle{"html": b}, nil)
	require.NoError(t, err)

	v, ok := r.Lookup("html", CategorySnippet, "x")
	require.True(t, ok)
	assert.Equal(t, "tpl", v)

	v, ok = r.Lookup("html", CategoryAbbreviation, "x")
	require.True(t, ok)
	assert.Equal(t, "x", v.(Definition).Name)
}

func TestCycleRejected(t *testing.T) {
	_, err := New(map[string]*Bundle{
		"a": bundle("b"),
		"b": bundle("c"),
		"c": bundle("a"),
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigCycle))

	_, err = New(map[string]*Bundle{"self": bundle("self")}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigCycle))
}

func TestUnknownParentIsIgnored(t *testing.T) {
	r, err := New(map[string]*Bundle{"xsl": bundle("nowhere")}, nil)
	require.NoError(t, err)
	_, ok := r.Abbreviation("xsl", "a")
	assert.False(t, ok)
}

func TestResolveElementFollowsOneHop(t *testing.T) {
	b := bundle()
	b.Abbreviations["input:hidden"] = Definition{Kind: KindElement, Name: "input", Empty: true}
	b.Abbreviations["input:h"] = Definition{Kind: KindReference, Target: "input:hidden"}
	b.Abbreviations["hh"] = Definition{Kind: KindReference, Target: "input:h"}
	r, err := New(map[string]*Bundle{"html": b}, nil)
	require.NoError(t, err)

	def, ok := r.ResolveElement("html", "input:h")
	require.True(t, ok)
	assert.Equal(t, "input", def.Name)
	assert.True(t, def.Empty)

	_, ok = r.ResolveElement("html", "hh")
	assert.False(t, ok, "two hops are not followed")
}

func TestElementTypeSet(t *testing.T) {
	html := bundle()
	html.ElementTypes[TypeEmpty] = map[string]bool{"br": true}
	xsl := bundle("html")
	r, err := New(map[string]*Bundle{"html": html, "xsl": xsl}, nil)
	require.NoError(t, err)

	assert.True(t, r.ElementTypeSet("html", TypeEmpty)["br"])
	assert.True(t, r.HasElementType("xsl", TypeEmpty, "br"))
	assert.Empty(t, r.ElementTypeSet("html", TypeBlock))
	assert.NotNil(t, r.ElementTypeSet("nope", TypeInline))
}

func TestVariables(t *testing.T) {
	r, err := New(nil, map[string]string{"lang": "en"})
	require.NoError(t, err)

	assert.Equal(t, "\t", r.Indentation(), "indentation defaults to a tab")
	v, ok := r.Variable("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	vars := r.Variables()
	vars["lang"] = "fr"
	v, _ = r.Variable("lang")
	assert.Equal(t, "en", v, "Variables returns a copy")

	r2 := r.WithVariable(VarIndentation, "  ")
	assert.Equal(t, "  ", r2.Indentation())
	assert.Equal(t, "\t", r.Indentation())
}

func TestRegistryIsIsolatedFromInput(t *testing.T) {
	b := bundle()
	b.Snippets["x"] = "one"
	r, err := New(map[string]*Bundle{"html": b}, nil)
	require.NoError(t, err)

	b.Snippets["x"] = "two"
	tpl, _ := r.Snippet("html", "x")
	assert.Equal(t, "one", tpl)
}
