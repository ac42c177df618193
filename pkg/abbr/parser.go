package abbr

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/markup"
	"github.com/arthur-debert/zen/pkg/settings"
)

var expando = regexp.MustCompile(`[a-z][a-z0-9]*\+$`)

// Tree is a parsed abbreviation
type Tree struct {
	// Root is a nameless container holding the top-level nodes
	Root *markup.Tag
	// Last is the node created last
	Last markup.Node
	// MultiplyElem is the node marked with a bare '*', if any
	MultiplyElem markup.Node
}

// Wrap injects text into the repeat target (or the last node) ahead of
// rendering. With a repeat target the node is repeated once per line.
func (t *Tree) Wrap(text string) {
	target := t.MultiplyElem
	if target == nil {
		target = t.Last
	}
	if target == nil {
		return
	}
	target.SetContent(text)
	target.SetRepeatByLines(t.MultiplyElem != nil)
}

// ExpandExpandos replaces a trailing expando such as `ul+` with its
// registered expansion. Names without a registered expansion are left alone.
func ExpandExpandos(abbr, docType string, reg *settings.Registry) string {
	loc := expando.FindStringIndex(abbr)
	if loc == nil {
		return abbr
	}
	name := abbr[loc[0]:loc[1]]
	def, ok := reg.Abbreviation(docType, name)
	if !ok || !def.IsReference() {
		return abbr
	}
	return abbr[:loc[0]] + def.Target
}

// Parse turns an abbreviation into an element tree. Empty input yields a nil
// tree and no error; a syntax error yields ErrParse.
func Parse(abbr, docType string, reg *settings.Registry) (*Tree, error) {
	if abbr == "" {
		return nil, nil
	}
	if reg == nil {
		reg = settings.Empty()
	}
	logger := logging.GetLogger("abbr")

	source := ExpandExpandos(abbr, docType, reg)
	if source != abbr {
		logger.Trace().Str("abbreviation", abbr).Str("expanded", source).Msg("Replaced expando")
	}

	tokens, err := Scan(source)
	if err != nil {
		logger.Debug().Err(err).Str("abbreviation", abbr).Msg("Abbreviation does not parse")
		return nil, err
	}

	return Build(tokens, docType, reg), nil
}

// Build assembles a tree from tokens
func Build(tokens []Token, docType string, reg *settings.Registry) *Tree {
	root := markup.NewRoot(docType, reg)
	tree := &Tree{Root: root}

	var parent markup.Node = root
	for _, tok := range tokens {
		name := tok.Name
		if tok.Expando {
			name += "+"
		}

		node := newNode(name, tok.Count, docType, reg)
		if tok.ID != "" {
			node.AddAttribute("id", tok.ID)
		}
		if len(tok.Classes) > 0 {
			node.AddAttribute("class", strings.Join(tok.Classes, " "))
		}

		if tok.Operator == OpChild && tree.Last != nil {
			parent = tree.Last
		}
		parent.AddChild(node)
		tree.Last = node

		if tok.RepeatsByLines() {
			tree.MultiplyElem = node
		}
	}
	return tree
}

// newNode creates a snippet when the name is a snippet of the document type,
// a tag otherwise
func newNode(name string, count int, docType string, reg *settings.Registry) markup.Node {
	if _, ok := reg.Snippet(docType, name); ok {
		return markup.NewSnippet(name, count, docType, reg)
	}
	return markup.NewTag(name, count, docType, reg)
}
