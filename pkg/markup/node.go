package markup

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/settings"
)

// Node is an element of the expanded tree
type Node interface {
	// Name is the resolved, lowercase element name
	Name() string
	// Count is how many copies of the node are written
	Count() int

	AddAttribute(name, value string)
	AddChild(child Node)
	Children() []Node

	SetContent(text string)
	Content() string

	// SetRepeatByLines makes the node repeat once per non-empty content line
	SetRepeatByLines(on bool)
	RepeatByLines() bool

	IsEmpty() bool
	IsBlock() bool
	IsInline() bool

	render(r *Renderer) string
}

// element holds what Tag and Snippet share
type element struct {
	name          string
	count         int
	children      []Node
	content       string
	repeatByLines bool

	docType string
	reg     *settings.Registry
	def     settings.Definition
	hasDef  bool
}

func newElement(name string, count int, docType string, reg *settings.Registry) element {
	if reg == nil {
		reg = settings.Empty()
	}
	if count < 1 {
		count = 1
	}
	e := element{count: count, docType: docType, reg: reg}

	name = strings.ToLower(name)
	e.def, e.hasDef = reg.ResolveElement(docType, name)
	if e.hasDef {
		e.name = e.def.Name
	} else {
		e.name = strings.ReplaceAll(name, "+", "")
	}
	return e
}

func (e *element) Name() string { return e.name }

func (e *element) Count() int { return e.count }

func (e *element) Children() []Node { return e.children }

func (e *element) AddChild(child Node) {
	e.children = append(e.children, child)
}

func (e *element) SetContent(text string) { e.content = text }

func (e *element) Content() string { return e.content }

func (e *element) SetRepeatByLines(on bool) { e.repeatByLines = on }

func (e *element) RepeatByLines() bool { return e.repeatByLines }

// IsEmpty reports whether the element must not have children
func (e *element) IsEmpty() bool {
	return (e.hasDef && e.def.Empty) || e.reg.HasElementType(e.docType, settings.TypeEmpty, e.name)
}

func (e *element) IsBlock() bool {
	return e.reg.HasElementType(e.docType, settings.TypeBlock, e.name)
}

func (e *element) IsInline() bool {
	return e.reg.HasElementType(e.docType, settings.TypeInline, e.name)
}

// FindDeepestChild follows last-child links to the bottom of the tree. It
// returns nil for a childless node.
func FindDeepestChild(n Node) Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	deepest := children[len(children)-1]
	for {
		c := deepest.Children()
		if len(c) == 0 {
			return deepest
		}
		deepest = c[len(c)-1]
	}
}
