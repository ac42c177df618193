package settings

import "strings"

// Category selects the resource map a lookup reads from
type Category int

const (
	// CategoryAbbreviation selects the abbreviations map
	CategoryAbbreviation Category = iota
	// CategorySnippet selects the snippets map
	CategorySnippet
)

func (c Category) String() string {
	switch c {
	case CategoryAbbreviation:
		return "abbreviations"
	case CategorySnippet:
		return "snippets"
	default:
		return "unknown"
	}
}

// Element type set names
const (
	TypeEmpty  = "empty"
	TypeBlock  = "block_level"
	TypeInline = "inline_level"
)

// DefinitionKind tells element definitions from references
type DefinitionKind int

const (
	// KindElement is a literal element with default attributes
	KindElement DefinitionKind = iota
	// KindReference points at another abbreviation or holds expando text
	KindReference
)

// Attribute is a single name/value pair
type Attribute struct {
	Name  string
	Value string
}

// Definition is the value of an abbreviation entry
type Definition struct {
	Kind DefinitionKind

	// Element fields
	Name       string
	Attributes []Attribute
	Empty      bool

	// Target is the referenced abbreviation name or the expando replacement
	Target string
}

// IsReference reports whether the definition points elsewhere
func (d Definition) IsReference() bool {
	return d.Kind == KindReference
}

// String renders the definition the way it is written in a bundle
func (d Definition) String() string {
	if d.IsReference() {
		return d.Target
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(d.Name)
	for _, attr := range d.Attributes {
		b.WriteString(" ")
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteString(`"`)
	}
	if d.Empty {
		b.WriteString("/")
	}
	b.WriteString(">")
	return b.String()
}

// Bundle is the resource set of one document type
type Bundle struct {
	Extends       []string
	Abbreviations map[string]Definition
	Snippets      map[string]string
	ElementTypes  map[string]map[string]bool
}

// NewBundle returns a bundle with all maps initialized
func NewBundle() *Bundle {
	return &Bundle{
		Abbreviations: make(map[string]Definition),
		Snippets:      make(map[string]string),
		ElementTypes:  make(map[string]map[string]bool),
	}
}

func (b *Bundle) clone() *Bundle {
	c := NewBundle()
	c.Extends = append([]string(nil), b.Extends...)
	for k, v := range b.Abbreviations {
		v.Attributes = append([]Attribute(nil), v.Attributes...)
		c.Abbreviations[k] = v
	}
	for k, v := range b.Snippets {
		c.Snippets[k] = v
	}
	for name, set := range b.ElementTypes {
		s := make(map[string]bool, len(set))
		for el := range set {
			s[el] = true
		}
		c.ElementTypes[name] = s
	}
	return c
}
