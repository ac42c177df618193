package settings

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/zen/pkg/errors"
)

// startTag matches the opening tag of an element definition and captures
// its name and the self-closing slash
var startTag = regexp.MustCompile(`^<([\w:\-]+)(?:\s+[\w\-:]+\s*=\s*(?:"[^"]*"|'[^']*'))*\s*(/?)>`)

// ParseDefinition turns an abbreviation value into a Definition. Values
// starting with '<' are element definitions such as `<img src="" alt="" />`;
// anything else is a reference to another abbreviation (or, for names ending
// in '+', the replacement text of an expando).
func ParseDefinition(value string) (Definition, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Definition{}, errors.New(errors.ErrConfigValid, "empty abbreviation definition")
	}
	if !strings.HasPrefix(v, "<") {
		return Definition{Kind: KindReference, Target: v}, nil
	}

	m := startTag.FindStringSubmatch(v)
	if m == nil {
		return Definition{}, errors.Newf(errors.ErrConfigParse, "malformed element definition %q", value)
	}
	empty := m[2] == "/"

	src := v
	if !empty && !strings.Contains(v, "</") {
		src = v + "</" + m[1] + ">"
	}

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromString(src); err != nil {
		return Definition{}, errors.Wrapf(err, errors.ErrConfigParse, "malformed element definition %q", value)
	}
	root := doc.Root()
	if root == nil {
		return Definition{}, errors.Newf(errors.ErrConfigParse, "element definition %q has no element", value)
	}

	def := Definition{
		Kind:  KindElement,
		Name:  strings.ToLower(root.FullTag()),
		Empty: empty,
	}
	for _, a := range root.Attr {
		def.Attributes = append(def.Attributes, Attribute{Name: a.FullKey(), Value: a.Value})
	}
	return def, nil
}
