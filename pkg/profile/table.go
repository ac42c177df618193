package profile

import (
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/registry"
)

// Built-in profile names
const (
	XHTML = "xhtml"
	HTML  = "html"
	XML   = "xml"
	Plain = "plain"
)

// Builtins returns the profiles every table starts with
func Builtins() []Profile {
	return []Profile{
		MustCreate(XHTML, nil),
		MustCreate(HTML, map[string]interface{}{"self_closing_tag": false}),
		MustCreate(XML, map[string]interface{}{"self_closing_tag": true, "tag_nl": true}),
		MustCreate(Plain, map[string]interface{}{"tag_nl": false, "indent": false, "place_cursor": false}),
	}
}

// Table keeps named profiles. Names are case-insensitive.
type Table struct {
	profiles registry.Registry[Profile]
}

// NewTable returns a table holding the built-in profiles
func NewTable() *Table {
	t := &Table{profiles: registry.New[Profile]()}
	for _, p := range Builtins() {
		registry.MustRegister(t.profiles, p.Name, p)
	}
	return t
}

// Register creates a profile from options and stores it, replacing any
// profile of the same name
func (t *Table) Register(name string, options map[string]interface{}) (Profile, error) {
	p, err := Create(name, options)
	if err != nil {
		return Profile{}, err
	}
	if err := t.profiles.Set(name, p); err != nil {
		return Profile{}, err
	}
	logger := logging.GetLogger("profile")
	logger.Debug().Str("profile", name).Msg("Registered profile")
	return p, nil
}

// Lookup returns the named profile
func (t *Table) Lookup(name string) (Profile, bool) {
	return t.profiles.Lookup(name)
}

// Get returns the named profile, or the plain profile when the name is unknown
func (t *Table) Get(name string) Profile {
	if p, ok := t.profiles.Lookup(name); ok {
		return p
	}
	logger := logging.GetLogger("profile")
	logger.Trace().Str("profile", name).Msg("Unknown profile, using plain")
	p, _ := t.profiles.Lookup(Plain)
	return p
}

// Names lists the registered profile names in sorted order
func (t *Table) Names() []string {
	return t.profiles.List()
}
