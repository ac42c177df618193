package settings

import (
	"sort"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
)

// VarIndentation is the variable holding one nesting level of indentation
const VarIndentation = "indentation"

// Registry maps document types to resource bundles. It is read-only once
// built and safe for concurrent readers.
type Registry struct {
	bundles   map[string]*Bundle
	variables map[string]string
}

// New builds a registry from bundles and global variables. The extends graph
// must be acyclic; a cycle yields ErrConfigCycle.
func New(bundles map[string]*Bundle, variables map[string]string) (*Registry, error) {
	r := &Registry{
		bundles:   make(map[string]*Bundle, len(bundles)),
		variables: make(map[string]string, len(variables)+1),
	}
	for name, b := range bundles {
		if b == nil {
			continue
		}
		r.bundles[name] = b.clone()
	}
	for k, v := range variables {
		r.variables[k] = v
	}
	if _, ok := r.variables[VarIndentation]; !ok {
		r.variables[VarIndentation] = "\t"
	}

	if err := r.checkExtends(); err != nil {
		return nil, err
	}
	return r, nil
}

// Empty returns a registry without bundles
func Empty() *Registry {
	r, _ := New(nil, nil)
	return r
}

// checkExtends walks the extends graph depth-first and rejects cycles
func (r *Registry) checkExtends() error {
	logger := logging.GetLogger("settings")

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(r.bundles))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case inProgress:
			return errors.Newf(errors.ErrConfigCycle, "cyclic extends chain: %v", append(path, name)).
				WithDetail("docType", name)
		case done:
			return nil
		}
		b, ok := r.bundles[name]
		if !ok {
			logger.Debug().Str("docType", name).Msg("extends names an unknown document type")
			state[name] = done
			return nil
		}
		state[name] = inProgress
		for _, parent := range b.Extends {
			if err := visit(parent, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range r.DocTypes() {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// resolve visits docType and then its ancestors in extends order until fn
// reports a hit
func (r *Registry) resolve(docType string, fn func(*Bundle) bool) bool {
	visited := make(map[string]bool)
	var walk func(name string) bool
	walk = func(name string) bool {
		if visited[name] {
			return false
		}
		visited[name] = true
		b, ok := r.bundles[name]
		if !ok {
			return false
		}
		if fn(b) {
			return true
		}
		for _, parent := range b.Extends {
			if walk(parent) {
				return true
			}
		}
		return false
	}
	return walk(docType)
}

// Lookup returns the raw entry for key in the given category: a Definition
// for abbreviations, a template string for snippets
func (r *Registry) Lookup(docType string, category Category, key string) (interface{}, bool) {
	switch category {
	case CategoryAbbreviation:
		return r.Abbreviation(docType, key)
	case CategorySnippet:
		return r.Snippet(docType, key)
	}
	return nil, false
}

// Abbreviation looks up an abbreviation definition
func (r *Registry) Abbreviation(docType, name string) (Definition, bool) {
	var def Definition
	found := r.resolve(docType, func(b *Bundle) bool {
		d, ok := b.Abbreviations[name]
		if ok {
			def = d
		}
		return ok
	})
	return def, found
}

// ResolveElement looks up an abbreviation and follows a reference by one hop.
// It reports false when no element definition is reachable.
func (r *Registry) ResolveElement(docType, name string) (Definition, bool) {
	def, ok := r.Abbreviation(docType, name)
	if !ok {
		return Definition{}, false
	}
	if def.IsReference() {
		def, ok = r.Abbreviation(docType, def.Target)
		if !ok || def.IsReference() {
			return Definition{}, false
		}
	}
	return def, true
}

// Snippet looks up a snippet template
func (r *Registry) Snippet(docType, name string) (string, bool) {
	var tpl string
	found := r.resolve(docType, func(b *Bundle) bool {
		t, ok := b.Snippets[name]
		if ok {
			tpl = t
		}
		return ok
	})
	return tpl, found
}

// ElementTypeSet returns the named element set, or an empty set if the
// document type (and its ancestors) do not define it
func (r *Registry) ElementTypeSet(docType, typeName string) map[string]bool {
	var set map[string]bool
	r.resolve(docType, func(b *Bundle) bool {
		s, ok := b.ElementTypes[typeName]
		if ok {
			set = s
		}
		return ok
	})
	if set == nil {
		return map[string]bool{}
	}
	return set
}

// HasElementType reports whether element belongs to the named set
func (r *Registry) HasElementType(docType, typeName, element string) bool {
	return r.ElementTypeSet(docType, typeName)[element]
}

// Variable returns a global variable
func (r *Registry) Variable(name string) (string, bool) {
	v, ok := r.variables[name]
	return v, ok
}

// Variables returns a copy of the global variables
func (r *Registry) Variables() map[string]string {
	out := make(map[string]string, len(r.variables))
	for k, v := range r.variables {
		out[k] = v
	}
	return out
}

// Indentation returns the text of one nesting level
func (r *Registry) Indentation() string {
	return r.variables[VarIndentation]
}

// WithVariable returns a copy of the registry with one variable changed
func (r *Registry) WithVariable(name, value string) *Registry {
	c := &Registry{bundles: r.bundles, variables: r.Variables()}
	c.variables[name] = value
	return c
}

// DocTypes lists the document types in sorted order
func (r *Registry) DocTypes() []string {
	names := make([]string, 0, len(r.bundles))
	for name := range r.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names lists the keys of one category for a document type, including
// inherited ones, in sorted order
func (r *Registry) Names(docType string, category Category) []string {
	seen := make(map[string]bool)
	r.resolve(docType, func(b *Bundle) bool {
		switch category {
		case CategoryAbbreviation:
			for k := range b.Abbreviations {
				seen[k] = true
			}
		case CategorySnippet:
			for k := range b.Snippets {
				seen[k] = true
			}
		}
		return false
	})
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
