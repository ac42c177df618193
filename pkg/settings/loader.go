package settings

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
)

//go:embed embedded/settings.yaml
var defaultSettings []byte

// variablesKey is the reserved top-level key for global variables
const variablesKey = "variables"

// Document is a decoded settings file before validation. Documents are
// merged in order by Build; later documents override earlier entries key by
// key.
type Document struct {
	Variables map[string]string
	DocTypes  map[string]RawBundle
}

// RawBundle is the authored form of a bundle
type RawBundle struct {
	Extends       []string            `mapstructure:"extends" yaml:"extends,omitempty" toml:"extends,omitempty"`
	Abbreviations map[string]string   `mapstructure:"abbreviations" yaml:"abbreviations,omitempty" toml:"abbreviations,omitempty"`
	Snippets      map[string]string   `mapstructure:"snippets" yaml:"snippets,omitempty" toml:"snippets,omitempty"`
	ElementTypes  map[string][]string `mapstructure:"element_types" yaml:"element_types,omitempty" toml:"element_types,omitempty"`
}

// DefaultDocument returns the embedded settings
func DefaultDocument() (*Document, error) {
	return ParseYAML(defaultSettings)
}

// Default builds a registry from the embedded settings only
func Default() (*Registry, error) {
	doc, err := DefaultDocument()
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// ParseYAML decodes a YAML settings document
func ParseYAML(data []byte) (*Document, error) {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse YAML settings")
	}
	return decodeDocument(raw)
}

// ParseTOML decodes a TOML settings document
func ParseTOML(data []byte) (*Document, error) {
	raw := make(map[string]interface{})
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse TOML settings")
	}
	return decodeDocument(raw)
}

// ParseFile reads a settings file, choosing the parser by extension
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read settings file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported settings file type %q", path).
			WithDetail("path", path)
	}
}

func decodeDocument(raw map[string]interface{}) (*Document, error) {
	doc := &Document{
		Variables: make(map[string]string),
		DocTypes:  make(map[string]RawBundle),
	}

	for key, value := range raw {
		if key == variablesKey {
			if err := decode(value, &doc.Variables); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid variables section")
			}
			continue
		}

		var rb RawBundle
		if err := decode(value, &rb); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid settings for document type %q", key)
		}
		rb.Extends = trimAll(rb.Extends)
		for name, list := range rb.ElementTypes {
			rb.ElementTypes[name] = trimAll(list)
		}
		doc.DocTypes[key] = rb
	}
	return doc, nil
}

func decode(input interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Merge folds overlay into doc. Entries present in overlay replace entries
// in doc; extends lists and element type sets are replaced wholesale.
func (doc *Document) Merge(overlay *Document) {
	if overlay == nil {
		return
	}
	if doc.Variables == nil {
		doc.Variables = make(map[string]string)
	}
	if doc.DocTypes == nil {
		doc.DocTypes = make(map[string]RawBundle)
	}
	for k, v := range overlay.Variables {
		doc.Variables[k] = v
	}
	for name, ob := range overlay.DocTypes {
		base := doc.DocTypes[name]
		if ob.Extends != nil {
			base.Extends = ob.Extends
		}
		base.Abbreviations = mergeStrings(base.Abbreviations, ob.Abbreviations)
		base.Snippets = mergeStrings(base.Snippets, ob.Snippets)
		if len(ob.ElementTypes) > 0 {
			if base.ElementTypes == nil {
				base.ElementTypes = make(map[string][]string)
			}
			for set, list := range ob.ElementTypes {
				base.ElementTypes[set] = list
			}
		}
		doc.DocTypes[name] = base
	}
}

func mergeStrings(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overlay))
	}
	for k, v := range overlay {
		base[k] = v
	}
	return base
}

// Build merges documents in order and compiles them into a Registry
func Build(docs ...*Document) (*Registry, error) {
	logger := logging.GetLogger("settings")

	merged := &Document{}
	for _, d := range docs {
		merged.Merge(d)
	}

	bundles := make(map[string]*Bundle, len(merged.DocTypes))
	for _, name := range sortedKeys(merged.DocTypes) {
		rb := merged.DocTypes[name]
		b := NewBundle()
		b.Extends = rb.Extends
		for key, value := range rb.Abbreviations {
			def, err := ParseDefinition(value)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "abbreviation %q of %q", key, name).
					WithDetail("docType", name).
					WithDetail("abbreviation", key)
			}
			b.Abbreviations[key] = def
		}
		for key, tpl := range rb.Snippets {
			b.Snippets[key] = tpl
		}
		for set, list := range rb.ElementTypes {
			s := make(map[string]bool, len(list))
			for _, el := range list {
				s[strings.ToLower(el)] = true
			}
			b.ElementTypes[set] = s
		}
		bundles[name] = b
		logger.Trace().
			Str("docType", name).
			Int("abbreviations", len(b.Abbreviations)).
			Int("snippets", len(b.Snippets)).
			Strs("extends", b.Extends).
			Msg("Compiled settings bundle")
	}

	return New(bundles, merged.Variables)
}

// Load builds a registry from the embedded settings overlaid with the given files
func Load(paths ...string) (*Registry, error) {
	base, err := DefaultDocument()
	if err != nil {
		return nil, err
	}
	docs := []*Document{base}
	for _, p := range paths {
		d, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return Build(docs...)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
