package profile

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arthur-debert/zen/pkg/errors"
)

// CaretMarker is the caret placeholder emitted by the renderer before the
// host's own placeholder is substituted. It cannot occur in wrapped text.
const CaretMarker = "{%::zen-caret::%}"

// Profile is an immutable set of output options
type Profile struct {
	Name        string        `mapstructure:"-" toml:"-"`
	TagCase     Case          `mapstructure:"tag_case" toml:"tag_case"`
	AttrCase    Case          `mapstructure:"attr_case" toml:"attr_case"`
	AttrQuotes  Quotes        `mapstructure:"attr_quotes" toml:"attr_quotes"`
	TagNewline  NewlinePolicy `mapstructure:"tag_nl" toml:"tag_nl"`
	PlaceCursor bool          `mapstructure:"place_cursor" toml:"place_cursor"`
	Indent      bool          `mapstructure:"indent" toml:"indent"`
	SelfClosing SelfClosing   `mapstructure:"self_closing_tag" toml:"self_closing_tag"`
}

// Defaults returns the options every profile starts from
func Defaults() Profile {
	return Profile{
		TagCase:     CaseLower,
		AttrCase:    CaseLower,
		AttrQuotes:  QuoteDouble,
		TagNewline:  NewlineDecide,
		PlaceCursor: true,
		Indent:      true,
		SelfClosing: SelfClosingXHTML,
	}
}

// Create merges options over the defaults. Unknown option names and invalid
// values yield ErrProfileInvalid.
func Create(name string, options map[string]interface{}) (Profile, error) {
	p := Defaults()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       optionHook(),
	})
	if err != nil {
		return Profile{}, errors.Wrap(err, errors.ErrInternal, "failed to create option decoder")
	}
	if err := dec.Decode(options); err != nil {
		return Profile{}, errors.Wrapf(err, errors.ErrProfileInvalid, "invalid options for profile %q", name).
			WithDetail("profile", name)
	}

	p.Name = name
	return p, nil
}

// MustCreate is Create for options known to be valid
func MustCreate(name string, options map[string]interface{}) Profile {
	p, err := Create(name, options)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	caseType        = reflect.TypeOf(CaseLower)
	quotesType      = reflect.TypeOf(QuoteDouble)
	newlineType     = reflect.TypeOf(NewlineDecide)
	selfClosingType = reflect.TypeOf(SelfClosingXHTML)
)

// optionHook converts strings and booleans into the option enums
func optionHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f == t {
			return data, nil
		}
		switch t {
		case caseType:
			return ParseCase(data)
		case quotesType:
			return ParseQuotes(data)
		case newlineType:
			return ParseNewlinePolicy(data)
		case selfClosingType:
			return ParseSelfClosing(data)
		}
		return data, nil
	}
}

// Options returns the profile as an option map accepted by Create
func (p Profile) Options() map[string]interface{} {
	return map[string]interface{}{
		"tag_case":         p.TagCase.String(),
		"attr_case":        p.AttrCase.String(),
		"attr_quotes":      p.AttrQuotes.String(),
		"tag_nl":           p.TagNewline.String(),
		"place_cursor":     p.PlaceCursor,
		"indent":           p.Indent,
		"self_closing_tag": p.SelfClosing.String(),
	}
}

// Quote returns the attribute quote character
func (p Profile) Quote() string {
	if p.AttrQuotes == QuoteSingle {
		return "'"
	}
	return `"`
}

// Cursor returns the caret marker, or an empty string when the profile does
// not place carets
func (p Profile) Cursor() string {
	if p.PlaceCursor {
		return CaretMarker
	}
	return ""
}

// SelfClosingMark returns the text written before '>' of an empty element
func (p Profile) SelfClosingMark() string {
	switch p.SelfClosing {
	case SelfClosingXHTML:
		return " /"
	case SelfClosingAlways:
		return "/"
	}
	return ""
}

// AllowNewline reports whether a node of the given kind may start on a new line
func (p Profile) AllowNewline(block bool) bool {
	return p.TagNewline == NewlineAlways || (p.TagNewline == NewlineDecide && block)
}

// TagName applies the tag case
func (p Profile) TagName(name string) string {
	return applyCase(p.TagCase, name)
}

// AttrName applies the attribute case
func (p Profile) AttrName(name string) string {
	return applyCase(p.AttrCase, name)
}

func applyCase(c Case, s string) string {
	if c == CaseUpper {
		return cases.Upper(language.Und).String(s)
	}
	return cases.Lower(language.Und).String(s)
}
