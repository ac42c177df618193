package profile

import (
	"fmt"
	"strings"
)

// Case is the letter case applied to tag or attribute names
type Case int

const (
	CaseLower Case = iota
	CaseUpper
)

func (c Case) String() string {
	if c == CaseUpper {
		return "upper"
	}
	return "lower"
}

// MarshalText implements encoding.TextMarshaler
func (c Case) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Quotes is the quote style of attribute values
type Quotes int

const (
	QuoteDouble Quotes = iota
	QuoteSingle
)

func (q Quotes) String() string {
	if q == QuoteSingle {
		return "single"
	}
	return "double"
}

// MarshalText implements encoding.TextMarshaler
func (q Quotes) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// NewlinePolicy decides whether tags start on a new line
type NewlinePolicy int

const (
	// NewlineDecide puts block-level elements on their own lines
	NewlineDecide NewlinePolicy = iota
	// NewlineAlways puts every tag on its own line
	NewlineAlways
	// NewlineNever emits everything on one line
	NewlineNever
)

func (n NewlinePolicy) String() string {
	switch n {
	case NewlineAlways:
		return "true"
	case NewlineNever:
		return "false"
	default:
		return "decide"
	}
}

// MarshalText implements encoding.TextMarshaler
func (n NewlinePolicy) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// SelfClosing is the style used to write empty elements
type SelfClosing int

const (
	// SelfClosingXHTML writes <br />
	SelfClosingXHTML SelfClosing = iota
	// SelfClosingAlways writes <br/>
	SelfClosingAlways
	// SelfClosingNone writes <br>
	SelfClosingNone
)

func (s SelfClosing) String() string {
	switch s {
	case SelfClosingAlways:
		return "true"
	case SelfClosingNone:
		return "false"
	default:
		return "xhtml"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s SelfClosing) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseCase parses "lower" or "upper"
func ParseCase(v interface{}) (Case, error) {
	switch strings.ToLower(fmt.Sprint(v)) {
	case "lower":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	}
	return CaseLower, fmt.Errorf("invalid case %q, expected lower or upper", v)
}

// ParseQuotes parses "double" or "single"
func ParseQuotes(v interface{}) (Quotes, error) {
	switch strings.ToLower(fmt.Sprint(v)) {
	case "double":
		return QuoteDouble, nil
	case "single":
		return QuoteSingle, nil
	}
	return QuoteDouble, fmt.Errorf("invalid quote style %q, expected double or single", v)
}

// ParseNewlinePolicy accepts booleans, "true", "false", "always", "never"
// and "decide"
func ParseNewlinePolicy(v interface{}) (NewlinePolicy, error) {
	switch strings.ToLower(fmt.Sprint(v)) {
	case "true", "always", "yes":
		return NewlineAlways, nil
	case "false", "never", "no":
		return NewlineNever, nil
	case "decide":
		return NewlineDecide, nil
	}
	return NewlineDecide, fmt.Errorf("invalid tag_nl %q, expected true, false or decide", v)
}

// ParseSelfClosing accepts booleans, "true", "false", "always", "none" and
// "xhtml"
func ParseSelfClosing(v interface{}) (SelfClosing, error) {
	switch strings.ToLower(fmt.Sprint(v)) {
	case "true", "always", "yes":
		return SelfClosingAlways, nil
	case "false", "none", "no":
		return SelfClosingNone, nil
	case "xhtml":
		return SelfClosingXHTML, nil
	}
	return SelfClosingXHTML, fmt.Errorf("invalid self_closing_tag %q, expected true, false or xhtml", v)
}
