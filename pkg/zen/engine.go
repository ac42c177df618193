package zen

import (
	"strings"
	"sync"

	"github.com/arthur-debert/zen/pkg/abbr"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/markup"
	"github.com/arthur-debert/zen/pkg/profile"
	"github.com/arthur-debert/zen/pkg/settings"
)

// Defaults used when no option overrides them
const (
	DefaultDocType = "html"
	DefaultProfile = profile.XHTML
	DefaultNewline = "\n"
	DefaultCaret   = "|"
)

// Engine expands abbreviations
type Engine struct {
	mu       sync.RWMutex
	settings *settings.Registry
	profiles *profile.Table
	newline  string
	caret    string
}

// Option configures an Engine
type Option func(*Engine)

// WithNewline sets the newline written between lines
func WithNewline(nl string) Option {
	return func(e *Engine) {
		if nl != "" {
			e.newline = nl
		}
	}
}

// WithCaret sets the text that replaces caret markers in the output. An
// empty caret removes them.
func WithCaret(caret string) Option {
	return func(e *Engine) { e.caret = caret }
}

// WithIndentation overrides the indentation variable of the settings
func WithIndentation(unit string) Option {
	return func(e *Engine) {
		if unit != "" {
			e.settings = e.settings.WithVariable(settings.VarIndentation, unit)
		}
	}
}

// WithProfiles replaces the built-in profile table
func WithProfiles(t *profile.Table) Option {
	return func(e *Engine) {
		if t != nil {
			e.profiles = t
		}
	}
}

// New returns an engine over reg. A nil registry behaves as an empty one.
func New(reg *settings.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = settings.Empty()
	}
	e := &Engine{
		settings: reg,
		profiles: profile.NewTable(),
		newline:  DefaultNewline,
		caret:    DefaultCaret,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefault returns an engine over the embedded settings
func NewDefault(opts ...Option) (*Engine, error) {
	reg, err := settings.Default()
	if err != nil {
		return nil, err
	}
	return New(reg, opts...), nil
}

// Parse parses an abbreviation against the current settings
func (e *Engine) Parse(abbreviation, docType string) (*abbr.Tree, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return abbr.Parse(abbreviation, docType, e.settings)
}

// Expand expands an abbreviation. It returns an empty string when the
// abbreviation is empty or does not parse.
func (e *Engine) Expand(abbreviation, docType, profileName string) string {
	return e.placeCaret(e.ExpandMarked(abbreviation, docType, profileName))
}

// ExpandMarked is Expand leaving profile.CaretMarker where the caret goes,
// for callers that position the caret themselves
func (e *Engine) ExpandMarked(abbreviation, docType, profileName string) string {
	logger := logging.GetLogger("zen.expand")
	defer logging.LogOperationStart(logger, "expand")()

	e.mu.RLock()
	defer e.mu.RUnlock()

	tree, err := abbr.Parse(abbreviation, docType, e.settings)
	if err != nil || tree == nil {
		return ""
	}
	return e.render(tree, profileName)
}

// Wrap expands an abbreviation around text. The text goes into the node
// marked with a bare '*', repeated once per line, or else into the last node.
// It reports false when the abbreviation does not parse.
func (e *Engine) Wrap(abbreviation, text, docType, profileName string) (string, bool) {
	out, ok := e.WrapMarked(abbreviation, text, docType, profileName)
	return e.placeCaret(out), ok
}

// WrapMarked is Wrap leaving profile.CaretMarker where the caret goes. The
// wrapped text is never mistaken for a caret.
func (e *Engine) WrapMarked(abbreviation, text, docType, profileName string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tree, err := abbr.Parse(abbreviation, docType, e.settings)
	if err != nil || tree == nil {
		return "", false
	}
	tree.Wrap(text)
	return e.render(tree, profileName), true
}

// render must be called with the read lock held
func (e *Engine) render(tree *abbr.Tree, profileName string) string {
	r := &markup.Renderer{
		Profile:     e.profiles.Get(profileName),
		Newline:     e.newline,
		Indentation: e.settings.Indentation(),
	}
	return markup.ReplaceVariables(r.Render(tree.Root), e.settings.Variables())
}

// placeCaret swaps caret markers for the host caret
func (e *Engine) placeCaret(out string) string {
	return strings.ReplaceAll(out, profile.CaretMarker, e.Caret())
}

// PadString indents every line after the first with unit
func (e *Engine) PadString(text, unit string) string {
	return markup.PadString(text, unit, e.Newline())
}

// PadLevels indents every line after the first by n indentation units
func (e *Engine) PadLevels(text string, n int) string {
	if n < 0 {
		n = 0
	}
	return e.PadString(text, strings.Repeat(e.Indentation(), n))
}

// RegisterProfile creates a profile from options and makes it available
// by name
func (e *Engine) RegisterProfile(name string, options map[string]interface{}) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.profiles.Register(name, options)
	return err
}

// Profile returns the named profile, falling back to plain
func (e *Engine) Profile(name string) profile.Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profiles.Get(name)
}

// ProfileNames lists the registered profiles
func (e *Engine) ProfileNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profiles.Names()
}

// UpdateSettings swaps the settings registry
func (e *Engine) UpdateSettings(reg *settings.Registry) error {
	if reg == nil {
		return errors.New(errors.ErrInvalidInput, "settings registry cannot be nil")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = reg
	logger := logging.GetLogger("zen")
	logger.Debug().Strs("docTypes", reg.DocTypes()).Msg("Settings updated")
	return nil
}

// Settings returns the current settings registry
func (e *Engine) Settings() *settings.Registry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// SetVariable sets a global variable such as indentation or charset
func (e *Engine) SetVariable(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = e.settings.WithVariable(name, value)
}

// Variable returns a global variable
func (e *Engine) Variable(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings.Variable(name)
}

// Indentation returns one indentation unit
func (e *Engine) Indentation() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings.Indentation()
}

// Newline returns the newline used in output
func (e *Engine) Newline() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.newline
}

// Caret returns the caret placeholder used in output
func (e *Engine) Caret() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.caret
}
