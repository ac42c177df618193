package config

import (
	"sort"

	"github.com/arthur-debert/zen/pkg/actions"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/settings"
	"github.com/arthur-debert/zen/pkg/zen"
)

// Config is the effective application configuration
type Config struct {
	Editor   Editor                            `koanf:"editor" toml:"editor"`
	Settings Settings                          `koanf:"settings" toml:"settings"`
	Profiles map[string]map[string]interface{} `koanf:"profiles" toml:"profiles,omitempty"`

	// Path is the user file that was loaded, if any
	Path string `koanf:"-" toml:"-"`
}

// Editor holds the host conventions used when expanding
type Editor struct {
	DocType     string `koanf:"doc_type" toml:"doc_type"`
	Profile     string `koanf:"profile" toml:"profile"`
	Indentation string `koanf:"indentation" toml:"indentation"`
	Newline     string `koanf:"newline" toml:"newline"`
	Caret       string `koanf:"caret" toml:"caret"`
	ExpandTabs  int    `koanf:"expand_tabs" toml:"expand_tabs"`
}

// Settings lists extra resource bundles
type Settings struct {
	Files []string `koanf:"files" toml:"files"`
}

// NewEngine builds an engine from the configured bundles, host conventions
// and custom profiles
func (c *Config) NewEngine() (*zen.Engine, error) {
	logger := logging.GetLogger("config")

	reg, err := settings.Load(c.Settings.Files...)
	if err != nil {
		return nil, err
	}

	e := zen.New(reg,
		zen.WithNewline(c.Editor.Newline),
		zen.WithCaret(c.Editor.Caret),
		zen.WithIndentation(c.Editor.Indentation),
	)

	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := e.RegisterProfile(name, c.Profiles[name]); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Strs("settingsFiles", c.Settings.Files).
		Strs("profiles", names).
		Msg("Engine configured")
	return e, nil
}

// ActionOptions returns the options editor actions run with
func (c *Config) ActionOptions() actions.Options {
	return actions.Options{
		DocType:    c.Editor.DocType,
		Profile:    c.Editor.Profile,
		ExpandTabs: c.Editor.ExpandTabs,
	}
}
