package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/profile"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "ZEN_"

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = EnvPrefix + "CONFIG"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// UserConfigPath returns the default location of the user file. It respects
// XDG_CONFIG_HOME if set.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, logging.AppName, "config.toml")
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k, "")
}

// Load layers the defaults, the user file and the environment. path selects
// the user file; when empty, ZEN_CONFIG and then UserConfigPath are tried. A
// missing file is only an error when it was asked for explicitly.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// "editor.profile", that win over every other source. Command line flags
// reach the configuration this way.
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	explicit := path != ""
	if !explicit {
		if p := os.Getenv(EnvConfigPath); p != "" {
			path, explicit = p, true
		} else {
			path = UserConfigPath()
		}
	}
	loaded := ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		loaded = path
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
		logger.Trace().Interface("overrides", overrides).Msg("Applied config overrides")
	}

	return unmarshal(k, loaded)
}

// envKey maps ZEN_EDITOR_DOC_TYPE to editor.doc_type: the first underscore
// separates the section from the key
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func unmarshal(k *koanf.Koanf, path string) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Path = path

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// postProcess unescapes host conventions given as escape sequences (as env
// vars usually are), resolves bundle paths and validates profiles
func postProcess(cfg *Config) error {
	cfg.Editor.Newline = unescape(cfg.Editor.Newline)
	cfg.Editor.Indentation = unescape(cfg.Editor.Indentation)
	cfg.Editor.Caret = unescape(cfg.Editor.Caret)

	if cfg.Editor.ExpandTabs < 0 {
		return errors.Newf(errors.ErrConfigValid, "editor.expand_tabs must not be negative, got %d", cfg.Editor.ExpandTabs)
	}
	if cfg.Editor.Newline == "" {
		return errors.New(errors.ErrConfigValid, "editor.newline must not be empty")
	}

	base := "."
	if cfg.Path != "" {
		base = filepath.Dir(cfg.Path)
	}
	files := cfg.Settings.Files[:0]
	for _, f := range cfg.Settings.Files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !filepath.IsAbs(f) {
			f = filepath.Join(base, f)
		}
		files = append(files, f)
	}
	cfg.Settings.Files = files

	for name, options := range cfg.Profiles {
		if _, err := profile.Create(name, options); err != nil {
			return err
		}
	}
	return nil
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	if u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`); err == nil {
		return u
	}
	return s
}
