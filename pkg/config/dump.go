package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/zen/pkg/errors"
)

// Dump renders the configuration as TOML
func Dump(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
