// Package config loads the application configuration.
//
// Sources are layered in order with koanf: the embedded defaults.toml, the
// user file ($XDG_CONFIG_HOME/zen/config.toml, or the path in ZEN_CONFIG,
// TOML or YAML) and ZEN_* environment variables, where ZEN_EDITOR_DOC_TYPE
// sets editor.doc_type.
package config
