package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Expand Zen Coding abbreviations into markup"
	MsgExpandShort   = "Expand abbreviations"
	MsgWrapShort     = "Wrap text with an abbreviation"
	MsgFindShort     = "Find the abbreviation that ends at the caret in a line"
	MsgEditShort     = "Run editor actions against a buffer"
	MsgProfilesShort = "List output profiles and their options"
	MsgListShort     = "List snippets and abbreviations of a document type"
	MsgPickShort     = "Pick a snippet or abbreviation interactively and expand it"
	MsgReplShort     = "Start an interactive expansion session"
	MsgConfigShort   = "Show the effective configuration"
	MsgVersionShort  = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/zen/config.toml)"
	MsgFlagType    = "Document type: html, xml, xsl, css or one from a settings bundle"
	MsgFlagLang    = "Editor language id, mapped to a document type (ignored with --type)"
	MsgFlagProfile = "Output profile: xhtml, html, xml, plain or a configured one"
	MsgFlagCaret   = "Caret placeholder written into the output (escapes allowed)"
	MsgFlagIndent  = "Indentation unit (escapes allowed, e.g. \\t)"
	MsgFlagFormat  = "Output format: auto, term, text or json (auto styles terminals only)"
	MsgFlagPos     = "Caret offset in bytes (default: end of input)"

	// Errors
	MsgErrNoExpansion = "abbreviation %q did not expand"
	MsgErrNoWrap      = "abbreviation %q cannot wrap text"
	MsgErrNothingToDo = "nothing to %s at offset %d"

	// REPL
	MsgReplPrompt  = "zen> "
	MsgReplWelcome = "Type an abbreviation to expand it, :help for commands, <ctrl>D to quit"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/expand-example.txt
	msgExpandExampleRaw string
	MsgExpandExample    = strings.TrimRight(msgExpandExampleRaw, "\n")

	//go:embed msgs/wrap-example.txt
	msgWrapExampleRaw string
	MsgWrapExample    = strings.TrimRight(msgWrapExampleRaw, "\n")

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)
)
