// Package zen is the entry point of the abbreviation engine.
//
// An Engine owns a settings registry and a profile table. Expand and Wrap
// parse an abbreviation, render it with the named profile and return plain
// markup in which '|' has been replaced by the configured caret placeholder
// and ${name} variables have been substituted:
//
//	e, _ := zen.NewDefault()
//	e.Expand("ul#nav>li*2>a", "html", "xhtml")
//
// Engines are safe for concurrent use. RegisterProfile, UpdateSettings and
// SetVariable take a write lock; everything else reads.
package zen
