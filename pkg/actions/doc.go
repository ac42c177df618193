// Package actions implements the editor commands on top of the engine
// without depending on any particular editor.
//
// A host copies its document into a Buffer, runs an action and applies the
// returned Edit. Caret placeholders are stripped from the inserted text and
// the first one becomes Edit.Caret.
package actions
