// Package markup is the element tree produced by the abbreviation parser and
// its serialization.
//
// Two node kinds implement Node: Tag, a generic element that may inherit
// default attributes and emptiness from an abbreviation definition, and
// Snippet, which renders a template with a ${child} injection point. A
// Renderer walks the tree with an output profile, the host newline and the
// indentation unit.
package markup
