// Package abbr parses abbreviations such as `ul#nav>li.item*3>a` into an
// element tree.
//
// Parsing runs in three steps. A trailing expando (`ul+`) is first replaced
// by its registered expansion. Scan then splits the string into tokens of the
// form
//
//	[operator] name [#id] [.class]... [*[count]] [+]
//
// and Parse builds the tree: `>` makes the previous node the parent of what
// follows, anything else adds a sibling at the current level. A bare `*`
// marks the node that repeats once per line of wrapped text.
package abbr
