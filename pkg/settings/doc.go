// Package settings holds the per-document-type resource bundles consulted
// while parsing and rendering abbreviations.
//
// A bundle maps shorthand names to element definitions or references
// (abbreviations), to template strings (snippets), and groups element names
// into named sets (empty, block_level, inline_level) that drive formatting.
// Bundles may extend other bundles; lookups that miss locally walk the
// extends list depth-first in declared order and the first hit wins.
//
// A Registry is immutable once built. Hosts that need different settings
// build a new Registry and hand it to the engine.
//
// Bundles are authored in YAML or TOML:
//
//	variables:
//	  indentation: "\t"
//	html:
//	  element_types:
//	    empty: br,hr,img,input
//	  abbreviations:
//	    a: <a href=""></a>
//	    ul+: ul>li
//	  snippets:
//	    cc:ie: "<!--[if IE]>\n\t${child}|\n<![endif]-->"
//	xsl:
//	  extends: html
package settings
