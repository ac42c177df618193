// Package profile holds output profiles: named, immutable sets of formatting
// options that control how an element tree is serialized.
//
// A profile is created by merging a partial option map over the defaults:
//
//	tag_case         lower | upper          (default lower)
//	attr_case        lower | upper          (default lower)
//	attr_quotes      double | single        (default double)
//	tag_nl           true | false | decide  (default decide)
//	place_cursor     bool                   (default true)
//	indent           bool                   (default true)
//	self_closing_tag true | false | xhtml   (default xhtml)
//
// The Table type keeps the named profiles. It starts with the built-in
// xhtml, html, xml and plain profiles and falls back to plain for unknown
// names.
package profile
