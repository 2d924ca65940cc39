// Package document decodes tree documents into htmlnode trees.
//
// A tree document is YAML (JSON is accepted as a YAML subset) describing one
// node per mapping:
//
//	tag: div
//	props:
//	  class: c
//	children:
//	  - tag: p
//	    value: A
//	  - tag: img
//	    props: {src: t.png, alt: T}
//	  - plain text
//
// A mapping with a children key becomes a Parent; any other mapping becomes
// a Leaf. A bare scalar inside a children list is a text leaf. Props keep
// the order in which they appear in the source.
//
// Every error carries the file, line and column of the node that caused it.
// Node contract violations wrap the htmlnode sentinels, so
// errors.Is(err, htmlnode.ErrMissingTag) holds for a document parent
// without a tag.
package document
