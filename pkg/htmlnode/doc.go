// Package htmlnode renders small in-memory node trees into HTML strings.
//
// A tree is built from two node variants:
//
//   - Leaf: raw text (no tag), an element wrapping a scalar value, or a
//     void-style element (a tag with no value, rendered as an opening tag
//     only).
//   - Parent: an element wrapping an ordered, non-empty list of child nodes.
//
// Base holds the attributes shared by both variants and exists only as a
// structural placeholder; rendering it fails with ErrNotImplemented.
//
// # Basic Usage
//
//	list := htmlnode.MustParent("div", []htmlnode.Node{
//	    htmlnode.MustLeaf("p", htmlnode.Ptr("A"), nil),
//	    htmlnode.MustLeaf("p", htmlnode.Ptr("B"), nil),
//	}, htmlnode.Props{htmlnode.Attr("class", "c")})
//
//	html, err := list.Render()
//	// <div class="c"><p>A</p><p>B</p></div>
//
// # Attributes
//
// Props is an ordered slice, so attributes are written in the order they
// were supplied. Nothing is sorted or deduplicated.
//
// # Escaping
//
// Neither text nor attribute values are escaped. Callers supply values that
// are already safe to embed in HTML.
//
// # Immutability
//
// Nodes validate once at construction and expose no setters; constructors
// copy the slices they are given. A tree can therefore be rendered any
// number of times, from any number of goroutines, without locking. Trees are
// assumed acyclic: a self-referential tree recurses without bound.
package htmlnode
