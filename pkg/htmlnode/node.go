package htmlnode

import (
	"strconv"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// Node is anything that renders to an HTML fragment.
//
// The set of variants is closed: Base, Leaf and Parent are the only
// implementations.
type Node interface {
	// Tag returns the element name, or "" when the node has no wrapping element.
	Tag() string

	// Value returns the textual content and whether it is present.
	Value() (string, bool)

	// Children returns a copy of the child list.
	Children() []Node

	// Props returns a copy of the attribute list.
	Props() Props

	// Render returns the node's HTML.
	Render() (string, error)

	// String returns a debug representation listing all four attributes.
	String() string

	render(b *strings.Builder) error
}

// Ptr returns a pointer to s, for passing present values to constructors.
func Ptr(s string) *string {
	return &s
}

// attrs holds the fields shared by every node variant.
type attrs struct {
	tag      string
	value    string
	hasValue bool
	children []Node
	props    Props
}

func newAttrs(tag string, value *string, children []Node, props Props) attrs {
	a := attrs{
		tag:   tag,
		props: props.clone(),
	}
	if value != nil {
		a.value = *value
		a.hasValue = true
	}
	if len(children) > 0 {
		a.children = make([]Node, len(children))
		copy(a.children, children)
	}
	return a
}

// Tag returns the element name.
func (a *attrs) Tag() string {
	return a.tag
}

// Value returns the textual content and whether it is present.
func (a *attrs) Value() (string, bool) {
	return a.value, a.hasValue
}

// Children returns a copy of the child list.
func (a *attrs) Children() []Node {
	if len(a.children) == 0 {
		return nil
	}
	out := make([]Node, len(a.children))
	copy(out, a.children)
	return out
}

// Props returns a copy of the attribute list.
func (a *attrs) Props() Props {
	return a.props.clone()
}

// format renders kind(tag=..., value=..., children=[...], props={...}).
func (a *attrs) format(kind string) string {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteString("(tag=")
	if a.tag == "" {
		b.WriteString("nil")
	} else {
		b.WriteString(strconv.Quote(a.tag))
	}

	b.WriteString(", value=")
	if a.hasValue {
		b.WriteString(strconv.Quote(a.value))
	} else {
		b.WriteString("nil")
	}

	b.WriteString(", children=")
	if a.children == nil {
		b.WriteString("nil")
	} else {
		b.WriteByte('[')
		for i, child := range a.children {
			if i > 0 {
				b.WriteString(", ")
			}
			if isNil(child) {
				b.WriteString("nil")
				continue
			}
			b.WriteString(child.String())
		}
		b.WriteByte(']')
	}

	b.WriteString(", props=")
	if a.props == nil {
		b.WriteString("nil")
	} else {
		b.WriteByte('{')
		for i, prop := range a.props {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(prop.Key))
			b.WriteString(": ")
			b.WriteString(strconv.Quote(prop.Value))
		}
		b.WriteByte('}')
	}
	b.WriteByte(')')
	return b.String()
}

// Base holds the attributes shared by Leaf and Parent. It cannot render.
type Base struct {
	attrs
}

// NewBase creates a Base. No validation is performed.
func NewBase(tag string, value *string, children []Node, props Props) *Base {
	return &Base{attrs: newAttrs(tag, value, children, props)}
}

// Render always fails with ErrNotImplemented.
func (n *Base) Render() (string, error) {
	return "", errors.New(errors.CodeNotImplemented)
}

func (n *Base) render(*strings.Builder) error {
	return errors.New(errors.CodeNotImplemented)
}

// String implements fmt.Stringer.
func (n *Base) String() string {
	return n.format("Base")
}

// isNil reports whether n is nil or a nil pointer to one of the variants.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Parent:
		return v == nil
	case *Base:
		return v == nil
	default:
		return false
	}
}

// renderString runs a node's render into a fresh builder.
func renderString(n Node) (string, error) {
	var b strings.Builder
	if err := n.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
