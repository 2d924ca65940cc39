package htmlnode

import (
	"fmt"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// Parent is an element wrapping an ordered, non-empty list of children.
type Parent struct {
	attrs
}

// NewParent creates a Parent. The tag must be non-empty and children must
// contain at least one non-nil node.
func NewParent(tag string, children []Node, props Props) (*Parent, error) {
	if tag == "" {
		return nil, errors.New(errors.CodeMissingTag)
	}
	if len(children) == 0 {
		return nil, errors.New(errors.CodeMissingChildren).
			WithSuggestion(fmt.Sprintf("Add at least one child to <%s>, or use a Leaf", tag))
	}
	for i, child := range children {
		if isNil(child) {
			return nil, errors.New(errors.CodeMissingChildren).
				WithDetail(fmt.Sprintf("Child %d of <%s> is nil.", i, tag))
		}
	}
	return &Parent{attrs: newAttrs(tag, nil, children, props)}, nil
}

// MustParent is like NewParent but panics on error.
func MustParent(tag string, children []Node, props Props) *Parent {
	p, err := NewParent(tag, children, props)
	if err != nil {
		panic(err)
	}
	return p
}

// Render returns the parent's HTML: its opening tag, every child's output
// in order with no separator, and its closing tag. The first child error is
// returned unchanged.
func (p *Parent) Render() (string, error) {
	return renderString(p)
}

func (p *Parent) render(b *strings.Builder) error {
	writeOpenTag(b, p.tag, p.props)
	for _, child := range p.children {
		if err := child.render(b); err != nil {
			return err
		}
	}
	writeCloseTag(b, p.tag)
	return nil
}

// String implements fmt.Stringer.
func (p *Parent) String() string {
	return p.format("Parent")
}
