package htmlnode

import (
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// Leaf is a node without children: raw text when it has no tag, an element
// wrapping its value, or a void-style element when it has no value.
type Leaf struct {
	attrs
}

// NewLeaf creates a Leaf. An empty tag means no wrapping element and a nil
// value means no content; at least one of the two must be set.
func NewLeaf(tag string, value *string, props Props) (*Leaf, error) {
	if tag == "" && value == nil {
		return nil, errors.New(errors.CodeMissingContent)
	}
	return &Leaf{attrs: newAttrs(tag, value, nil, props)}, nil
}

// MustLeaf is like NewLeaf but panics on error.
func MustLeaf(tag string, value *string, props Props) *Leaf {
	l, err := NewLeaf(tag, value, props)
	if err != nil {
		panic(err)
	}
	return l
}

// Text creates a tagless Leaf that renders value verbatim.
func Text(value string) *Leaf {
	return &Leaf{attrs: newAttrs("", &value, nil, nil)}
}

// Render returns the leaf's HTML.
func (l *Leaf) Render() (string, error) {
	return renderString(l)
}

func (l *Leaf) render(b *strings.Builder) error {
	if l.tag == "" {
		if !l.hasValue {
			return errors.New(errors.CodeMissingContent)
		}
		b.WriteString(l.value)
		return nil
	}

	writeOpenTag(b, l.tag, l.props)
	if !l.hasValue {
		return nil
	}
	b.WriteString(l.value)
	writeCloseTag(b, l.tag)
	return nil
}

// String implements fmt.Stringer.
func (l *Leaf) String() string {
	return l.format("Leaf")
}
