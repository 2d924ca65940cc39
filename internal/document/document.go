package document

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/htmlnode"
)

// StdinName is the source name used for documents read from standard input.
const StdinName = "-"

// nodeExample is shown with errors about a node's shape.
const nodeExample = `tag: div
props: {class: c}
children:
  - {tag: p, value: A}
  - plain text`

// Node keys recognised in a tree document.
const (
	keyTag      = "tag"
	keyValue    = "value"
	keyProps    = "props"
	keyChildren = "children"
)

// Document is a decoded tree document.
type Document struct {
	// Source is the file the document was read from, or "-" for stdin.
	Source string

	// Root is the top-level node.
	Root htmlnode.Node
}

// Nodes returns the number of nodes in the document.
func (d *Document) Nodes() int {
	return htmlnode.Count(d.Root)
}

// Depth returns the nesting depth of the document.
func (d *Document) Depth() int {
	return htmlnode.Depth(d.Root)
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).
			WithDetail(fmt.Sprintf("Could not read %s.", path)).
			Wrap(err)
	}
	return Parse(path, data)
}

// Read decodes a document from r. The name is used in error locations.
func Read(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).Wrap(err)
	}
	return Parse(name, data)
}

// Parse decodes a document from data.
func Parse(name string, data []byte) (*Document, error) {
	root, err := Decode(name, data)
	if err != nil {
		return nil, err
	}
	return &Document{Source: name, Root: root}, nil
}

// Decode decodes data into a node tree.
func Decode(name string, data []byte) (htmlnode.Node, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New(errors.CodeDocumentShape).
			WithDetail(fmt.Sprintf("Document %s is empty.", name))
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(errors.CodeDocumentSyntax).
			WithLocationFromError(name, err).
			WithSource(data).
			Wrap(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New(errors.CodeDocumentShape).
			WithDetail(fmt.Sprintf("Document %s has no root node.", name))
	}

	d := &decoder{file: name, src: data, budget: nodeBudget(len(data))}
	return d.node(doc.Content[0])
}

// Aliases let a small document reference the same subtree many times, so
// the number of nodes built is capped relative to the input size. A
// document without aliases never needs more than one node per byte.
const (
	minNodeBudget = 1024
	nodesPerByte  = 4
)

func nodeBudget(size int) int {
	return minNodeBudget + nodesPerByte*size
}

type decoder struct {
	file   string
	src    []byte
	budget int
}

// spend charges units against the node budget.
func (d *decoder) spend(n *yaml.Node, units int) error {
	d.budget -= units
	if d.budget >= 0 {
		return nil
	}
	return d.errorAt(errors.CodeDocumentShape, n).
		WithDetail(fmt.Sprintf("The document expands to more nodes than its %d bytes allow. Aliases are probably nested too deeply.", len(d.src))).
		WithSuggestion("Repeat subtrees explicitly instead of through nested aliases")
}

func (d *decoder) errorAt(code string, n *yaml.Node) *errors.NodeError {
	return errors.New(code).WithLocation(d.file, n.Line, n.Column).WithSource(d.src)
}

// locate attaches n's location to a constructor error from htmlnode.
func (d *decoder) locate(err error, n *yaml.Node) error {
	var ne *errors.NodeError
	if stderrors.As(err, &ne) {
		return ne.WithLocation(d.file, n.Line, n.Column).WithSource(d.src)
	}
	return d.errorAt(errors.CodeDocumentNode, n).Wrap(err)
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func (d *decoder) node(n *yaml.Node) (htmlnode.Node, error) {
	n = resolve(n)
	if err := d.spend(n, 1); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			return nil, d.errorAt(errors.CodeMissingContent, n)
		}
		return htmlnode.Text(n.Value), nil
	case yaml.MappingNode:
		return d.mapping(n)
	default:
		return nil, d.errorAt(errors.CodeDocumentShape, n).
			WithSuggestion("A node is a mapping with tag, value, props or children, or a plain string for text").
			WithExample(nodeExample)
	}
}

func (d *decoder) mapping(n *yaml.Node) (htmlnode.Node, error) {
	var (
		tag         string
		value       *string
		props       htmlnode.Props
		children    []htmlnode.Node
		hasChildren bool
		hasValue    bool
		seen        = make(map[string]bool, 4)
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], resolve(n.Content[i+1])
		key := keyNode.Value
		if seen[key] {
			return nil, d.errorAt(errors.CodeDocumentShape, keyNode).
				WithDetail(fmt.Sprintf("Key %q appears more than once.", key))
		}
		seen[key] = true

		switch key {
		case keyTag:
			s, err := d.scalar(valNode, key)
			if err != nil {
				return nil, err
			}
			if s != nil {
				tag = *s
			}
		case keyValue:
			s, err := d.scalar(valNode, key)
			if err != nil {
				return nil, err
			}
			value = s
			hasValue = s != nil
		case keyProps:
			p, err := d.props(valNode)
			if err != nil {
				return nil, err
			}
			props = p
		case keyChildren:
			c, err := d.children(valNode)
			if err != nil {
				return nil, err
			}
			children = c
			hasChildren = true
		default:
			return nil, d.errorAt(errors.CodeDocumentUnknown, keyNode).
				WithDetail(fmt.Sprintf("Key %q is not one of tag, value, props, children.", key))
		}
	}

	if hasChildren {
		if hasValue {
			return nil, d.errorAt(errors.CodeDocumentAmbiguous, n)
		}
		parent, err := htmlnode.NewParent(tag, children, props)
		if err != nil {
			return nil, d.locate(err, n)
		}
		return parent, nil
	}

	leaf, err := htmlnode.NewLeaf(tag, value, props)
	if err != nil {
		return nil, d.locate(err, n)
	}
	return leaf, nil
}

// scalar returns the string form of a scalar, or nil for null.
func (d *decoder) scalar(n *yaml.Node, key string) (*string, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, d.errorAt(errors.CodeDocumentShape, n).
			WithDetail(fmt.Sprintf("Key %q must be a scalar.", key))
	}
	if isNull(n) {
		return nil, nil
	}
	s := n.Value
	return &s, nil
}

func (d *decoder) props(n *yaml.Node) (htmlnode.Props, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, d.errorAt(errors.CodeDocumentShape, n).
			WithDetail("Props must be a mapping of attribute names to values.")
	}

	if err := d.spend(n, len(n.Content)/2); err != nil {
		return nil, err
	}
	props := make(htmlnode.Props, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], resolve(n.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode || isNull(keyNode) || keyNode.Value == "" {
			return nil, d.errorAt(errors.CodeDocumentShape, keyNode).
				WithDetail("Attribute names must be non-empty strings.")
		}
		if valNode.Kind != yaml.ScalarNode {
			return nil, d.errorAt(errors.CodeDocumentShape, valNode).
				WithDetail(fmt.Sprintf("Attribute %q must have a scalar value.", keyNode.Value))
		}
		val := valNode.Value
		if isNull(valNode) {
			val = ""
		}
		props = append(props, htmlnode.Attr(keyNode.Value, val))
	}
	return props, nil
}

func (d *decoder) children(n *yaml.Node) ([]htmlnode.Node, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorAt(errors.CodeDocumentShape, n).
			WithDetail("Children must be a sequence of nodes.").
			WithExample(nodeExample)
	}

	children := make([]htmlnode.Node, 0, len(n.Content))
	for _, c := range n.Content {
		child, err := d.node(c)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
