package htmlnode

// Walk visits node and its descendants depth-first in pre-order, the same
// order in which they appear in rendered output. Returning false from fn
// skips the node's children.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if isNil(node) {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, child := range childrenOf(node) {
		walk(child, depth+1, fn)
	}
}

// childrenOf avoids the defensive copy made by Node.Children.
func childrenOf(node Node) []Node {
	switch n := node.(type) {
	case *Parent:
		return n.children
	case *Base:
		return n.children
	default:
		return nil
	}
}

// Count returns the number of nodes in the tree.
func Count(node Node) int {
	count := 0
	Walk(node, func(Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels in the tree; a single leaf has depth 1.
func Depth(node Node) int {
	deepest := 0
	Walk(node, func(_ Node, depth int) bool {
		if depth+1 > deepest {
			deepest = depth + 1
		}
		return true
	})
	return deepest
}
