package mdast

import "errors"

// SkipChildren can be returned from a WalkFunc to skip the current node's
// descendants while continuing the walk with the next sibling.
var SkipChildren = errors.New("skip children") //nolint:errname // sentinel, mirrors fs.SkipDir

// WalkFunc is the function signature for Walk callbacks.
// Return SkipChildren to prune the subtree, or any other non-nil error to
// stop the walk entirely.
type WalkFunc func(n *Node) error

// Walk performs a pre-order (document order) traversal of the tree rooted
// at root. The visit order is an explicit contract: a node is always
// visited before its children, and siblings are visited left to right.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	err := walkFunc(root)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	if err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all nodes matching the predicate, in document order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the specified kind, in document order.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
