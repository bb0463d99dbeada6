package mdast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/gomdview/pkg/mdast"
)

// buildTree constructs:
//
//	Document
//	├── Paragraph
//	│   ├── Text
//	│   └── Emphasis
//	│       └── Text
//	└── Heading
//	    └── Text
func buildTree() *mdast.Node {
	root := mdast.NewNode(mdast.NodeDocument)

	para := mdast.NewNode(mdast.NodeParagraph)
	mdast.AppendChild(root, para)
	mdast.AppendChild(para, mdast.NewNode(mdast.NodeText))

	em := mdast.NewNode(mdast.NodeEmphasis)
	mdast.AppendChild(para, em)
	mdast.AppendChild(em, mdast.NewNode(mdast.NodeText))

	heading := mdast.NewNode(mdast.NodeHeading)
	mdast.AppendChild(root, heading)
	mdast.AppendChild(heading, mdast.NewNode(mdast.NodeText))

	return root
}

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	var visited []mdast.NodeKind
	err := mdast.Walk(buildTree(), func(n *mdast.Node) error {
		visited = append(visited, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeText,
		mdast.NodeHeading,
		mdast.NodeText,
	}

	if len(visited) != len(expected) {
		t.Fatalf("visited %d nodes, expected %d", len(visited), len(expected))
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("visit %d: got %v, expected %v", i, visited[i], kind)
		}
	}
}

func TestWalkSkipChildren(t *testing.T) {
	t.Parallel()

	var visited []mdast.NodeKind
	err := mdast.Walk(buildTree(), func(n *mdast.Node) error {
		visited = append(visited, n.Kind)
		if n.Kind == mdast.NodeParagraph {
			return mdast.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Paragraph's subtree is pruned but the heading sibling is still visited.
	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeHeading,
		mdast.NodeText,
	}

	if len(visited) != len(expected) {
		t.Fatalf("visited %v, expected %v", visited, expected)
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("visit %d: got %v, expected %v", i, visited[i], kind)
		}
	}
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")

	var count int
	err := mdast.Walk(buildTree(), func(n *mdast.Node) error {
		count++
		if n.Kind == mdast.NodeEmphasis {
			return errStop
		}
		return nil
	})

	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if count != 4 {
		t.Errorf("visited %d nodes before stopping, expected 4", count)
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	texts := mdast.FindByKind(buildTree(), mdast.NodeText)
	if len(texts) != 3 {
		t.Errorf("found %d text nodes, expected 3", len(texts))
	}
}

func TestAncestorCount(t *testing.T) {
	t.Parallel()

	outer := mdast.NewNode(mdast.NodeBlockquote)
	inner := mdast.NewNode(mdast.NodeBlockquote)
	mdast.AppendChild(outer, inner)
	para := mdast.NewNode(mdast.NodeParagraph)
	mdast.AppendChild(inner, para)

	if got := outer.AncestorCount(mdast.NodeBlockquote); got != 0 {
		t.Errorf("outer AncestorCount = %d, expected 0", got)
	}
	if got := inner.AncestorCount(mdast.NodeBlockquote); got != 1 {
		t.Errorf("inner AncestorCount = %d, expected 1", got)
	}
	if got := para.AncestorCount(mdast.NodeBlockquote); got != 2 {
		t.Errorf("para AncestorCount = %d, expected 2", got)
	}
}
