package mdast

// NodeKind classifies the type of a syntax tree node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeStrikethrough
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeHTMLInline

	// Fallback for unrecognized content.
	NodeRaw
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "document"
	case NodeParagraph:
		return "paragraph"
	case NodeHeading:
		return "heading"
	case NodeList:
		return "list"
	case NodeListItem:
		return "list-item"
	case NodeBlockquote:
		return "blockquote"
	case NodeCodeBlock:
		return "code-block"
	case NodeThematicBreak:
		return "thematic-break"
	case NodeHTMLBlock:
		return "html-block"
	case NodeText:
		return "text"
	case NodeEmphasis:
		return "emphasis"
	case NodeStrong:
		return "strong"
	case NodeStrikethrough:
		return "strikethrough"
	case NodeCodeSpan:
		return "code-span"
	case NodeLink:
		return "link"
	case NodeImage:
		return "image"
	case NodeHTMLInline:
		return "html-inline"
	case NodeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Node represents a single node in the syntax tree.
// Nodes form a tree with parent/child/sibling relationships and carry the
// byte span of their source text. Traversal is read-only; the preview
// engine never mutates the tree.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span is the byte range of this node's source text, including any
	// syntax markers the node owns. Zero for synthetic nodes.
	Span SourceRange

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// NewNode creates a node of the given kind with no span.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AppendChild attaches child as the last child of parent.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak, NodeHTMLBlock:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeEmphasis, NodeStrong, NodeStrikethrough,
		NodeCodeSpan, NodeLink, NodeImage, NodeHTMLInline:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AncestorCount returns how many ancestors of the given kind enclose n.
func (n *Node) AncestorCount(kind NodeKind) int {
	count := 0
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == kind {
			count++
		}
	}
	return count
}
