package mdast

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// CodeBlock holds code block attributes for NodeCodeBlock.
	CodeBlock *CodeBlockAttrs
}

// CodeBlockAttrs holds attributes for code block nodes.
type CodeBlockAttrs struct {
	// FenceChar is the fence character ('`' or '~').
	FenceChar byte

	// FenceLength is the number of fence characters in the opening fence.
	FenceLength int

	// Info is the info string on the opening fence (language identifier).
	Info string

	// Indented is true for indented code blocks (vs fenced).
	Indented bool
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// EmphasisLevel indicates emphasis strength (1 for emphasis, 2 for strong).
	EmphasisLevel int

	// Link holds link attributes for NodeLink and NodeImage.
	Link *LinkAttrs
}

// LinkAttrs holds attributes for link and image nodes.
type LinkAttrs struct {
	// Destination is the link URL.
	Destination string

	// Title is the optional link title.
	Title string
}
