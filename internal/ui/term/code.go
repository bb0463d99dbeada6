package term

import (
	"github.com/yaklabco/gomdview/pkg/langdetect"
	"github.com/yaklabco/gomdview/pkg/mdast"
)

// codeHeaders maps the start offset of each fenced code block's opening
// line to a language tag. When the preview hides the fence line, the
// renderer shows the tag in its place; blocks without an info string are
// classified from their content.
func codeHeaders(doc *mdast.Document) map[int]string {
	headers := make(map[int]string)
	if doc.Root == nil {
		return headers
	}

	//nolint:errcheck // the walk callback returns only nil
	mdast.Walk(doc.Root, func(n *mdast.Node) error {
		if n.Kind != mdast.NodeCodeBlock || n.Block == nil || n.Block.CodeBlock == nil {
			return nil
		}
		attrs := n.Block.CodeBlock
		if attrs.Indented || n.Span.IsEmpty() {
			return nil
		}

		openIdx := doc.LineIndexAt(n.Span.Start)
		if openIdx < 0 {
			return nil
		}

		lang := attrs.Info
		if lang == "" {
			interiorStart := doc.Lines[openIdx].EndOffset
			lang = langdetect.Detect(doc.Slice(interiorStart, n.Span.End))
		}
		headers[doc.Lines[openIdx].StartOffset] = lang
		return nil
	})

	return headers
}
