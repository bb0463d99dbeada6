package goldmark

import (
	"regexp"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gomdview/pkg/mdast"
)

// hrLineRe matches a thematic break line: three or more of the same marker
// character, optionally separated by spaces, after up to three spaces of indent.
var hrLineRe = regexp.MustCompile(`^ {0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)

// setextRe matches a setext heading underline.
var setextRe = regexp.MustCompile(`^ {0,3}(?:=+|-+)[ \t]*$`)

// mapper converts a goldmark AST into an mdast.Node tree, computing the
// byte span of every node directly from goldmark text segments.
type mapper struct {
	doc *mdast.Document

	// hrCandidates holds 0-based line indexes that look like thematic
	// breaks. Goldmark does not record a segment for ThematicBreak nodes,
	// so candidates are consumed in document order as those nodes appear.
	hrCandidates []int

	// cursor is the content offset mapping has progressed past. Used to
	// skip thematic-break candidates that belong to earlier constructs
	// (setext underlines, code block interiors).
	cursor int
}

func newMapper(doc *mdast.Document) *mapper {
	m := &mapper{doc: doc}
	for i := range doc.Lines {
		if hrLineRe.Match(doc.LineContent(i)) {
			m.hrCandidates = append(m.hrCandidates, i)
		}
	}
	return m
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewNode(mdast.NodeDocument)
	doc.Span = mdast.NewRange(0, len(m.doc.Content))
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren maps all children of a goldmark node onto parent, advancing
// the mapping cursor past each mapped block.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		mdNode := m.mapNode(child)
		if mdNode == nil {
			continue
		}
		mdast.AppendChild(parent, mdNode)
		if mdNode.IsBlock() && mdNode.Span.End > m.cursor {
			m.cursor = mdNode.Span.End
		}
	}
}

// mapNode converts a single goldmark node to an mdast.Node.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		return m.mapHeading(gmn)

	case *ast.Paragraph:
		return m.mapLineBlock(gmNode, mdast.NodeParagraph)

	case *ast.List:
		return m.mapContainer(gmNode, mdast.NodeList)

	case *ast.ListItem:
		return m.mapContainer(gmNode, mdast.NodeListItem)

	case *ast.Blockquote:
		return m.mapBlockquote(gmn)

	case *ast.FencedCodeBlock:
		return m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		return m.mapIndentedCodeBlock(gmn)

	case *ast.ThematicBreak:
		return m.mapThematicBreak()

	case *ast.HTMLBlock:
		return m.mapLineBlock(gmNode, mdast.NodeHTMLBlock)

	// Inline-level nodes.
	case *ast.Text:
		node := mdast.NewNode(mdast.NodeText)
		node.Span = mdast.NewRange(gmn.Segment.Start, gmn.Segment.Stop)
		return node

	case *ast.String:
		return nil // synthetic content with no source position

	case *ast.Emphasis:
		return m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		return m.mapCodeSpan(gmn)

	case *ast.Link:
		return m.mapLink(gmn)

	case *ast.Image:
		return m.mapImage(gmn)

	case *ast.AutoLink:
		return nil // no recoverable source span; left undecorated

	case *ast.RawHTML:
		node := mdast.NewNode(mdast.NodeHTMLInline)
		if gmn.Segments != nil && gmn.Segments.Len() > 0 {
			first := gmn.Segments.At(0)
			last := gmn.Segments.At(gmn.Segments.Len() - 1)
			node.Span = mdast.NewRange(first.Start, last.Stop)
		}
		return node

	// GFM strikethrough extension.
	case *east.Strikethrough:
		return m.mapStrikethrough(gmn)

	default:
		node := mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)
		node.Span = childUnion(node)
		return node
	}
}

// mapHeading maps an ATX or setext heading. The span covers the full
// heading line(s), including the marker. Setext headings extend over the
// underline line so later thematic-break candidates are not misassigned.
func (m *mapper) mapHeading(h *ast.Heading) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block = &mdast.BlockAttrs{HeadingLevel: h.Level}
	m.mapChildren(h, node)

	lines := h.Lines()
	if lines.Len() == 0 {
		// Empty heading ("#" with no text); left undecorated.
		return node
	}

	firstIdx := m.doc.LineIndexAt(lines.At(0).Start)
	lastIdx := m.doc.LineIndexAt(lines.At(lines.Len() - 1).Stop - 1)
	if firstIdx < 0 || lastIdx < 0 {
		return node
	}

	start := m.doc.Lines[firstIdx].StartOffset
	end := m.doc.Lines[lastIdx].NewlineStart

	// Setext underline belongs to the heading.
	if lastIdx+1 < m.doc.LineCount() {
		content := m.doc.LineContent(firstIdx)
		isATX := len(trimIndent(content)) > 0 && trimIndent(content)[0] == '#'
		if !isATX && setextRe.Match(m.doc.LineContent(lastIdx+1)) {
			end = m.doc.Lines[lastIdx+1].NewlineStart
		}
	}

	node.Span = mdast.NewRange(start, end)
	return node
}

// mapLineBlock maps a block whose goldmark Lines() cover its source.
func (m *mapper) mapLineBlock(gmNode ast.Node, kind mdast.NodeKind) *mdast.Node {
	node := mdast.NewNode(kind)
	m.mapChildren(gmNode, node)

	lines := gmNode.Lines()
	if lines.Len() > 0 {
		node.Span = mdast.NewRange(lines.At(0).Start, lines.At(lines.Len()-1).Stop)
	} else {
		node.Span = childUnion(node)
	}
	return node
}

// mapContainer maps a container block whose span is the union of its
// children, extended left to the line start to include any markers.
func (m *mapper) mapContainer(gmNode ast.Node, kind mdast.NodeKind) *mdast.Node {
	node := mdast.NewNode(kind)
	m.mapChildren(gmNode, node)

	span := childUnion(node)
	if !span.IsEmpty() {
		if info, ok := m.doc.LineAt(span.Start); ok {
			span.Start = info.StartOffset
		}
	}
	node.Span = span
	return node
}

// mapBlockquote maps a blockquote. The span runs from the start of the
// line holding the first child to the end of the line holding the last,
// so the leading '>' markers fall inside it.
func (m *mapper) mapBlockquote(bq *ast.Blockquote) *mdast.Node {
	node := mdast.NewNode(mdast.NodeBlockquote)
	m.mapChildren(bq, node)

	span := childUnion(node)
	if !span.IsEmpty() {
		if info, ok := m.doc.LineAt(span.Start); ok {
			span.Start = info.StartOffset
		}
		if info, ok := m.doc.LineAt(span.End - 1); ok {
			span.End = info.NewlineStart
		}
	}
	node.Span = span
	return node
}

// mapFencedCodeBlock maps a fenced code block. The span covers the opening
// fence line through the closing fence line (or the last interior line when
// the fence is unterminated).
func (m *mapper) mapFencedCodeBlock(cb *ast.FencedCodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)

	openIdx := -1
	switch {
	case cb.Info != nil && cb.Info.Segment.Len() > 0:
		openIdx = m.doc.LineIndexAt(cb.Info.Segment.Start)
	case cb.Lines().Len() > 0:
		openIdx = m.doc.LineIndexAt(cb.Lines().At(0).Start) - 1
	}
	if openIdx < 0 {
		// Bare "```" with nothing else: find the next fence line from the
		// cursor so empty blocks still decorate.
		openIdx = m.findFenceLine(m.cursor)
	}
	if openIdx < 0 {
		return node // unlocatable; left undecorated
	}

	openLine := trimIndent(m.doc.LineContent(openIdx))
	attrs := &mdast.CodeBlockAttrs{FenceChar: '`'}
	if len(openLine) > 0 {
		attrs.FenceChar = openLine[0]
	}
	attrs.FenceLength = runLength(openLine, attrs.FenceChar)
	attrs.Info = string(cb.Language(m.doc.Content))
	node.Block = &mdast.BlockAttrs{CodeBlock: attrs}

	lastInterior := openIdx
	if cb.Lines().Len() > 0 {
		lastInterior = m.doc.LineIndexAt(cb.Lines().At(cb.Lines().Len()-1).Stop - 1)
	}

	endIdx := lastInterior
	if closeIdx := lastInterior + 1; closeIdx < m.doc.LineCount() {
		closeLine := trimIndent(m.doc.LineContent(closeIdx))
		if runLength(closeLine, attrs.FenceChar) >= attrs.FenceLength {
			endIdx = closeIdx
		}
	}

	node.Span = mdast.NewRange(m.doc.Lines[openIdx].StartOffset, m.doc.Lines[endIdx].NewlineStart)
	return node
}

// mapIndentedCodeBlock maps an indented code block.
func (m *mapper) mapIndentedCodeBlock(cb *ast.CodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block = &mdast.BlockAttrs{CodeBlock: &mdast.CodeBlockAttrs{Indented: true}}

	lines := cb.Lines()
	if lines.Len() > 0 {
		node.Span = mdast.NewRange(lines.At(0).Start, lines.At(lines.Len()-1).Stop)
	}
	return node
}

// mapThematicBreak assigns the next unconsumed thematic-break candidate
// line at or past the mapping cursor.
func (m *mapper) mapThematicBreak() *mdast.Node {
	node := mdast.NewNode(mdast.NodeThematicBreak)

	for len(m.hrCandidates) > 0 {
		idx := m.hrCandidates[0]
		m.hrCandidates = m.hrCandidates[1:]
		info := m.doc.Lines[idx]
		if info.StartOffset < m.cursor {
			continue // consumed by an earlier construct
		}
		node.Span = mdast.NewRange(info.StartOffset, info.NewlineStart)
		break
	}
	return node
}

// mapEmphasis maps emphasis and strong nodes. The span is the child text
// union widened by the marker length on each side.
func (m *mapper) mapEmphasis(em *ast.Emphasis) *mdast.Node {
	kind := mdast.NodeEmphasis
	if em.Level >= 2 {
		kind = mdast.NodeStrong
	}

	node := mdast.NewNode(kind)
	node.Inline = &mdast.InlineAttrs{EmphasisLevel: em.Level}
	m.mapChildren(em, node)
	node.Span = widen(childUnion(node), em.Level, len(m.doc.Content))
	return node
}

// mapStrikethrough maps a GFM strikethrough span (2-character delimiters).
func (m *mapper) mapStrikethrough(st *east.Strikethrough) *mdast.Node {
	node := mdast.NewNode(mdast.NodeStrikethrough)
	m.mapChildren(st, node)
	node.Span = widen(childUnion(node), 2, len(m.doc.Content))
	return node
}

// mapCodeSpan maps an inline code span. The delimiter run length is read
// from the source bytes immediately before the interior.
func (m *mapper) mapCodeSpan(cs *ast.CodeSpan) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeSpan)
	m.mapChildren(cs, node)

	interior := childUnion(node)
	if interior.IsEmpty() {
		return node
	}

	run := 0
	for i := interior.Start - 1; i >= 0 && m.doc.Content[i] == '`'; i-- {
		run++
	}
	node.Span = widen(interior, run, len(m.doc.Content))
	return node
}

// mapLink maps an inline link. The span covers only the link text; the
// decorator validates the surrounding [text](url) shape against the
// source bytes and skips anything else.
func (m *mapper) mapLink(link *ast.Link) *mdast.Node {
	node := mdast.NewNode(mdast.NodeLink)
	node.Inline = &mdast.InlineAttrs{
		Link: &mdast.LinkAttrs{
			Destination: string(link.Destination),
			Title:       string(link.Title),
		},
	}
	m.mapChildren(link, node)
	node.Span = childUnion(node)
	return node
}

// mapImage maps a standard Markdown image (![alt](url)). The preview
// engine decorates only wiki-style embeds, so the span is informational.
func (m *mapper) mapImage(img *ast.Image) *mdast.Node {
	node := mdast.NewNode(mdast.NodeImage)
	node.Inline = &mdast.InlineAttrs{
		Link: &mdast.LinkAttrs{
			Destination: string(img.Destination),
			Title:       string(img.Title),
		},
	}
	m.mapChildren(img, node)
	node.Span = childUnion(node)
	return node
}

// findFenceLine returns the index of the first line at or after offset
// that begins (after indent) with a backtick or tilde fence.
func (m *mapper) findFenceLine(offset int) int {
	start := m.doc.LineIndexAt(offset)
	if start < 0 {
		return -1
	}
	for i := start; i < m.doc.LineCount(); i++ {
		line := trimIndent(m.doc.LineContent(i))
		if runLength(line, '`') >= 3 || runLength(line, '~') >= 3 {
			return i
		}
	}
	return -1
}

// childUnion returns the union of the non-empty spans of n's children.
func childUnion(n *mdast.Node) mdast.SourceRange {
	var span mdast.SourceRange
	first := true
	for child := n.FirstChild; child != nil; child = child.Next {
		cs := child.Span
		if cs.IsEmpty() {
			continue
		}
		if first {
			span = cs
			first = false
			continue
		}
		if cs.Start < span.Start {
			span.Start = cs.Start
		}
		if cs.End > span.End {
			span.End = cs.End
		}
	}
	return span
}

// widen grows a span by pad bytes on each side, clamped to [0, limit].
func widen(span mdast.SourceRange, pad, limit int) mdast.SourceRange {
	if span.IsEmpty() {
		return span
	}
	span.Start -= pad
	span.End += pad
	if span.Start < 0 {
		span.Start = 0
	}
	if span.End > limit {
		span.End = limit
	}
	return span
}

// trimIndent strips up to three leading spaces from a line.
func trimIndent(line []byte) []byte {
	for i := 0; i < 3 && len(line) > 0 && line[0] == ' '; i++ {
		line = line[1:]
	}
	return line
}

// runLength counts how many leading bytes of line equal ch.
func runLength(line []byte, ch byte) int {
	n := 0
	for n < len(line) && line[n] == ch {
		n++
	}
	return n
}
