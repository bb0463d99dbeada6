package preview

import (
	"github.com/yaklabco/gomdview/pkg/decor"
	"github.com/yaklabco/gomdview/pkg/mdast"
	"github.com/yaklabco/gomdview/pkg/selection"
	"github.com/yaklabco/gomdview/pkg/widget"
)

// treeDecorations walks the syntax tree once, in document order, emitting
// decorations for grammar-recognized constructs.
func (e *Engine) treeDecorations(doc *mdast.Document, sel selection.State, mode Mode) []decor.Decoration {
	var out []decor.Decoration

	//nolint:errcheck // the walk callback returns only nil and SkipChildren
	mdast.Walk(doc.Root, func(n *mdast.Node) error {
		if n.Span.IsEmpty() && n.Kind != mdast.NodeDocument {
			return nil
		}

		switch n.Kind {
		case mdast.NodeHeading:
			out = append(out, decorateHeading(doc, sel, mode, n)...)
			// Marker detection is line-based, not per-child.
			return mdast.SkipChildren

		case mdast.NodeEmphasis, mdast.NodeStrong:
			out = append(out, decorateEmphasis(sel, mode, n)...)

		case mdast.NodeStrikethrough:
			out = append(out, decorateStrikethrough(sel, mode, n)...)

		case mdast.NodeCodeSpan:
			out = append(out, decorateCodeSpan(doc, sel, mode, n)...)
			return mdast.SkipChildren

		case mdast.NodeCodeBlock:
			out = append(out, decorateCodeBlock(doc, sel, mode, n)...)
			return mdast.SkipChildren

		case mdast.NodeLink:
			out = append(out, decorateLink(doc, sel, mode, n)...)

		case mdast.NodeBlockquote:
			out = append(out, decorateBlockquote(doc, sel, mode, n)...)

		case mdast.NodeThematicBreak:
			if !revealed(sel, mode, n.Span) {
				out = append(out, decor.Replace(n.Span, widget.Rule{}))
			}
		}
		return nil
	})

	return out
}

// decorateHeading emits the heading's line style and, when not revealed,
// hides the ATX marker plus one following space. Setext headings have no
// leading marker and keep their underline visible.
func decorateHeading(doc *mdast.Document, sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	level := 1
	if n.Block != nil && n.Block.HeadingLevel > 0 {
		level = n.Block.HeadingLevel
	}

	lineIdx := doc.LineIndexAt(n.Span.Start)
	if lineIdx < 0 {
		return nil
	}
	lineStart := doc.Lines[lineIdx].StartOffset

	out := []decor.Decoration{decor.LineStyle(lineStart, decor.HeadingClass(level))}

	if revealedOnLines(doc, sel, mode, n.Span) {
		return out
	}

	line := doc.LineContent(lineIdx)
	indent := 0
	for indent < len(line) && indent < 3 && line[indent] == ' ' {
		indent++
	}
	run := 0
	for indent+run < len(line) && line[indent+run] == '#' {
		run++
	}
	if run == 0 || run > 6 {
		return out // setext or malformed; nothing to hide
	}

	end := indent + run
	if end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	out = append(out, decor.Hide(mdast.NewRange(lineStart+indent, lineStart+end)))
	return out
}

// decorateEmphasis marks the interior span and hides each marker
// individually. The mark is always applied; the markers stay visible when
// the selection sits anywhere inside the owning span.
func decorateEmphasis(sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	level := 1
	if n.Kind == mdast.NodeStrong {
		level = 2
	}
	if n.Inline != nil && n.Inline.EmphasisLevel > 0 {
		level = n.Inline.EmphasisLevel
	}
	if n.Span.Len() < 2*level {
		return nil
	}

	class := decor.ClassEmphasis
	if n.Kind == mdast.NodeStrong {
		class = decor.ClassStrong
	}

	interior := mdast.NewRange(n.Span.Start+level, n.Span.End-level)
	out := []decor.Decoration{decor.Mark(interior, class)}

	if !revealed(sel, mode, n.Span) {
		out = append(out,
			decor.Hide(mdast.NewRange(n.Span.Start, interior.Start)),
			decor.Hide(mdast.NewRange(interior.End, n.Span.End)),
		)
	}
	return out
}

// decorateStrikethrough hides the 2-character delimiters and marks the
// interior. Revealed spans get no decoration at all.
func decorateStrikethrough(sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	if revealed(sel, mode, n.Span) || n.Span.Len() < 4 {
		return nil
	}
	return []decor.Decoration{
		decor.Hide(mdast.NewRange(n.Span.Start, n.Span.Start+2)),
		decor.Mark(mdast.NewRange(n.Span.Start+2, n.Span.End-2), decor.ClassStrikethrough),
		decor.Hide(mdast.NewRange(n.Span.End-2, n.Span.End)),
	}
}

// decorateCodeSpan detects the delimiter run length from the actual
// leading markers and hides that many characters at both ends. The code
// mark on the interior is applied regardless of reveal.
func decorateCodeSpan(doc *mdast.Document, sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	run := 0
	for n.Span.Start+run < n.Span.End && doc.Content[n.Span.Start+run] == '`' {
		run++
	}
	if run == 0 || n.Span.Len() < 2*run {
		return nil
	}

	interior := mdast.NewRange(n.Span.Start+run, n.Span.End-run)
	out := []decor.Decoration{decor.Mark(interior, decor.ClassCode)}

	if !revealed(sel, mode, n.Span) {
		out = append(out,
			decor.Hide(mdast.NewRange(n.Span.Start, interior.Start)),
			decor.Hide(mdast.NewRange(interior.End, n.Span.End)),
		)
	}
	return out
}

// decorateCodeBlock hides the fence lines of a fenced block and styles
// every interior line. Revealed blocks and indented blocks get nothing.
func decorateCodeBlock(doc *mdast.Document, sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	attrs := codeBlockAttrs(n)
	if attrs == nil || attrs.Indented {
		return nil
	}
	if revealedOnLines(doc, sel, mode, n.Span) {
		return nil
	}

	openIdx := doc.LineIndexAt(n.Span.Start)
	endIdx := doc.LineIndexAt(n.Span.End - 1)
	if openIdx < 0 || endIdx < 0 {
		return nil
	}

	var out []decor.Decoration

	open := doc.Lines[openIdx]
	out = append(out, decor.Hide(mdast.NewRange(open.StartOffset, open.NewlineStart)))

	interiorEnd := endIdx
	if endIdx > openIdx && fenceRunLength(doc.LineContent(endIdx), attrs.FenceChar) >= attrs.FenceLength {
		closing := doc.Lines[endIdx]
		out = append(out, decor.Hide(mdast.NewRange(closing.StartOffset, closing.NewlineStart)))
		interiorEnd = endIdx - 1
	}

	for i := openIdx + 1; i <= interiorEnd; i++ {
		out = append(out, decor.LineStyle(doc.Lines[i].StartOffset, decor.ClassCodeLine))
	}
	return out
}

// decorateLink handles only the literal [text](url) shape, validated
// against the source bytes. Anything else is silently skipped.
func decorateLink(doc *mdast.Document, sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	text := n.Span
	src := doc.Content

	if text.Start < 1 || src[text.Start-1] != '[' {
		return nil
	}
	if text.End+1 >= len(src) || src[text.End] != ']' || src[text.End+1] != '(' {
		return nil
	}

	closeParen := -1
	for i := text.End + 2; i < len(src); i++ {
		if src[i] == ')' {
			closeParen = i
			break
		}
		if src[i] == '\n' {
			break
		}
	}
	if closeParen < 0 {
		return nil
	}

	full := mdast.NewRange(text.Start-1, closeParen+1)
	out := []decor.Decoration{decor.Mark(text, decor.ClassLink)}

	if !revealed(sel, mode, full) {
		out = append(out,
			decor.Hide(mdast.NewRange(full.Start, text.Start)),
			decor.Hide(mdast.NewRange(text.End, full.End)),
		)
	}
	return out
}

// decorateBlockquote strips one leading '>' (plus at most one following
// space) per spanned line at this quote's nesting depth, and styles each
// line. The whole quote is skipped when any spanned line holds the cursor
// in editable mode.
func decorateBlockquote(doc *mdast.Document, sel selection.State, mode Mode, n *mdast.Node) []decor.Decoration {
	if revealedOnLines(doc, sel, mode, n.Span) {
		return nil
	}

	depth := n.AncestorCount(mdast.NodeBlockquote)
	first := doc.LineIndexAt(n.Span.Start)
	last := doc.LineIndexAt(n.Span.End - 1)
	if first < 0 || last < 0 {
		return nil
	}

	var out []decor.Decoration
	for i := first; i <= last; i++ {
		info := doc.Lines[i]
		out = append(out, decor.LineStyle(info.StartOffset, decor.ClassQuoteLine))

		if marker, ok := quoteMarkerAt(doc.LineContent(i), depth); ok {
			out = append(out, decor.Hide(mdast.NewRange(info.StartOffset+marker.Start, info.StartOffset+marker.End)))
		}
	}
	return out
}

// quoteMarkerAt locates the '>' marker for the given nesting depth on a
// line, returning its range relative to the line start, including at most
// one following space. Lazy continuation lines have no marker.
func quoteMarkerAt(line []byte, depth int) (mdast.SourceRange, bool) {
	pos := 0
	for pos < len(line) && pos < 3 && line[pos] == ' ' {
		pos++
	}

	for level := 0; ; level++ {
		if pos >= len(line) || line[pos] != '>' {
			return mdast.SourceRange{}, false
		}
		start := pos
		pos++
		if pos < len(line) && line[pos] == ' ' {
			pos++
		}
		if level == depth {
			return mdast.NewRange(start, pos), true
		}
	}
}

func codeBlockAttrs(n *mdast.Node) *mdast.CodeBlockAttrs {
	if n.Block == nil {
		return nil
	}
	return n.Block.CodeBlock
}

// fenceRunLength counts the fence characters opening a line, after up to
// three spaces of indent.
func fenceRunLength(line []byte, ch byte) int {
	for i := 0; i < 3 && len(line) > 0 && line[0] == ' '; i++ {
		line = line[1:]
	}
	n := 0
	for n < len(line) && line[n] == ch {
		n++
	}
	return n
}
