package term

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gomdview/pkg/decor"
	"github.com/yaklabco/gomdview/pkg/mdast"
	"github.com/yaklabco/gomdview/pkg/widget"
)

// defaultWidth is used when the terminal width is unknown.
const defaultWidth = 80

// Renderer applies a decoration set to a document snapshot, producing
// styled terminal output. It is the host surface of the preview engine:
// hidden ranges disappear, marks and line styles become ANSI styling, and
// widget replacements render inline.
type Renderer struct {
	// Styles supplies the lipgloss styles; required.
	Styles *Styles

	// Typesetter renders math widgets. Nil degrades every formula to
	// raw text tagged with the error style.
	Typesetter widget.Typesetter

	// Resolver resolves image embeds. Nil leaves placeholders in place.
	Resolver widget.AssetResolver

	// Width is the output width for rules and tables; 0 means 80.
	Width int
}

// Render produces the decorated document text.
func (r *Renderer) Render(ctx context.Context, doc *mdast.Document, set decor.Set) string {
	if doc == nil {
		return ""
	}

	exclusives, marks, lineClasses := partition(set)
	headers := codeHeaders(doc)

	var out strings.Builder
	src := doc.Content
	excIdx := 0
	pos := 0

	for pos < len(src) {
		// Advance past exclusives that ended before pos (possible when a
		// widget span crossed line boundaries).
		for excIdx < len(exclusives) && exclusives[excIdx].Span.End <= pos {
			excIdx++
		}

		if excIdx < len(exclusives) && exclusives[excIdx].Span.Start == pos {
			d := exclusives[excIdx]
			excIdx++
			pos = d.Span.End
			switch {
			case d.Kind == decor.KindWidget:
				out.WriteString(r.renderWidget(ctx, d.Widget))
			case headers[d.Span.Start] != "":
				// A hidden fence line becomes a language header.
				out.WriteString(r.Styles.Dim.Render("· " + headers[d.Span.Start]))
			default:
				// A hide covering a whole line swallows the newline too,
				// so fence lines leave no blank line behind.
				if info, ok := doc.LineAt(d.Span.Start); ok &&
					d.Span.Start == info.StartOffset && d.Span.End == info.NewlineStart {
					pos = info.EndOffset
				}
			}
			continue
		}

		info, ok := doc.LineAt(pos)
		if !ok {
			break
		}

		if pos >= info.NewlineStart {
			// Newline bytes pass through unstyled.
			out.Write(src[info.NewlineStart:info.EndOffset])
			pos = info.EndOffset
			if info.EndOffset == info.NewlineStart {
				break // last line without trailing newline
			}
			continue
		}

		segEnd := info.NewlineStart
		if excIdx < len(exclusives) && exclusives[excIdx].Span.Start < segEnd {
			segEnd = exclusives[excIdx].Span.Start
		}
		segEnd = nextMarkBoundary(marks, pos, segEnd)

		style := r.segmentStyle(marks, lineClasses, info.StartOffset, pos)
		out.WriteString(style.Render(string(src[pos:segEnd])))
		pos = segEnd
	}

	return out.String()
}

// partition splits a set into sorted exclusive entries, range marks, and
// line classes keyed by line start offset.
func partition(set decor.Set) ([]decor.Decoration, []decor.Decoration, map[int][]decor.Class) {
	var exclusives, marks []decor.Decoration
	lineClasses := make(map[int][]decor.Class)

	for _, d := range set.Decorations {
		switch d.Kind {
		case decor.KindHide, decor.KindWidget:
			exclusives = append(exclusives, d)
		case decor.KindMark:
			marks = append(marks, d)
		case decor.KindLineStyle:
			lineClasses[d.Span.Start] = append(lineClasses[d.Span.Start], d.Class)
		}
	}
	return exclusives, marks, lineClasses
}

// nextMarkBoundary shrinks segEnd to the nearest mark start or end after
// pos, so styling changes exactly on mark edges.
func nextMarkBoundary(marks []decor.Decoration, pos, segEnd int) int {
	for _, m := range marks {
		if m.Span.Start > pos && m.Span.Start < segEnd {
			segEnd = m.Span.Start
		}
		if m.Span.End > pos && m.Span.End < segEnd {
			segEnd = m.Span.End
		}
	}
	return segEnd
}

// segmentStyle folds the line style and every mark covering pos into one
// lipgloss style. Overlapping marks compose.
func (r *Renderer) segmentStyle(marks []decor.Decoration, lineClasses map[int][]decor.Class, lineStart, pos int) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, class := range lineClasses[lineStart] {
		style = style.Inherit(r.Styles.LineStyleFor(class))
	}
	for _, m := range marks {
		if m.Span.Contains(pos) {
			style = style.Inherit(r.Styles.MarkStyle(m.Class))
		}
	}
	return style
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return defaultWidth
}
