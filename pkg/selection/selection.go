// Package selection models the selection state the preview engine consumes:
// an ordered set of anchor/head ranges over buffer byte offsets.
package selection

import "github.com/yaklabco/gomdview/pkg/mdast"

// Range is a single selection range in buffer byte offsets.
// Anchor is where the selection started; Head is the active end that moves
// with the cursor. A cursor is a range whose anchor and head coincide.
type Range struct {
	Anchor int
	Head   int
}

// Cursor creates an empty range at the given offset.
func Cursor(offset int) Range {
	return Range{Anchor: offset, Head: offset}
}

// NewRange creates a range with the given anchor and head.
func NewRange(anchor, head int) Range {
	return Range{Anchor: anchor, Head: head}
}

// IsCursor returns true if the range selects nothing.
func (r Range) IsCursor() bool {
	return r.Anchor == r.Head
}

// From returns the lower of anchor and head.
func (r Range) From() int {
	if r.Head < r.Anchor {
		return r.Head
	}
	return r.Anchor
}

// To returns the higher of anchor and head.
func (r Range) To() int {
	if r.Head > r.Anchor {
		return r.Head
	}
	return r.Anchor
}

// Touches returns true if the range overlaps span or sits on its boundary.
// A cursor touching either edge of a construct counts as inside it, which
// is what keeps syntax revealed while typing at a construct's edge.
func (r Range) Touches(span mdast.SourceRange) bool {
	return r.From() <= span.End && r.To() >= span.Start
}

// State is the ordered set of selection ranges for one recompute pass.
type State struct {
	Ranges []Range
}

// NewState creates a selection state from the given ranges.
func NewState(ranges ...Range) State {
	return State{Ranges: ranges}
}

// Touches returns true if any range touches the given span.
func (s State) Touches(span mdast.SourceRange) bool {
	for _, r := range s.Ranges {
		if r.Touches(span) {
			return true
		}
	}
	return false
}

// TouchesLines returns true if any range shares at least one line with the
// given span. Line-based constructs (headings, fenced code, blockquotes)
// reveal on line overlap rather than character overlap.
func (s State) TouchesLines(doc *mdast.Document, span mdast.SourceRange) bool {
	spanEnd := span.End
	if spanEnd > span.Start {
		spanEnd-- // line of the last byte, not the byte past the range
	}
	spanFirst := doc.LineIndexAt(span.Start)
	spanLast := doc.LineIndexAt(spanEnd)
	if spanFirst < 0 || spanLast < 0 {
		return false
	}

	for _, r := range s.Ranges {
		first := doc.LineIndexAt(r.From())
		last := doc.LineIndexAt(r.To())
		if first < 0 || last < 0 {
			continue
		}
		if first <= spanLast && last >= spanFirst {
			return true
		}
	}
	return false
}
