package preview

import (
	"github.com/yaklabco/gomdview/pkg/mdast"
	"github.com/yaklabco/gomdview/pkg/selection"
)

// revealed decides whether a range-based construct stays raw: editable
// mode and a selection range touching the construct's span. In read-only
// mode nothing is ever revealed.
func revealed(sel selection.State, mode Mode, span mdast.SourceRange) bool {
	return mode == ModeEditable && sel.Touches(span)
}

// revealedOnLines is the line-based variant used by headings, fenced code
// blocks, and blockquotes: the construct stays raw when any selection
// range shares a line with its span.
func revealedOnLines(doc *mdast.Document, sel selection.State, mode Mode, span mdast.SourceRange) bool {
	return mode == ModeEditable && sel.TouchesLines(doc, span)
}
