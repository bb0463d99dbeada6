package preview

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdview/pkg/decor"
	"github.com/yaklabco/gomdview/pkg/mdast"
	"github.com/yaklabco/gomdview/pkg/selection"
	"github.com/yaklabco/gomdview/pkg/widget"
)

// Pattern-driven scans for constructs the grammar does not recognize.
// Each scan is a pure function over the raw content: patterns are
// compiled once and carry no per-call state, so rapid recomputes over
// different documents cannot contaminate each other.
var (
	blockMathRe  = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	inlineMathRe = regexp.MustCompile(`\$([^$\n]+?)\$`)
	highlightRe  = regexp.MustCompile(`==([^\n]+?)==`)
	embedRe      = regexp.MustCompile(`!\[\[\s*([^\[\]|\n]+?)\s*(?:\|\s*([^\[\]|\n]*?)\s*)?\]\]`)
	tableRe      = regexp.MustCompile(`(?m)^\|[^\n]*\|[ \t]*\n\|(?:[ \t]*:?-+:?[ \t]*\|)+[ \t]*\n(?:\|[^\n]*\|[ \t]*(?:\n|\z))+`)
)

// patternMatch is one scan hit: the matched span and, for replacements,
// the widget descriptor built from it.
type patternMatch struct {
	span mdast.SourceRange
	desc widget.Descriptor
}

// patternDecorations runs the enabled scans over the raw content. The
// scans are independent; only inline math consults another scan's result
// (its block-math exclusion). Remaining cross-scan overlaps are resolved
// by the reconciler.
func (e *Engine) patternDecorations(doc *mdast.Document, sel selection.State, mode Mode) []decor.Decoration {
	var out []decor.Decoration
	src := doc.Content

	var blockSpans []mdast.SourceRange
	if e.opts.Math {
		blocks := scanBlockMath(src)
		for _, m := range blocks {
			blockSpans = append(blockSpans, m.span)
			if !revealed(sel, mode, m.span) {
				out = append(out, decor.Replace(m.span, m.desc))
			}
		}

		for _, m := range scanInlineMath(src) {
			if containedInAny(m.span, blockSpans) {
				continue // block math always takes precedence
			}
			if !revealed(sel, mode, m.span) {
				out = append(out, decor.Replace(m.span, m.desc))
			}
		}
	}

	if e.opts.Highlight {
		for _, m := range scanHighlight(src) {
			if revealed(sel, mode, m.span) {
				continue
			}
			out = append(out,
				decor.Hide(mdast.NewRange(m.span.Start, m.span.Start+2)),
				decor.Mark(mdast.NewRange(m.span.Start+2, m.span.End-2), decor.ClassHighlight),
				decor.Hide(mdast.NewRange(m.span.End-2, m.span.End)),
			)
		}
	}

	if e.opts.Embeds {
		for _, m := range scanEmbeds(src) {
			if !revealed(sel, mode, m.span) {
				out = append(out, decor.Replace(m.span, m.desc))
			}
		}
	}

	if e.opts.Tables {
		for _, m := range scanTables(src) {
			if !revealed(sel, mode, m.span) {
				out = append(out, decor.Replace(m.span, m.desc))
			}
		}
	}

	return out
}

// scanBlockMath finds $$...$$ spans, tolerant of internal line breaks.
func scanBlockMath(src []byte) []patternMatch {
	var out []patternMatch
	for _, loc := range blockMathRe.FindAllSubmatchIndex(src, -1) {
		out = append(out, patternMatch{
			span: mdast.NewRange(loc[0], loc[1]),
			desc: widget.Math{
				Formula: strings.TrimSpace(string(src[loc[2]:loc[3]])),
				Display: true,
			},
		})
	}
	return out
}

// scanInlineMath finds single-line $...$ spans. The pattern requires a
// non-empty interior, so two adjacent dollar signs never match on their
// own. Containment filtering against block math is the caller's job.
func scanInlineMath(src []byte) []patternMatch {
	var out []patternMatch
	for _, loc := range inlineMathRe.FindAllSubmatchIndex(src, -1) {
		out = append(out, patternMatch{
			span: mdast.NewRange(loc[0], loc[1]),
			desc: widget.Math{
				Formula: strings.TrimSpace(string(src[loc[2]:loc[3]])),
				Display: false,
			},
		})
	}
	return out
}

// scanHighlight finds ==text== spans, rejecting candidates that are part
// of a longer '=' run on either side.
func scanHighlight(src []byte) []patternMatch {
	var out []patternMatch
	for _, loc := range highlightRe.FindAllSubmatchIndex(src, -1) {
		if loc[0] > 0 && src[loc[0]-1] == '=' {
			continue
		}
		if loc[1] < len(src) && src[loc[1]] == '=' {
			continue
		}
		out = append(out, patternMatch{span: mdast.NewRange(loc[0], loc[1])})
	}
	return out
}

// scanEmbeds finds ![[filename]] and ![[filename | width]] image embeds.
// A non-integer width invalidates only the width, not the embed.
func scanEmbeds(src []byte) []patternMatch {
	var out []patternMatch
	for _, loc := range embedRe.FindAllSubmatchIndex(src, -1) {
		desc := widget.Image{Filename: string(src[loc[2]:loc[3]])}
		if loc[4] >= 0 {
			if w, err := strconv.Atoi(string(src[loc[4]:loc[5]])); err == nil && w > 0 {
				desc.Width = w
			}
		}
		out = append(out, patternMatch{
			span: mdast.NewRange(loc[0], loc[1]),
			desc: desc,
		})
	}
	return out
}

// scanTables finds pipe-table blocks: a header line starting and ending
// with '|', a separator line of dash/colon cells, and one or more body
// lines, all anchored at line start. The trailing newline is excluded
// from the replaced range.
func scanTables(src []byte) []patternMatch {
	var out []patternMatch
	for _, loc := range tableRe.FindAllIndex(src, -1) {
		end := loc[1]
		if end > loc[0] && src[end-1] == '\n' {
			end--
			if end > loc[0] && src[end-1] == '\r' {
				end--
			}
		}
		out = append(out, patternMatch{
			span: mdast.NewRange(loc[0], end),
			desc: widget.Table{Raw: string(src[loc[0]:end])},
		})
	}
	return out
}

// containedInAny returns true if span lies fully inside one of the spans.
func containedInAny(span mdast.SourceRange, spans []mdast.SourceRange) bool {
	for _, s := range spans {
		if s.ContainsRange(span) {
			return true
		}
	}
	return false
}
