// Package preview computes the live-preview decoration set for a Markdown
// buffer snapshot: hide decorations for syntax markers, style marks for
// semantic spans, line styles, and widget replacements for math, embeds,
// rules, and tables. Recomputation happens from scratch on every document
// mutation or selection change; the engine keeps no cross-call state.
package preview

import (
	"github.com/yaklabco/gomdview/pkg/decor"
	"github.com/yaklabco/gomdview/pkg/mdast"
	"github.com/yaklabco/gomdview/pkg/selection"
)

// Mode controls whether cursor proximity reveals raw syntax.
type Mode uint8

const (
	// ModeEditable reveals the raw syntax of constructs the selection
	// touches, so the text under the cursor stays editable as typed.
	ModeEditable Mode = iota

	// ModeReadOnly decorates every construct regardless of selection.
	ModeReadOnly
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeReadOnly {
		return "read-only"
	}
	return "editable"
}

// Options toggles the pattern-driven scans. The tree-driven decorator is
// always active.
type Options struct {
	Math      bool
	Highlight bool
	Embeds    bool
	Tables    bool
}

// DefaultOptions enables every scan.
func DefaultOptions() Options {
	return Options{Math: true, Highlight: true, Embeds: true, Tables: true}
}

// Engine computes decoration sets. An Engine is stateless and safe to
// reuse across recomputes; all inputs arrive per call.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Compute derives the full decoration set for one snapshot. The tree
// decorator and the pattern scans run independently over the same
// snapshot; their outputs are reconciled into one ordered set. Compute is
// total: for any well-formed snapshot it terminates and returns a valid,
// non-overlapping set.
func (e *Engine) Compute(doc *mdast.Document, sel selection.State, mode Mode) decor.Set {
	if doc == nil {
		return decor.Set{}
	}

	tree := e.treeDecorations(doc, sel, mode)
	patterns := e.patternDecorations(doc, sel, mode)

	return decor.Reconcile(tree, patterns)
}
