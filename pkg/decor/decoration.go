// Package decor defines the decoration model produced by the preview
// engine: hide, mark, line-style, and widget-replace annotations over byte
// ranges, and the reconciled, ordered set handed to the host surface.
package decor

import (
	"github.com/yaklabco/gomdview/pkg/mdast"
	"github.com/yaklabco/gomdview/pkg/widget"
)

// Kind identifies a decoration variant.
type Kind uint8

const (
	// KindWidget replaces a range with a rendered widget. Exclusive.
	KindWidget Kind = iota

	// KindHide removes a range from display. Exclusive.
	KindHide

	// KindLineStyle applies a style class to a whole line.
	KindLineStyle

	// KindMark applies a style class to a range.
	KindMark
)

// String returns a human-readable name for the decoration kind.
func (k Kind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindHide:
		return "hide"
	case KindLineStyle:
		return "line-style"
	case KindMark:
		return "mark"
	default:
		return "unknown"
	}
}

// Decoration is a single visual annotation. Exactly one variant applies,
// selected by Kind; unused fields are zero.
type Decoration struct {
	// Kind selects the variant.
	Kind Kind

	// Span is the decorated byte range. For KindLineStyle it is the empty
	// range at the line's start offset.
	Span mdast.SourceRange

	// Class is the style class for KindMark and KindLineStyle.
	Class Class

	// Widget is the descriptor for KindWidget.
	Widget widget.Descriptor
}

// Hide creates a decoration that removes span from display.
func Hide(span mdast.SourceRange) Decoration {
	return Decoration{Kind: KindHide, Span: span}
}

// Mark creates a decoration styling span with class.
func Mark(span mdast.SourceRange, class Class) Decoration {
	return Decoration{Kind: KindMark, Span: span, Class: class}
}

// LineStyle creates a decoration styling the line starting at lineStart.
func LineStyle(lineStart int, class Class) Decoration {
	return Decoration{
		Kind:  KindLineStyle,
		Span:  mdast.NewRange(lineStart, lineStart),
		Class: class,
	}
}

// Replace creates a decoration substituting span with a widget.
func Replace(span mdast.SourceRange, desc widget.Descriptor) Decoration {
	return Decoration{Kind: KindWidget, Span: span, Widget: desc}
}

// Exclusive returns true for variants that consume their range exclusively
// (hide and widget-replace). Two exclusive decorations may never overlap
// in a reconciled set.
func (d Decoration) Exclusive() bool {
	return d.Kind == KindWidget || d.Kind == KindHide
}

// Equal reports whether two decorations are identical, including widget
// descriptor equality.
func (d Decoration) Equal(other Decoration) bool {
	if d.Kind != other.Kind || d.Span != other.Span || d.Class != other.Class {
		return false
	}
	if d.Kind != KindWidget {
		return true
	}
	if d.Widget == nil || other.Widget == nil {
		return d.Widget == other.Widget
	}
	return d.Widget.Equal(other.Widget)
}
