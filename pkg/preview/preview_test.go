package preview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/decor"
	"github.com/yaklabco/gomdview/pkg/mdast"
	goldmarkparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
	"github.com/yaklabco/gomdview/pkg/preview"
	"github.com/yaklabco/gomdview/pkg/selection"
	"github.com/yaklabco/gomdview/pkg/widget"
)

func compute(t *testing.T, source string, sel selection.State, mode preview.Mode) decor.Set {
	t.Helper()

	doc, err := goldmarkparser.New().Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	return preview.New(preview.DefaultOptions()).Compute(doc, sel, mode)
}

func ofKind(set decor.Set, kind decor.Kind) []decor.Decoration {
	var out []decor.Decoration
	for _, d := range set.Decorations {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

func TestHeadingDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "# Title", selection.NewState(), preview.ModeReadOnly)

	lineStyles := ofKind(set, decor.KindLineStyle)
	require.Len(t, lineStyles, 1)
	assert.Equal(t, decor.Class("h1"), lineStyles[0].Class)
	assert.Equal(t, 0, lineStyles[0].Span.Start)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 1)
	assert.Equal(t, mdast.NewRange(0, 2), hides[0].Span, "marker and one space are hidden")
}

func TestHeadingRevealIsLineBased(t *testing.T) {
	t.Parallel()

	source := "# Title\ntext\n"

	// Cursor anywhere on the heading line keeps the marker visible.
	set := compute(t, source, selection.NewState(selection.Cursor(3)), preview.ModeEditable)
	assert.Empty(t, ofKind(set, decor.KindHide))
	assert.Len(t, ofKind(set, decor.KindLineStyle), 1, "line style stays while revealed")

	// Cursor on the next line hides the marker again.
	set = compute(t, source, selection.NewState(selection.Cursor(9)), preview.ModeEditable)
	require.Len(t, ofKind(set, decor.KindHide), 1)
}

func TestStrongDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "Hello **bold** text", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(6, 8), hides[0].Span)
	assert.Equal(t, mdast.NewRange(12, 14), hides[1].Span)

	marks := ofKind(set, decor.KindMark)
	require.Len(t, marks, 1)
	assert.Equal(t, mdast.NewRange(8, 12), marks[0].Span)
	assert.Equal(t, decor.ClassStrong, marks[0].Class)
}

func TestStrongRevealKeepsMark(t *testing.T) {
	t.Parallel()

	set := compute(t, "Hello **bold** text",
		selection.NewState(selection.Cursor(10)), preview.ModeEditable)

	assert.Empty(t, ofKind(set, decor.KindHide), "markers stay visible under the cursor")

	marks := ofKind(set, decor.KindMark)
	require.Len(t, marks, 1)
	assert.Equal(t, decor.ClassStrong, marks[0].Class)
}

func TestRevealAtSpanEdges(t *testing.T) {
	t.Parallel()

	source := "Hello **bold** text"

	for _, offset := range []int{6, 14} {
		set := compute(t, source, selection.NewState(selection.Cursor(offset)), preview.ModeEditable)
		assert.Empty(t, ofKind(set, decor.KindHide), "cursor at offset %d touches the span", offset)
	}

	for _, offset := range []int{5, 15} {
		set := compute(t, source, selection.NewState(selection.Cursor(offset)), preview.ModeEditable)
		assert.Len(t, ofKind(set, decor.KindHide), 2, "cursor at offset %d is outside the span", offset)
	}
}

func TestReadOnlyModeNeverReveals(t *testing.T) {
	t.Parallel()

	source := "Hello **bold** text"

	withCursor := compute(t, source, selection.NewState(selection.Cursor(10)), preview.ModeReadOnly)
	withoutCursor := compute(t, source, selection.NewState(), preview.ModeReadOnly)

	assert.True(t, withCursor.Equal(withoutCursor))
	assert.Len(t, ofKind(withCursor, decor.KindHide), 2)
}

func TestCodeSpanDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "a `x` b", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(2, 3), hides[0].Span)
	assert.Equal(t, mdast.NewRange(4, 5), hides[1].Span)

	marks := ofKind(set, decor.KindMark)
	require.Len(t, marks, 1)
	assert.Equal(t, decor.ClassCode, marks[0].Class)
	assert.Equal(t, mdast.NewRange(3, 4), marks[0].Span)
}

func TestStrikethroughDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "a ~~gone~~", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(2, 4), hides[0].Span)
	assert.Equal(t, mdast.NewRange(8, 10), hides[1].Span)

	marks := ofKind(set, decor.KindMark)
	require.Len(t, marks, 1)
	assert.Equal(t, decor.ClassStrikethrough, marks[0].Class)
}

func TestFencedCodeBlockDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "```go\ncode\n```\n", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(0, 5), hides[0].Span, "opening fence line")
	assert.Equal(t, mdast.NewRange(11, 14), hides[1].Span, "closing fence line")

	lineStyles := ofKind(set, decor.KindLineStyle)
	require.Len(t, lineStyles, 1)
	assert.Equal(t, decor.ClassCodeLine, lineStyles[0].Class)
	assert.Equal(t, 6, lineStyles[0].Span.Start)
}

func TestFencedCodeBlockRevealWholeBlock(t *testing.T) {
	t.Parallel()

	// Cursor on the interior line reveals the fences too.
	set := compute(t, "```go\ncode\n```\n",
		selection.NewState(selection.Cursor(8)), preview.ModeEditable)

	assert.Empty(t, ofKind(set, decor.KindHide))
	assert.Empty(t, ofKind(set, decor.KindLineStyle))
}

func TestBlockquoteDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "> quoted\n", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 1)
	assert.Equal(t, mdast.NewRange(0, 2), hides[0].Span, "marker and one space")

	lineStyles := ofKind(set, decor.KindLineStyle)
	require.Len(t, lineStyles, 1)
	assert.Equal(t, decor.ClassQuoteLine, lineStyles[0].Class)
}

func TestNestedBlockquoteMarkers(t *testing.T) {
	t.Parallel()

	set := compute(t, "> > deep\n", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(0, 2), hides[0].Span, "outer marker")
	assert.Equal(t, mdast.NewRange(2, 4), hides[1].Span, "inner marker")
}

func TestLinkDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "[text](url)", selection.NewState(), preview.ModeReadOnly)

	marks := ofKind(set, decor.KindMark)
	require.Len(t, marks, 1)
	assert.Equal(t, mdast.NewRange(1, 5), marks[0].Span)
	assert.Equal(t, decor.ClassLink, marks[0].Class)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(0, 1), hides[0].Span)
	assert.Equal(t, mdast.NewRange(5, 11), hides[1].Span)
}

func TestMalformedLinkLeftAlone(t *testing.T) {
	t.Parallel()

	set := compute(t, "[text](url", selection.NewState(), preview.ModeReadOnly)

	assert.Empty(t, ofKind(set, decor.KindHide))
	assert.Empty(t, ofKind(set, decor.KindMark))
}

func TestThematicBreakWidget(t *testing.T) {
	t.Parallel()

	set := compute(t, "a\n\n---\n\nb\n", selection.NewState(), preview.ModeReadOnly)

	widgets := ofKind(set, decor.KindWidget)
	require.Len(t, widgets, 1)
	assert.Equal(t, mdast.NewRange(3, 6), widgets[0].Span)
	assert.Equal(t, widget.KindRule, widgets[0].Widget.Kind())
}

func TestThematicBreakRevealed(t *testing.T) {
	t.Parallel()

	set := compute(t, "a\n\n---\n\nb\n",
		selection.NewState(selection.Cursor(4)), preview.ModeEditable)

	assert.Empty(t, ofKind(set, decor.KindWidget))
}

func TestInlineMathWidget(t *testing.T) {
	t.Parallel()

	set := compute(t, "$x^2$", selection.NewState(), preview.ModeReadOnly)

	widgets := ofKind(set, decor.KindWidget)
	require.Len(t, widgets, 1)
	assert.Equal(t, mdast.NewRange(0, 5), widgets[0].Span)
	assert.Equal(t, widget.Math{Formula: "x^2", Display: false}, widgets[0].Widget)
}

func TestBlockMathWidget(t *testing.T) {
	t.Parallel()

	set := compute(t, "$$\nE=mc^2\n$$", selection.NewState(), preview.ModeReadOnly)

	widgets := ofKind(set, decor.KindWidget)
	require.Len(t, widgets, 1)
	assert.Equal(t, mdast.NewRange(0, 12), widgets[0].Span)
	assert.Equal(t, widget.Math{Formula: "E=mc^2", Display: true}, widgets[0].Widget)
}

func TestInlineMathInsideBlockMathFiltered(t *testing.T) {
	t.Parallel()

	set := compute(t, "$$ a $b$ c $$", selection.NewState(), preview.ModeReadOnly)

	widgets := ofKind(set, decor.KindWidget)
	require.Len(t, widgets, 1)
	assert.Equal(t, widget.Math{Formula: "a $b$ c", Display: true}, widgets[0].Widget)
}

func TestHighlightDecorations(t *testing.T) {
	t.Parallel()

	set := compute(t, "==hi==", selection.NewState(), preview.ModeReadOnly)

	hides := ofKind(set, decor.KindHide)
	require.Len(t, hides, 2)
	assert.Equal(t, mdast.NewRange(0, 2), hides[0].Span)
	assert.Equal(t, mdast.NewRange(4, 6), hides[1].Span)

	marks := ofKind(set, decor.KindMark)
	require.Len(t, marks, 1)
	assert.Equal(t, decor.ClassHighlight, marks[0].Class)
}

func TestHighlightRejectsLongerRuns(t *testing.T) {
	t.Parallel()

	set := compute(t, "===x===", selection.NewState(), preview.ModeReadOnly)

	assert.Empty(t, ofKind(set, decor.KindHide))
	assert.Empty(t, ofKind(set, decor.KindMark))
}

func TestEmbedWidget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected widget.Image
	}{
		{
			name:     "plain embed",
			source:   "![[cat.png]]",
			expected: widget.Image{Filename: "cat.png"},
		},
		{
			name:     "embed with width",
			source:   "![[cat.png | 200]]",
			expected: widget.Image{Filename: "cat.png", Width: 200},
		},
		{
			name:     "non-integer width keeps the embed",
			source:   "![[cat.png | wide]]",
			expected: widget.Image{Filename: "cat.png"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			set := compute(t, testCase.source, selection.NewState(), preview.ModeReadOnly)

			widgets := ofKind(set, decor.KindWidget)
			require.Len(t, widgets, 1)
			assert.Equal(t, 0, widgets[0].Span.Start)
			assert.Equal(t, len(testCase.source), widgets[0].Span.End)
			assert.Equal(t, testCase.expected, widgets[0].Widget)
		})
	}
}

func TestTableWidget(t *testing.T) {
	t.Parallel()

	source := "| a | b |\n| - | - |\n| 1 | 2 |\n"
	set := compute(t, source, selection.NewState(), preview.ModeReadOnly)

	widgets := ofKind(set, decor.KindWidget)
	require.Len(t, widgets, 1)
	assert.Equal(t, mdast.NewRange(0, 29), widgets[0].Span, "trailing newline stays outside the widget")
	assert.Equal(t, widget.Table{Raw: source[:29]}, widgets[0].Widget)
}

func TestScanOptionsDisableScans(t *testing.T) {
	t.Parallel()

	doc, err := goldmarkparser.New().Parse(context.Background(), []byte("$x^2$ and ==hi== and ![[cat.png]]"))
	require.NoError(t, err)

	engine := preview.New(preview.Options{})
	set := engine.Compute(doc, selection.NewState(), preview.ModeReadOnly)

	assert.Empty(t, ofKind(set, decor.KindWidget))
	assert.Empty(t, ofKind(set, decor.KindMark))
}

func TestComputeDeterministic(t *testing.T) {
	t.Parallel()

	source := "# Title\n\nSome **bold** and `code` and $x$\n\n> quote\n\n---\n"

	first := compute(t, source, selection.NewState(), preview.ModeReadOnly)
	second := compute(t, source, selection.NewState(), preview.ModeReadOnly)

	assert.True(t, first.Equal(second))
}

func TestExclusiveNonOverlapInvariant(t *testing.T) {
	t.Parallel()

	// Constructs that produce competing exclusive decorations.
	source := "# Head\n\n**bold $x$** and ==hi== and ~~gone~~\n\n| a | b |\n| - | - |\n| 1 | 2 |\n"
	set := compute(t, source, selection.NewState(), preview.ModeReadOnly)

	lastEnd := -1
	for _, d := range set.Decorations {
		if !d.Exclusive() {
			continue
		}
		assert.GreaterOrEqual(t, d.Span.Start, lastEnd,
			"exclusive decoration %v overlaps the previous one", d.Span)
		if d.Span.End > lastEnd {
			lastEnd = d.Span.End
		}
	}
}

func TestComputeStateIsolation(t *testing.T) {
	t.Parallel()

	engine := preview.New(preview.DefaultOptions())
	parser := goldmarkparser.New()

	mathDoc, err := parser.Parse(context.Background(), []byte("$$x$$"))
	require.NoError(t, err)
	plainDoc, err := parser.Parse(context.Background(), []byte("plain text"))
	require.NoError(t, err)

	// A scan hit in one document must leave no trace in the next compute.
	engine.Compute(mathDoc, selection.NewState(), preview.ModeReadOnly)
	set := engine.Compute(plainDoc, selection.NewState(), preview.ModeReadOnly)

	assert.Zero(t, set.Len())
	assert.Empty(t, set.Dropped)
}

func TestComputeNilDocument(t *testing.T) {
	t.Parallel()

	set := preview.New(preview.DefaultOptions()).Compute(nil, selection.NewState(), preview.ModeReadOnly)
	assert.Zero(t, set.Len())
}
