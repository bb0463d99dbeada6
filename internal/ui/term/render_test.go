package term_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/internal/ui/term"
	goldmarkparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
	"github.com/yaklabco/gomdview/pkg/preview"
	"github.com/yaklabco/gomdview/pkg/selection"
	"github.com/yaklabco/gomdview/pkg/widget"
)

// render parses source, computes read-only decorations, and renders with
// colorless styles so output can be compared as plain text.
func render(t *testing.T, source string, opts ...func(*term.Renderer)) string {
	t.Helper()

	doc, err := goldmarkparser.New().Parse(context.Background(), []byte(source))
	require.NoError(t, err)

	set := preview.New(preview.DefaultOptions()).Compute(doc, selection.NewState(), preview.ModeReadOnly)

	renderer := &term.Renderer{
		Styles:     term.NewStyles(false),
		Typesetter: term.Typesetter{},
		Width:      4,
	}
	for _, opt := range opts {
		opt(renderer)
	}

	return renderer.Render(context.Background(), doc, set)
}

func TestRenderHidesMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "heading marker",
			source:   "# Title\n",
			expected: "Title\n",
		},
		{
			name:     "strong markers",
			source:   "Hello **bold** text",
			expected: "Hello bold text",
		},
		{
			name:     "code span markers",
			source:   "a `x` b",
			expected: "a x b",
		},
		{
			name:     "strikethrough markers",
			source:   "a ~~gone~~",
			expected: "a gone",
		},
		{
			name:     "blockquote marker",
			source:   "> quoted\n",
			expected: "quoted\n",
		},
		{
			name:     "link syntax",
			source:   "see [text](url) here",
			expected: "see text here",
		},
		{
			name:     "highlight markers",
			source:   "==hi==",
			expected: "hi",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, render(t, testCase.source))
		})
	}
}

func TestRenderRuleWidget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\n\n────\n\nb\n", render(t, "a\n\n---\n\nb\n"))
}

func TestRenderMathWidget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "α + 1", render(t, `$\alpha + 1$`))
	assert.Equal(t, "x^2", render(t, "$x^{2}$"), "braces stripped after typesetting")
}

func TestRenderMathFailureFallsBackToFormula(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a{b", render(t, "$a{b$"))
}

func TestRenderCodeBlockHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "· go\ncode\n", render(t, "```go\ncode\n```\n"))
}

func TestRenderCodeBlockDetectsLanguage(t *testing.T) {
	t.Parallel()

	out := render(t, "```\n#!/bin/bash\necho hi\n```\n")
	assert.Equal(t, "· shell\n#!/bin/bash\necho hi\n", out)
}

func TestRenderImagePlaceholderWithoutResolver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[image: cat.png, 200px]", render(t, "![[cat.png | 200]]"))
	assert.Equal(t, "[image: cat.png]", render(t, "![[cat.png]]"))
}

type mapResolver map[string]string

func (m mapResolver) Resolve(_ context.Context, filename string) (string, error) {
	if loc, ok := m[filename]; ok {
		return loc, nil
	}
	return "", widget.ErrNotFound
}

func TestRenderImageResolved(t *testing.T) {
	t.Parallel()

	withResolver := func(r *term.Renderer) {
		r.Resolver = mapResolver{"cat.png": "/vault/cat.png"}
	}

	assert.Equal(t, "[image: cat.png → /vault/cat.png]",
		render(t, "![[cat.png]]", withResolver))
	assert.Equal(t, "[image not found: dog.png]",
		render(t, "![[dog.png]]", withResolver))
}

func TestRenderTableWidget(t *testing.T) {
	t.Parallel()

	out := render(t, "| a | b |\n| - | - |\n| 1 | 2 |\n")
	assert.Equal(t, "│ a │ b │\n├───┼───┤\n│ 1 │ 2 │\n", out)
}

func TestRenderTablePadsColumns(t *testing.T) {
	t.Parallel()

	out := render(t, "| name | n |\n| - | - |\n| ab | 200 |\n")
	assert.Equal(t, "│ name │ n   │\n├──────┼─────┤\n│ ab   │ 200 │\n", out)
}

func TestRenderEmptyDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", render(t, ""))
}
