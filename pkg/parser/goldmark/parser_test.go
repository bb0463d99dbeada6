package goldmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/mdast"
	goldmarkparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
)

func parse(t *testing.T, source string) *mdast.Document {
	t.Helper()

	doc, err := goldmarkparser.New().Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	return doc
}

func findOne(t *testing.T, doc *mdast.Document, kind mdast.NodeKind) *mdast.Node {
	t.Helper()

	nodes := mdast.FindByKind(doc.Root, kind)
	require.Len(t, nodes, 1, "expected exactly one %v node", kind)
	return nodes[0]
}

func TestParseATXHeading(t *testing.T) {
	t.Parallel()

	doc := parse(t, "# Title\n")

	heading := findOne(t, doc, mdast.NodeHeading)
	assert.Equal(t, mdast.NewRange(0, 7), heading.Span, "span covers marker and text, not the newline")
	require.NotNil(t, heading.Block)
	assert.Equal(t, 1, heading.Block.HeadingLevel)
}

func TestParseSetextHeading(t *testing.T) {
	t.Parallel()

	doc := parse(t, "Title\n=====\n")

	heading := findOne(t, doc, mdast.NodeHeading)
	assert.Equal(t, mdast.NewRange(0, 11), heading.Span, "span absorbs the underline")
	require.NotNil(t, heading.Block)
	assert.Equal(t, 1, heading.Block.HeadingLevel)
}

func TestParseStrongSpan(t *testing.T) {
	t.Parallel()

	// Offsets: "Hello **bold** text"
	//                 6       14
	doc := parse(t, "Hello **bold** text")

	strong := findOne(t, doc, mdast.NodeStrong)
	assert.Equal(t, mdast.NewRange(6, 14), strong.Span)
	require.NotNil(t, strong.Inline)
	assert.Equal(t, 2, strong.Inline.EmphasisLevel)

	para := findOne(t, doc, mdast.NodeParagraph)
	assert.Equal(t, mdast.NewRange(0, 19), para.Span)
}

func TestParseEmphasisSpan(t *testing.T) {
	t.Parallel()

	doc := parse(t, "a *it* b")

	em := findOne(t, doc, mdast.NodeEmphasis)
	assert.Equal(t, mdast.NewRange(2, 6), em.Span)
}

func TestParseStrikethroughSpan(t *testing.T) {
	t.Parallel()

	doc := parse(t, "a ~~gone~~")

	st := findOne(t, doc, mdast.NodeStrikethrough)
	assert.Equal(t, mdast.NewRange(2, 10), st.Span)
}

func TestParseCodeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected mdast.SourceRange
	}{
		{name: "single backtick", source: "a `x` b", expected: mdast.NewRange(2, 5)},
		{name: "double backtick", source: "a ``x`` b", expected: mdast.NewRange(2, 7)},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, testCase.source)
			cs := findOne(t, doc, mdast.NodeCodeSpan)
			assert.Equal(t, testCase.expected, cs.Span)
		})
	}
}

func TestParseFencedCodeBlock(t *testing.T) {
	t.Parallel()

	doc := parse(t, "```go\ncode\n```\n")

	cb := findOne(t, doc, mdast.NodeCodeBlock)
	assert.Equal(t, mdast.NewRange(0, 14), cb.Span, "open fence line through closing fence line")

	require.NotNil(t, cb.Block)
	require.NotNil(t, cb.Block.CodeBlock)
	assert.Equal(t, byte('`'), cb.Block.CodeBlock.FenceChar)
	assert.Equal(t, 3, cb.Block.CodeBlock.FenceLength)
	assert.Equal(t, "go", cb.Block.CodeBlock.Info)
	assert.False(t, cb.Block.CodeBlock.Indented)
}

func TestParseUnterminatedFence(t *testing.T) {
	t.Parallel()

	doc := parse(t, "```\ncode\nmore")

	cb := findOne(t, doc, mdast.NodeCodeBlock)
	assert.Equal(t, mdast.NewRange(0, 13), cb.Span, "span ends at the last interior line")
}

func TestParseIndentedCodeBlock(t *testing.T) {
	t.Parallel()

	doc := parse(t, "    code\n")

	cb := findOne(t, doc, mdast.NodeCodeBlock)
	require.NotNil(t, cb.Block)
	require.NotNil(t, cb.Block.CodeBlock)
	assert.True(t, cb.Block.CodeBlock.Indented)
}

func TestParseThematicBreak(t *testing.T) {
	t.Parallel()

	doc := parse(t, "a\n\n---\n\nb\n")

	hr := findOne(t, doc, mdast.NodeThematicBreak)
	assert.Equal(t, mdast.NewRange(3, 6), hr.Span)
}

func TestSetextUnderlineNotMistakenForBreak(t *testing.T) {
	t.Parallel()

	// The dashes under "Title" are a setext underline, the later run is a
	// real thematic break.
	doc := parse(t, "Title\n-----\n\n---\n")

	heading := findOne(t, doc, mdast.NodeHeading)
	assert.Equal(t, mdast.NewRange(0, 11), heading.Span)

	hr := findOne(t, doc, mdast.NodeThematicBreak)
	assert.Equal(t, mdast.NewRange(13, 16), hr.Span)
}

func TestParseBlockquote(t *testing.T) {
	t.Parallel()

	doc := parse(t, "> quoted\n")

	bq := findOne(t, doc, mdast.NodeBlockquote)
	assert.Equal(t, mdast.NewRange(0, 8), bq.Span, "span starts at the marker line")
}

func TestParseLink(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[text](https://example.com)")

	link := findOne(t, doc, mdast.NodeLink)
	assert.Equal(t, mdast.NewRange(1, 5), link.Span, "span covers only the link text")
	require.NotNil(t, link.Inline)
	require.NotNil(t, link.Inline.Link)
	assert.Equal(t, "https://example.com", link.Inline.Link.Destination)
}

func TestParseCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := goldmarkparser.New().Parse(ctx, []byte("# x"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := parse(t, "")
	assert.Equal(t, mdast.NodeDocument, doc.Root.Kind)
	assert.False(t, doc.Root.HasChildren())
}
