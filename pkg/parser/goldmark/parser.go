// Package goldmark builds the mdast syntax tree using the goldmark library.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdview/pkg/mdast"
)

// Parser converts raw Markdown bytes into an mdast.Document snapshot.
type Parser struct {
	md goldmark.Markdown
}

// New creates a new goldmark-based parser.
// Strikethrough is the only extension enabled: the preview engine's
// pattern scans own tables, math, highlights, and embeds.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		),
	}
}

// Parse builds a Document snapshot with a fully-populated syntax tree.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds the Document shell with content and line index.
//  3. Parses content with goldmark.
//  4. Maps the goldmark AST into mdast nodes with byte spans.
//
// Returns nil and an error only if the context is cancelled; parsing
// itself is total for any input bytes.
func (p *Parser) Parse(ctx context.Context, content []byte) (*mdast.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := mdast.NewDocument(content)

	reader := text.NewReader(doc.Content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(doc)
	doc.Root = m.mapDocument(gmDoc)

	return doc, nil
}
