// Package mdast provides the document snapshot and syntax tree consumed by
// the preview engine. A Document is an immutable view of the buffer for one
// recompute pass: raw content, line metadata, and the parsed node tree.
package mdast

import "sort"

// Document is an immutable snapshot of a Markdown buffer.
// It holds the raw content, line metadata, and the syntax tree root.
type Document struct {
	// Content is the full buffer bytes.
	Content []byte

	// Lines contains metadata for each line in the buffer.
	Lines []LineInfo

	// Root is the syntax tree root node (Document kind).
	// Nil until a parser populates it.
	Root *Node
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of buffer).
	EndOffset int
}

// NewDocument creates a Document snapshot from content.
// It builds the line index but does not parse (that requires a Parser).
func NewDocument(content []byte) *Document {
	return &Document{
		Content: copyContent(content),
		Lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata from buffer content.
// It handles both LF and CRLF line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineIndexAt returns the 0-based index of the line containing offset.
// Offsets past the end of content map to the last line.
// Returns -1 for negative offsets or an empty document.
func (d *Document) LineIndexAt(offset int) int {
	if offset < 0 || len(d.Lines) == 0 {
		return -1
	}

	if offset >= len(d.Content) {
		return len(d.Lines) - 1
	}

	idx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})

	if idx >= len(d.Lines) {
		idx = len(d.Lines) - 1
	}
	return idx
}

// LineAt returns the LineInfo for the line containing offset.
// Returns (LineInfo{}, false) if the offset maps to no line.
func (d *Document) LineAt(offset int) (LineInfo, bool) {
	idx := d.LineIndexAt(offset)
	if idx < 0 {
		return LineInfo{}, false
	}
	return d.Lines[idx], true
}

// LineContent returns the bytes of the 0-based line index, excluding the newline.
// Returns nil if the index is out of range.
func (d *Document) LineContent(idx int) []byte {
	if idx < 0 || idx >= len(d.Lines) {
		return nil
	}
	info := d.Lines[idx]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// Slice returns the content bytes in [start, end), clamped to the buffer.
func (d *Document) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(d.Content) {
		end = len(d.Content)
	}
	if start >= end {
		return nil
	}
	return d.Content[start:end]
}

// copyContent copies the content slice so the snapshot stays immutable.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
