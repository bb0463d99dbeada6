package widget

import (
	"regexp"
	"strings"
)

// TableData is the parsed form of a table widget's raw block.
type TableData struct {
	// Header holds the header row cells.
	Header []string

	// Body holds the body rows.
	Body [][]string
}

// separatorCellRe matches one alignment cell of a separator row.
var separatorCellRe = regexp.MustCompile(`^:?-+:?$`)

// ParseTable parses a raw table block into header and body rows.
// Each line is split on '|' with the empty leading/trailing cells produced
// by the outer delimiters dropped. The first non-separator row becomes the
// header; the following dash/colon row is consumed and skipped; remaining
// rows become the body. Returns (nil, false) for malformed blocks (fewer
// than 2 non-empty lines), which the host renders as raw text.
func ParseTable(raw string) (*TableData, bool) {
	var rows [][]string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitRow(line))
	}
	if len(rows) < 2 {
		return nil, false
	}

	data := &TableData{}
	i := 0

	// First non-separator row is the header.
	for i < len(rows) && isSeparatorRow(rows[i]) {
		i++
	}
	if i >= len(rows) {
		return nil, false
	}
	data.Header = rows[i]
	i++

	// Consume the alignment row.
	if i < len(rows) && isSeparatorRow(rows[i]) {
		i++
	}

	data.Body = rows[i:]
	return data, true
}

// splitRow splits a table line on '|', trims each cell, and drops the
// empty leading/trailing cells created by the outer pipes.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparatorRow returns true if every cell is a dash/colon alignment cell.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !separatorCellRe.MatchString(c) {
			return false
		}
	}
	return true
}

// SpanStyle classifies one formatted run of cell text.
type SpanStyle uint8

const (
	SpanPlain SpanStyle = iota
	SpanBoldItalic
	SpanBold
	SpanItalic
	SpanCode
)

// Span is one styled run inside a table cell.
type Span struct {
	Text  string
	Style SpanStyle
}

// Cell-formatting patterns, tried in precedence order so ***x*** is not
// partially matched by the bold or italic patterns alone.
var cellPatterns = []struct {
	re    *regexp.Regexp
	style SpanStyle
}{
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), SpanBoldItalic},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), SpanBold},
	{regexp.MustCompile(`\*(.+?)\*`), SpanItalic},
	{regexp.MustCompile("`([^`]+)`"), SpanCode},
}

// FormatCell applies the minimal inline-formatting pass to cell text,
// returning styled runs in document order.
func FormatCell(text string) []Span {
	return formatFrom(text, 0)
}

// formatFrom formats text using patterns at or past the given precedence
// index. Text inside a match is emitted as a single styled run; nesting is
// not supported beyond what the precedence order provides.
func formatFrom(text string, patternIdx int) []Span {
	if text == "" {
		return nil
	}
	if patternIdx >= len(cellPatterns) {
		return []Span{{Text: text, Style: SpanPlain}}
	}

	p := cellPatterns[patternIdx]
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return formatFrom(text, patternIdx+1)
	}

	var spans []Span
	spans = append(spans, formatFrom(text[:loc[0]], patternIdx+1)...)
	spans = append(spans, Span{Text: text[loc[2]:loc[3]], Style: p.style})
	spans = append(spans, formatFrom(text[loc[1]:], patternIdx)...)
	return spans
}
