package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/widget"
)

func TestParseTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		ok       bool
		header   []string
		body     [][]string
	}{
		{
			name:   "basic table",
			raw:    "| a | b |\n| --- | --- |\n| 1 | 2 |",
			ok:     true,
			header: []string{"a", "b"},
			body:   [][]string{{"1", "2"}},
		},
		{
			name:   "alignment colons",
			raw:    "| left | right |\n| :--- | ---: |\n| x | y |\n| z | w |",
			ok:     true,
			header: []string{"left", "right"},
			body:   [][]string{{"x", "y"}, {"z", "w"}},
		},
		{
			name:   "header only with separator",
			raw:    "| a | b |\n| --- | --- |",
			ok:     true,
			header: []string{"a", "b"},
			body:   [][]string{},
		},
		{
			name: "single line is malformed",
			raw:  "| a | b |",
			ok:   false,
		},
		{
			name: "empty block is malformed",
			raw:  "\n\n",
			ok:   false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			data, ok := widget.ParseTable(testCase.raw)
			require.Equal(t, testCase.ok, ok)
			if !ok {
				return
			}

			assert.Equal(t, testCase.header, data.Header)
			assert.Equal(t, testCase.body, data.Body)
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []widget.Span
	}{
		{
			name:     "plain text",
			text:     "hello",
			expected: []widget.Span{{Text: "hello", Style: widget.SpanPlain}},
		},
		{
			name: "bold run",
			text: "a **b** c",
			expected: []widget.Span{
				{Text: "a ", Style: widget.SpanPlain},
				{Text: "b", Style: widget.SpanBold},
				{Text: " c", Style: widget.SpanPlain},
			},
		},
		{
			name: "bold italic outranks bold",
			text: "***x***",
			expected: []widget.Span{
				{Text: "x", Style: widget.SpanBoldItalic},
			},
		},
		{
			name: "code and italic",
			text: "`code` and *it*",
			expected: []widget.Span{
				{Text: "code", Style: widget.SpanCode},
				{Text: " and ", Style: widget.SpanPlain},
				{Text: "it", Style: widget.SpanItalic},
			},
		},
		{
			name: "two bold runs",
			text: "**a** x **b**",
			expected: []widget.Span{
				{Text: "a", Style: widget.SpanBold},
				{Text: " x ", Style: widget.SpanPlain},
				{Text: "b", Style: widget.SpanBold},
			},
		},
		{
			name:     "empty cell",
			text:     "",
			expected: nil,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, widget.FormatCell(testCase.text))
		})
	}
}
