package term

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gomdview/pkg/widget"
)

// resolveTimeout bounds synchronous image resolution during a one-shot
// render.
const resolveTimeout = 2 * time.Second

// renderWidget produces the inline representation for a widget descriptor.
func (r *Renderer) renderWidget(ctx context.Context, desc widget.Descriptor) string {
	switch d := desc.(type) {
	case widget.Rule:
		return r.Styles.Rule.Render(strings.Repeat("─", r.width()))

	case widget.Math:
		text, failed := widget.RenderMath(r.Typesetter, d)
		if failed {
			return r.Styles.MathError.Render(text)
		}
		return r.Styles.Math.Render(text)

	case widget.Image:
		return r.renderImage(ctx, d)

	case widget.Table:
		return r.renderTable(d)

	default:
		return ""
	}
}

// renderImage resolves the embed synchronously (the one-shot CLI has no
// later repaint to swap a placeholder into).
func (r *Renderer) renderImage(ctx context.Context, d widget.Image) string {
	label := d.Filename
	if d.Width > 0 {
		label = fmt.Sprintf("%s, %dpx", d.Filename, d.Width)
	}

	if r.Resolver == nil {
		return r.Styles.Dim.Render(fmt.Sprintf("[image: %s]", label))
	}

	rctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	location, err := r.Resolver.Resolve(rctx, d.Filename)
	if err != nil {
		if errors.Is(err, widget.ErrNotFound) {
			return r.Styles.ImageError.Render(fmt.Sprintf("[image not found: %s]", d.Filename))
		}
		return r.Styles.ImageError.Render(fmt.Sprintf("[image error: %s]", d.Filename))
	}
	return r.Styles.ImageOK.Render(fmt.Sprintf("[image: %s → %s]", label, location))
}

// renderTable renders a parsed table with padded columns. Malformed
// tables fall back to the raw text.
func (r *Renderer) renderTable(d widget.Table) string {
	data, ok := widget.ParseTable(d.Raw)
	if !ok {
		return r.Styles.Dim.Render(d.Raw)
	}

	widths := columnWidths(data)

	var out strings.Builder
	out.WriteString(r.renderRow(data.Header, widths, true))
	out.WriteString("\n")
	out.WriteString(r.Styles.TableBorder.Render(separatorLine(widths)))
	for _, row := range data.Body {
		out.WriteString("\n")
		out.WriteString(r.renderRow(row, widths, false))
	}
	return out.String()
}

func (r *Renderer) renderRow(cells []string, widths []int, header bool) string {
	var out strings.Builder
	out.WriteString(r.Styles.TableBorder.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		out.WriteString(" ")
		out.WriteString(r.renderCell(cell, header))
		out.WriteString(strings.Repeat(" ", w-cellWidth(cell)+1))
		out.WriteString(r.Styles.TableBorder.Render("│"))
	}
	return out.String()
}

// renderCell applies the minimal inline-formatting pass to cell text.
func (r *Renderer) renderCell(cell string, header bool) string {
	var out strings.Builder
	for _, span := range widget.FormatCell(cell) {
		style := r.spanStyle(span.Style)
		if header {
			style = style.Inherit(r.Styles.TableHeader)
		}
		out.WriteString(style.Render(span.Text))
	}
	return out.String()
}

func (r *Renderer) spanStyle(style widget.SpanStyle) lipgloss.Style {
	switch style {
	case widget.SpanBoldItalic:
		return r.Styles.Strong.Inherit(r.Styles.Emphasis)
	case widget.SpanBold:
		return r.Styles.Strong
	case widget.SpanItalic:
		return r.Styles.Emphasis
	case widget.SpanCode:
		return r.Styles.Code
	default:
		return lipgloss.NewStyle()
	}
}

// columnWidths returns the display width of each column, sized to the
// widest cell.
func columnWidths(data *widget.TableData) []int {
	cols := len(data.Header)
	for _, row := range data.Body {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(data.Header)
	for _, row := range data.Body {
		measure(row)
	}
	return widths
}

// cellWidth is the visible width of a cell after formatting markers are
// consumed.
func cellWidth(cell string) int {
	w := 0
	for _, span := range widget.FormatCell(cell) {
		w += len([]rune(span.Text))
	}
	return w
}

func separatorLine(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return "├" + strings.Join(parts, "┼") + "┤"
}
