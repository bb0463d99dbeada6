// Package term realizes a decoration set on a terminal: hidden ranges are
// removed, marks and line styles become lipgloss styling, and widget
// replacements render inline.
package term

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomdview/pkg/decor"
)

// Styles contains the styled renderers for decorated output.
type Styles struct {
	// Range mark styles.
	Emphasis      lipgloss.Style
	Strong        lipgloss.Style
	Strikethrough lipgloss.Style
	Code          lipgloss.Style
	Link          lipgloss.Style
	Highlight     lipgloss.Style
	MathError     lipgloss.Style

	// Line styles.
	Heading   [6]lipgloss.Style
	CodeLine  lipgloss.Style
	QuoteLine lipgloss.Style

	// Widget styles.
	Rule        lipgloss.Style
	Math        lipgloss.Style
	ImageOK     lipgloss.Style
	ImageError  lipgloss.Style
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style

	// Misc.
	Dim lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	s := &Styles{
		Emphasis:      lipgloss.NewStyle().Italic(true),
		Strong:        lipgloss.NewStyle().Bold(true),
		Strikethrough: lipgloss.NewStyle().Strikethrough(true),
		Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		Highlight:     lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
		MathError:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		CodeLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		QuoteLine: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Rule:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Math:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ImageOK:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ImageError:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		TableHeader: lipgloss.NewStyle().Bold(true),
		TableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}

	for i := range s.Heading {
		s.Heading[i] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	}
	s.Heading[0] = s.Heading[0].Underline(true)
	return s
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	s := &Styles{
		Emphasis:      plain,
		Strong:        plain,
		Strikethrough: plain,
		Code:          plain,
		Link:          plain,
		Highlight:     plain,
		MathError:     plain,
		CodeLine:      plain,
		QuoteLine:     plain,
		Rule:          plain,
		Math:          plain,
		ImageOK:       plain,
		ImageError:    plain,
		TableHeader:   plain,
		TableBorder:   plain,
		Dim:           plain,
	}
	for i := range s.Heading {
		s.Heading[i] = plain
	}
	return s
}

// MarkStyle returns the style for a range mark class.
func (s *Styles) MarkStyle(class decor.Class) lipgloss.Style {
	switch class {
	case decor.ClassEmphasis:
		return s.Emphasis
	case decor.ClassStrong:
		return s.Strong
	case decor.ClassStrikethrough:
		return s.Strikethrough
	case decor.ClassCode:
		return s.Code
	case decor.ClassLink:
		return s.Link
	case decor.ClassHighlight:
		return s.Highlight
	case decor.ClassMathError:
		return s.MathError
	default:
		return lipgloss.NewStyle()
	}
}

// LineStyleFor returns the style for a line class.
func (s *Styles) LineStyleFor(class decor.Class) lipgloss.Style {
	switch class {
	case decor.ClassCodeLine:
		return s.CodeLine
	case decor.ClassQuoteLine:
		return s.QuoteLine
	}
	for level := 1; level <= 6; level++ {
		if class == decor.HeadingClass(level) {
			return s.Heading[level-1]
		}
	}
	return lipgloss.NewStyle()
}

// ColorEnabled decides whether to colorize, honoring the config value
// ("auto", "always", "never") and TTY detection for "auto".
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
