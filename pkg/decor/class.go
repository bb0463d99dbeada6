package decor

import "fmt"

// Class names a style the host surface knows how to apply. Classes are an
// open vocabulary: the engine only emits them, the host interprets them.
type Class string

// Range mark classes.
const (
	ClassEmphasis      Class = "em"
	ClassStrong        Class = "strong"
	ClassStrikethrough Class = "strikethrough"
	ClassCode          Class = "code"
	ClassLink          Class = "link"
	ClassHighlight     Class = "highlight"
	ClassMathError     Class = "math-error"
)

// Line style classes.
const (
	ClassCodeLine  Class = "code-line"
	ClassQuoteLine Class = "quote-line"
)

// HeadingClass returns the line class for a heading level (h1 through h6).
// Levels outside 1-6 are clamped.
func HeadingClass(level int) Class {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Class(fmt.Sprintf("h%d", level))
}
