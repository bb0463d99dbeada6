// Package widget defines the widget descriptors substituted for hidden
// text ranges (math, image, horizontal rule, table) and the narrow
// capabilities they render through. Descriptors are plain values built
// fresh on every recompute; value equality tells the host surface whether
// a previously rendered instance can be reused.
package widget

// Kind identifies a widget variant.
type Kind uint8

const (
	KindMath Kind = iota
	KindImage
	KindRule
	KindTable
)

// String returns a human-readable name for the widget kind.
func (k Kind) String() string {
	switch k {
	case KindMath:
		return "math"
	case KindImage:
		return "image"
	case KindRule:
		return "rule"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Descriptor describes one widget to be rendered in place of a text range.
type Descriptor interface {
	// Kind returns the widget variant.
	Kind() Kind

	// Equal reports whether other describes the same rendered output, so
	// the host can keep the existing instance across a recompute.
	Equal(other Descriptor) bool
}

// Math describes a typeset formula.
type Math struct {
	// Formula is the raw formula text between the delimiters.
	Formula string

	// Display is true for block ($$) math, false for inline.
	Display bool
}

func (m Math) Kind() Kind { return KindMath }

func (m Math) Equal(other Descriptor) bool {
	o, ok := other.(Math)
	return ok && o == m
}

// Image describes an embedded image reference (![[name]] or ![[name | w]]).
type Image struct {
	// Filename is the referenced file name, trimmed of surrounding spaces.
	Filename string

	// Width is the requested pixel width; 0 means natural size.
	Width int
}

func (i Image) Kind() Kind { return KindImage }

func (i Image) Equal(other Descriptor) bool {
	o, ok := other.(Image)
	return ok && o == i
}

// Rule describes a horizontal rule. It carries no payload and is always
// equal to any other Rule.
type Rule struct{}

func (r Rule) Kind() Kind { return KindRule }

func (r Rule) Equal(other Descriptor) bool {
	_, ok := other.(Rule)
	return ok
}

// Table describes a pipe table, carrying the raw matched block.
type Table struct {
	// Raw is the matched table text, without a trailing newline.
	Raw string
}

func (t Table) Kind() Kind { return KindTable }

func (t Table) Equal(other Descriptor) bool {
	o, ok := other.(Table)
	return ok && o == t
}
