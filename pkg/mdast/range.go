package mdast

// SourceRange represents a byte range in the document content.
type SourceRange struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewRange creates a SourceRange covering [start, end).
func NewRange(start, end int) SourceRange {
	return SourceRange{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if other lies entirely within this range.
func (r SourceRange) ContainsRange(other SourceRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Overlaps returns true if the two ranges share at least one byte.
func (r SourceRange) Overlaps(other SourceRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Touches returns true if the offset lies within the range or on either
// boundary. Cursor-adjacency checks use this rather than Contains so a
// cursor sitting just after a construct still counts as inside it.
func (r SourceRange) Touches(offset int) bool {
	return offset >= r.Start && offset <= r.End
}
