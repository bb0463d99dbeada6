package decor

import "sort"

// Set is a reconciled, ordered decoration set: sorted by start offset,
// with no two exclusive entries overlapping.
type Set struct {
	// Decorations are the kept entries, sorted by (start, end, kind).
	Decorations []Decoration

	// Dropped are exclusive entries rejected for overlapping an
	// earlier-kept exclusive entry. Overlaps between independent
	// decorators are a defect; dropping the later-sorted entry keeps the
	// output deterministic.
	Dropped []Decoration
}

// Len returns the number of kept decorations.
func (s Set) Len() int {
	return len(s.Decorations)
}

// Equal reports whether two sets hold identical kept decorations.
func (s Set) Equal(other Set) bool {
	if len(s.Decorations) != len(other.Decorations) {
		return false
	}
	for i, d := range s.Decorations {
		if !d.Equal(other.Decorations[i]) {
			return false
		}
	}
	return true
}

// Reconcile merges decorator outputs into one ordered set, enforcing the
// exclusive non-overlap invariant. Ordering is (start, end, kind) with a
// stable sort, so at identical spans a widget replacement outranks a hide
// and earlier-registered entries outrank later ones. An exclusive entry
// overlapping an earlier-kept exclusive entry is dropped
// (earliest-start-wins).
func Reconcile(groups ...[]Decoration) Set {
	var all []Decoration
	for _, g := range groups {
		all = append(all, g...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.Kind < b.Kind
	})

	set := Set{}
	lastExclusiveEnd := -1
	for _, d := range all {
		if d.Exclusive() {
			if d.Span.Start < lastExclusiveEnd {
				set.Dropped = append(set.Dropped, d)
				continue
			}
			if d.Span.End > lastExclusiveEnd {
				lastExclusiveEnd = d.Span.End
			}
		}
		set.Decorations = append(set.Decorations, d)
	}

	return set
}
