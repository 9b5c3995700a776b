// Package ivset provides a generic container that represents a set of
// values over an ordered domain as a minimal collection of half-open
// intervals [min, max). It supports point/interval membership queries, set
// algebra (union, intersection, difference, complement), ordered iteration,
// and positional lookups (lower/upper bound, enclosing interval).
//
// The container was built for QUIC-style stream and packet bookkeeping —
// tracking which byte offsets have been received, which packet numbers have
// been acknowledged, which regions are missing — so it favors a tight,
// canonical representation under heavy mutation over raw insert throughput.
//
// Quick start:
//
//	var s IntervalSet[int]
//	s.Add(NewInterval(10, 20))
//	s.Add(NewInterval(30, 40))
//	s.Add(NewInterval(15, 35))
//	s.String() // "{ [10, 40) }"
//
// See github.com/quictools/ivset/quicbook for a worked QUIC-flavored
// example and github.com/quictools/ivset's offsetrange.go for a textual
// constraint grammar that builds IntervalSet[int64] values from strings.
package ivset

import "cmp"

// Interval represents the half-open range [Min, Max) over an ordered
// domain T. The zero value is the empty interval.
//
// An Interval is empty whenever Min >= Max; this includes the case where
// Min and Max were never set. Emptiness is a first-class, silently-handled
// state throughout this package: every mutator ignores an empty interval
// argument, and every query answers "nothing matches" for one.
type Interval[T cmp.Ordered] struct {
	min T
	max T
}

// NewInterval creates the half-open interval [min, max). If min >= max the
// result is empty, but it is still a valid, usable Interval.
func NewInterval[T cmp.Ordered](min, max T) Interval[T] {
	return Interval[T]{min: min, max: max}
}

// Min returns the interval's lower (inclusive) bound.
func (iv Interval[T]) Min() T { return iv.min }

// Max returns the interval's upper (exclusive) bound.
func (iv Interval[T]) Max() T { return iv.max }

// SetMin mutates the interval's lower bound in place.
func (iv *Interval[T]) SetMin(min T) { iv.min = min }

// SetMax mutates the interval's upper bound in place.
func (iv *Interval[T]) SetMax(max T) { iv.max = max }

// IsEmpty reports whether the interval contains no values.
func (iv Interval[T]) IsEmpty() bool {
	return iv.min >= iv.max
}

// Contains reports whether v falls within the interval.
func (iv Interval[T]) Contains(v T) bool {
	return iv.min <= v && v < iv.max
}

// ContainsInterval reports whether iv wholly contains other.
//
// An empty other is never contained, even by an interval equal to it or by
// an unbounded-looking interval — this is a documented convention (see
// spec's open question on the subject), not a derivable consequence of the
// containment formula, so callers may rely on it.
func (iv Interval[T]) ContainsInterval(other Interval[T]) bool {
	if other.IsEmpty() {
		return false
	}
	return iv.min <= other.min && other.max <= iv.max
}

// Intersects reports whether iv and other share any values.
func (iv Interval[T]) Intersects(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	return iv.max > other.min && other.max > iv.min
}

// Intersection returns the overlap of iv and other, and whether that
// overlap is non-empty.
func (iv Interval[T]) Intersection(other Interval[T]) (Interval[T], bool) {
	if !iv.Intersects(other) {
		return Interval[T]{}, false
	}
	lo := iv.min
	if other.min > lo {
		lo = other.min
	}
	hi := iv.max
	if other.max < hi {
		hi = other.max
	}
	return Interval[T]{min: lo, max: hi}, true
}

// Difference returns the portion of iv below other (low) and the portion
// of iv above other (high); either may be empty. Equivalent to iv minus
// other when other may carve a hole out of the middle of iv.
func (iv Interval[T]) Difference(other Interval[T]) (low, high Interval[T]) {
	lowMax := iv.max
	if other.min < lowMax {
		lowMax = other.min
	}
	low = Interval[T]{min: iv.min, max: lowMax}

	highMin := iv.min
	if other.max > highMin {
		highMin = other.max
	}
	high = Interval[T]{min: highMin, max: iv.max}
	return low, high
}

// Equal reports whether iv and other have the same bounds. Two empty
// intervals with different bounds are still considered unequal by this
// method; IntervalSet never stores empty intervals, so this distinction
// only matters for bare Interval values compared directly.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.min == other.min && iv.max == other.max
}
