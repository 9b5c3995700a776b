package ivset

import "cmp"

// Union adds every interval of other into s.
//
// Each element is folded in through Add, which already restores canonical
// form locally after every insertion, so the end result is exactly the
// bulk-insert-then-global-compact of spec §4.6, just expressed as a loop
// over the simpler single-element primitive instead of a second compaction
// pass over the whole index.
func (s *IntervalSet[T]) Union(other *IntervalSet[T]) {
	for i := 0; i < other.idx.size(); i++ {
		s.Add(other.idx.at(i))
	}
}

// findIntersectionCandidate locates the first interval of s that could
// possibly intersect other's first interval, backed off by one position
// when possible so a two-pointer walk starting there can't miss an overlap
// that begins slightly before other's first interval.
func (s *IntervalSet[T]) findIntersectionCandidate(other *IntervalSet[T]) int {
	if other.Empty() {
		return 0
	}
	it := s.idx.upperBound(other.idx.at(0))
	if it > 0 {
		it--
	}
	return it
}

// findNextIntersectingPair advances ia (into a) and ib (into b) until the
// intervals at those positions intersect, or one side is exhausted. Every
// interval of a skipped along the way (because it ends at or before b's
// current interval starts) is reported to onHole, if non-nil, before ia
// advances past it.
func findNextIntersectingPair[T cmp.Ordered](a, b *IntervalSet[T], ia, ib *int, onHole func(Interval[T])) bool {
	for *ia < a.idx.size() && *ib < b.idx.size() {
		mine := a.idx.at(*ia)
		theirs := b.idx.at(*ib)
		if mine.max <= theirs.min {
			if onHole != nil {
				onHole(mine)
			}
			*ia++
			continue
		}
		if theirs.max <= mine.min {
			*ib++
			continue
		}
		return true
	}
	return false
}

// Intersects reports whether s and other share any values.
func (s *IntervalSet[T]) Intersects(other *IntervalSet[T]) bool {
	if s.Empty() || other.Empty() {
		return false
	}
	if !s.SpanningInterval().Intersects(other.SpanningInterval()) {
		return false
	}
	ia, ib := s.findIntersectionCandidate(other), other.findIntersectionCandidate(s)
	return findNextIntersectingPair(s, other, &ia, &ib, nil)
}

// Intersection replaces s with the intersection of s and other.
//
// Both operands are already in canonical form (sorted, disjoint,
// non-adjacent), so a single two-pointer sweep over the two index slices
// produces the result already sorted and disjoint — no second compaction
// pass is needed. This realizes the same erase-holes two-pointer walk
// spec §4.9 describes (see findNextIntersectingPair, used by Intersects
// above for the boolean-only case); here the full result is wanted, not
// just "do they meet", so the sweep collects every overlap it passes over
// instead of returning at the first one.
func (s *IntervalSet[T]) Intersection(other *IntervalSet[T]) {
	if s.Empty() || other.Empty() {
		s.Clear()
		return
	}
	if !s.SpanningInterval().Intersects(other.SpanningInterval()) {
		s.Clear()
		return
	}

	var result []Interval[T]
	i, j := 0, 0
	for i < s.idx.size() && j < other.idx.size() {
		a := s.idx.at(i)
		b := other.idx.at(j)
		if overlap, ok := a.Intersection(b); ok {
			result = append(result, overlap)
		}
		switch {
		case a.max < b.max:
			i++
		case b.max < a.max:
			j++
		default:
			i++
			j++
		}
	}
	s.Assign(result)
}

// DifferenceInterval removes every value of iv from s.
func (s *IntervalSet[T]) DifferenceInterval(iv Interval[T]) {
	if iv.IsEmpty() || s.Empty() {
		return
	}
	if !s.SpanningInterval().Intersects(iv) {
		return
	}
	s.DifferenceSet(Single(iv))
}

// DifferenceRange removes every value in [min, max) from s.
func (s *IntervalSet[T]) DifferenceRange(min, max T) {
	s.DifferenceInterval(NewInterval(min, max))
}

// DifferenceSet replaces s with s minus other, keeping every interval (or
// partial interval) of s that doesn't overlap other untouched.
func (s *IntervalSet[T]) DifferenceSet(other *IntervalSet[T]) {
	if s.Empty() || other.Empty() {
		return
	}
	if !s.SpanningInterval().Intersects(other.SpanningInterval()) {
		return
	}

	var result []Interval[T]
	j := 0
	for i := 0; i < s.idx.size(); i++ {
		cur := s.idx.at(i)

		// Other's intervals are sorted and disjoint, and s's current
		// interval's Min only increases across iterations of i, so once
		// an other-interval is known to end at or before cur.min it can
		// never matter again.
		for j < other.idx.size() && other.idx.at(j).max <= cur.min {
			j++
		}

		k := j
		for k < other.idx.size() && other.idx.at(k).min < cur.max {
			low, high := cur.Difference(other.idx.at(k))
			if !low.IsEmpty() {
				result = append(result, low)
			}
			cur = high
			k++
		}
		if !cur.IsEmpty() {
			result = append(result, cur)
		}
	}
	s.Assign(result)
}

// Complement replaces s with [min, max) minus s — every value in the span
// not currently in s. This is an O(1) storage handoff: build [min, max) as
// a fresh set, subtract s from it, then swap s's storage for the result's.
func (s *IntervalSet[T]) Complement(min, max T) {
	full := Of(min, max)
	full.DifferenceSet(s)
	s.Swap(full)
}
