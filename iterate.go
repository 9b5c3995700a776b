package ivset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
)

// All returns a read-only ascending iterator over the set's intervals,
// following the iter.Seq convention. It is invalidated by any mutation of
// s performed while ranging over it.
func (s *IntervalSet[T]) All() iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		for i := 0; i < s.idx.size(); i++ {
			if !yield(s.idx.at(i)) {
				return
			}
		}
	}
}

// Backward returns a read-only descending iterator over the set's
// intervals.
func (s *IntervalSet[T]) Backward() iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		for i := s.idx.size() - 1; i >= 0; i-- {
			if !yield(s.idx.at(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the set's intervals in ascending order. The
// returned slice shares no storage with the set.
func (s *IntervalSet[T]) Slice() []Interval[T] {
	return lo.Map(s.idx.items, func(iv Interval[T], _ int) Interval[T] {
		return iv
	})
}

// Equal reports whether s and other store the same sequence of intervals.
// Because canonical form is unique (I3), this is equivalent to s and other
// representing the same mathematical set of values.
func (s *IntervalSet[T]) Equal(other *IntervalSet[T]) bool {
	if s.idx.size() != other.idx.size() {
		return false
	}
	for i := 0; i < s.idx.size(); i++ {
		if !s.idx.at(i).Equal(other.idx.at(i)) {
			return false
		}
	}
	return true
}

// String renders the set for debugging, e.g. "{ [1, 4) [10, 12) }". This
// is not a stable wire format.
func (s *IntervalSet[T]) String() string {
	if s.Empty() {
		return "{ }"
	}
	parts := lo.Map(s.idx.items, func(iv Interval[T], _ int) string {
		return fmt.Sprintf("[%v, %v)", iv.min, iv.max)
	})
	var b strings.Builder
	b.WriteString("{ ")
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(" }")
	return b.String()
}
