package ivset

import (
	"cmp"
	"slices"
)

// orderedIndex is the internal ordered, comparator-driven storage behind
// IntervalSet. It keeps a slice of intervals sorted under the LESS
// comparator from spec §4.2:
//
//	LESS(a, b)  ≡  a.min < b.min  ∨  (a.min == b.min ∧ a.max > b.max)
//
// i.e. primarily ascending by Min, with ties broken by descending Max. The
// retrieved pack has no ordered-map/btree dependency to reach for (none of
// the five example repos import one), so this follows spec §9's option
// (b): key by (min, -max) over an ordered structure — here, a slice kept
// sorted by binary search via the stdlib "slices" package, the same
// package contriboss-pubgrub-go leans on for its own interval-normalization
// code. Insert/erase are O(n); membership-style lookups are O(log n).
type orderedIndex[T cmp.Ordered] struct {
	items []Interval[T]
}

// compareKey implements the LESS comparator as a three-way compare, which
// is what slices.BinarySearchFunc expects.
func compareKey[T cmp.Ordered](a, b Interval[T]) int {
	if a.min < b.min {
		return -1
	}
	if a.min > b.min {
		return 1
	}
	// Same Min: descending Max, so the larger interval sorts first.
	if a.max > b.max {
		return -1
	}
	if a.max < b.max {
		return 1
	}
	return 0
}

func (idx *orderedIndex[T]) size() int { return len(idx.items) }

func (idx *orderedIndex[T]) at(i int) Interval[T] { return idx.items[i] }

// lowerBound returns the index of the first stored interval not LESS than
// key (i.e. the first one ordered at-or-after key).
func (idx *orderedIndex[T]) lowerBound(key Interval[T]) int {
	pos, _ := slices.BinarySearchFunc(idx.items, key, compareKey[T])
	return pos
}

// upperBound returns the index of the first stored interval strictly
// greater than key under the comparator.
func (idx *orderedIndex[T]) upperBound(key Interval[T]) int {
	pos, found := slices.BinarySearchFunc(idx.items, key, compareKey[T])
	if found {
		return pos + 1
	}
	return pos
}

// insert places iv in sorted position and reports whether it was actually
// inserted. It is not inserted when an interval with the identical (min,
// max) key is already present — the index has multiset-looking storage
// but set semantics at the key level, matching spec §4.4's
// "index.insert(interval)" contract.
func (idx *orderedIndex[T]) insert(iv Interval[T]) (pos int, inserted bool) {
	pos, found := slices.BinarySearchFunc(idx.items, iv, compareKey[T])
	if found {
		return pos, false
	}
	idx.items = slices.Insert(idx.items, pos, iv)
	return pos, true
}

// eraseRange removes the half-open index range [lo, hi).
func (idx *orderedIndex[T]) eraseRange(lo, hi int) {
	if lo >= hi {
		return
	}
	idx.items = slices.Delete(idx.items, lo, hi)
}

// eraseAt removes the single interval at position i.
func (idx *orderedIndex[T]) eraseAt(i int) {
	idx.eraseRange(i, i+1)
}

// insertAt places iv at a known position without re-searching — used by
// compact, which already knows exactly where the merged interval belongs.
func (idx *orderedIndex[T]) insertAt(i int, iv Interval[T]) {
	idx.items = slices.Insert(idx.items, i, iv)
}
