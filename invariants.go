package ivset

// Valid reports whether s currently satisfies invariants I1–I4: every
// stored interval is non-empty, and consecutive intervals in iteration
// order are strictly ordered and non-adjacent (prev.Max < next.Min).
//
// Every exported mutator on IntervalSet is expected to leave Valid true;
// this method exists so tests (and debug builds of callers) can assert
// that directly instead of re-deriving it, per spec §7's "debug-time
// assertions at the end of each mutator."
func (s *IntervalSet[T]) Valid() bool {
	for i := 0; i < s.idx.size(); i++ {
		if s.idx.at(i).IsEmpty() {
			return false
		}
	}
	for i := 1; i < s.idx.size(); i++ {
		if !(s.idx.at(i-1).max < s.idx.at(i).min) {
			return false
		}
	}
	return true
}
