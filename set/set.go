package set

// Set is the mutable set contract shared by every implementation in this
// package. Add and Remove report whether the set changed, mirroring the
// insert/delete semantics of the underlying representations.
type Set[E comparable] interface {
	// Len returns the number of elements in the set
	Len() int
	// Empty returns true if the set has no elements
	Empty() bool
	// Contains checks if e is in the set
	Contains(e E) bool
	// Add inserts e, reporting whether it was newly added
	Add(e E) bool
	// Remove deletes e, reporting whether it was present
	Remove(e E) bool
	// Clear removes every element
	Clear()
	// Iterator walks the elements of the set
	Iterator() Iterator[E]
	// ContainsAll checks if every element of other is in this set
	ContainsAll(other Set[E]) bool
	// Equals compares the set against another set
	Equals(other Set[E]) bool
	// Slice returns the elements as a slice
	Slice() []E
}

// Iterator yields elements one at a time until exhausted. Iterators are
// lazy, forward-only and not restartable; mutating the source set while
// an iterator from it is live is undefined.
type Iterator[E any] interface {
	Next() (E, bool)
}

func containsAll[E comparable](s, other Set[E]) bool {
	if other.Len() > s.Len() {
		return false
	}
	it := other.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

func setEquals[E comparable](s, other Set[E]) bool {
	return s.Len() == other.Len() && containsAll(s, other)
}

func sliceOf[E comparable](s Set[E]) []E {
	out := make([]E, 0, s.Len())
	it := s.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}
