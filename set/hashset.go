package set

// HashSet is a general purpose hash backed set. AdaptiveSet delegates
// to it once escalated; it is also usable on its own when the expected
// size is large from the start.
type HashSet[E comparable] struct {
	data *HashTable[E, struct{}]
}

var _ Set[int] = (*HashSet[int])(nil)

// NewHashSet creates a new HashSet with the given initial table size.
func NewHashSet[E comparable](initSize int) *HashSet[E] {
	return &HashSet[E]{
		data: NewHashTable[E, struct{}](initSize),
	}
}

// Add inserts e into the set, reporting whether it was newly added.
func (s *HashSet[E]) Add(e E) bool {
	return s.data.Set(e, struct{}{})
}

// Remove deletes e from the set, reporting whether it was present.
func (s *HashSet[E]) Remove(e E) bool {
	return s.data.Delete(e)
}

// Contains checks if e is in the set.
func (s *HashSet[E]) Contains(e E) bool {
	_, ok := s.data.Get(e)
	return ok
}

// Lookup returns the stored element equal to e, if any.
func (s *HashSet[E]) Lookup(e E) (E, bool) {
	return s.data.LookupKey(e)
}

// Len returns the number of elements in the set.
func (s *HashSet[E]) Len() int {
	return s.data.Len()
}

// Empty returns true if the set has no elements.
func (s *HashSet[E]) Empty() bool {
	return s.data.Empty()
}

// Clear removes every element.
func (s *HashSet[E]) Clear() {
	s.data = NewHashTable[E, struct{}](defaultTableSize)
}

// Iterator walks the elements in the backing table's bucket order.
func (s *HashSet[E]) Iterator() Iterator[E] {
	return s.data.Keys()
}

// Clone returns an independent copy of the set.
func (s *HashSet[E]) Clone() *HashSet[E] {
	return &HashSet[E]{data: s.data.Clone()}
}

// RemoveWhere deletes every element for which pred returns true. The
// keys are snapshotted first so deletion does not race the bucket walk.
func (s *HashSet[E]) RemoveWhere(pred func(E) bool) {
	var doomed []E
	it := s.data.Keys()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if pred(e) {
			doomed = append(doomed, e)
		}
	}
	for _, e := range doomed {
		s.data.Delete(e)
	}
}

// ContainsAll checks if every element of other is in this set.
func (s *HashSet[E]) ContainsAll(other Set[E]) bool {
	return containsAll[E](s, other)
}

// Equals compares the set against another set.
func (s *HashSet[E]) Equals(other Set[E]) bool {
	return setEquals[E](s, other)
}

// Slice returns the elements as a slice.
func (s *HashSet[E]) Slice() []E {
	return sliceOf[E](s)
}
