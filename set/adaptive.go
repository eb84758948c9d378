package set

// slotCapacity is the number of slots in the fixed array representation.
const slotCapacity = 8

type mode uint8

const (
	modeEmpty mode = iota
	modeSingle
	modeArray
	modeHash
)

// slot is one cell of the array buffer: either a live element or a dead
// slot left behind by a removal. A dead slot holds the zero value so
// removed elements do not keep references alive.
type slot[E comparable] struct {
	elem E
	live bool
}

type arrayRep[E comparable] struct {
	buf   [slotCapacity]slot[E]
	count int
}

// AdaptiveSet is a mutable set tuned for the common case of very few
// elements. It starts with no storage at all, then holds a single
// element inline, then an insertion-ordered buffer of slotCapacity
// slots, and finally escalates to a HashSet once the buffer fills with
// no reclaimable slots. Escalation is one-way: removals never demote
// the representation, only Clear returns the set to empty storage.
//
// The zero value is an empty set ready for use. Not safe for concurrent
// use.
type AdaptiveSet[E comparable] struct {
	mode mode
	one  E
	arr  *arrayRep[E]
	hash *HashSet[E]
}

var _ Set[int] = (*AdaptiveSet[int])(nil)

// New creates an AdaptiveSet holding the given items.
func New[E comparable](items ...E) *AdaptiveSet[E] {
	s := &AdaptiveSet[E]{}
	for _, e := range items {
		s.Add(e)
	}
	return s
}

// Add inserts e into the set. It returns true if e was newly added and
// false if it was already present.
func (s *AdaptiveSet[E]) Add(e E) bool {
	switch s.mode {
	case modeEmpty:
		s.one = e
		s.mode = modeSingle
		return true

	case modeSingle:
		if s.one == e {
			return false
		}
		arr := &arrayRep[E]{count: 2}
		arr.buf[0] = slot[E]{elem: s.one, live: true}
		arr.buf[1] = slot[E]{elem: e, live: true}
		var zero E
		s.one = zero
		s.arr = arr
		s.mode = modeArray
		return true

	case modeArray:
		added, full := s.arr.insert(e)
		if !full {
			return added
		}
		s.escalate(e)
		return true

	default: // modeHash
		return s.hash.Add(e)
	}
}

// escalate moves every live element of the array buffer, plus e, into a
// hash backed set. The set never leaves modeHash afterwards.
func (s *AdaptiveSet[E]) escalate(e E) {
	h := NewHashSet[E](2 * slotCapacity)
	for i := range s.arr.buf {
		if s.arr.buf[i].live {
			h.Add(s.arr.buf[i].elem)
		}
	}
	h.Add(e)
	s.arr = nil
	s.hash = h
	s.mode = modeHash
}

// Remove deletes e from the set. It returns true if e was present. In
// array mode the slot is left dead rather than compacted; the space is
// reclaimed by a later Add.
func (s *AdaptiveSet[E]) Remove(e E) bool {
	switch s.mode {
	case modeSingle:
		if s.one != e {
			return false
		}
		var zero E
		s.one = zero
		s.mode = modeEmpty
		return true

	case modeArray:
		return s.arr.remove(e)

	case modeHash:
		return s.hash.Remove(e)
	}
	return false
}

// Contains checks if e is in the set.
func (s *AdaptiveSet[E]) Contains(e E) bool {
	_, ok := s.Lookup(e)
	return ok
}

// Lookup returns the stored element equal to e, if any. For element
// types with identity beyond their compared value (pointers boxed in
// interfaces, for example) this surfaces the canonical instance the set
// holds.
func (s *AdaptiveSet[E]) Lookup(e E) (E, bool) {
	switch s.mode {
	case modeSingle:
		if s.one == e {
			return s.one, true
		}

	case modeArray:
		for i := range s.arr.buf {
			if s.arr.buf[i].live && s.arr.buf[i].elem == e {
				return s.arr.buf[i].elem, true
			}
		}

	case modeHash:
		return s.hash.Lookup(e)
	}
	var zero E
	return zero, false
}

// Len returns the number of elements in the set.
func (s *AdaptiveSet[E]) Len() int {
	switch s.mode {
	case modeSingle:
		return 1
	case modeArray:
		return s.arr.count
	case modeHash:
		return s.hash.Len()
	}
	return 0
}

// Empty returns true if the set has no elements.
func (s *AdaptiveSet[E]) Empty() bool {
	return s.Len() == 0
}

// Clear drops every element and returns the set to the empty
// representation, whatever mode it was in.
func (s *AdaptiveSet[E]) Clear() {
	var zero E
	s.one = zero
	s.arr = nil
	s.hash = nil
	s.mode = modeEmpty
}

// Iterator returns an iterator over the elements. The strategy is
// chosen once, from the current mode: single mode and array mode yield
// elements in insertion order, hash mode yields whatever order the
// backing table produces.
func (s *AdaptiveSet[E]) Iterator() Iterator[E] {
	switch s.mode {
	case modeSingle:
		return &singleIterator[E]{elem: s.one}
	case modeArray:
		return &arrayIterator[E]{arr: s.arr, remaining: s.arr.count}
	case modeHash:
		return s.hash.Iterator()
	}
	return exhausted[E]{}
}

// insert adds e to the buffer if absent. full reports that every slot
// holds a live element none of which equals e, meaning the caller must
// escalate. The scan tracks the final run of dead slots so that, when
// no slot is free past the last live element, the run can be compacted
// away without disturbing the relative order of live elements.
func (a *arrayRep[E]) insert(e E) (added, full bool) {
	runStart, runLen := 0, 0
	for i := 0; i < slotCapacity; i++ {
		if a.buf[i].live {
			if a.buf[i].elem == e {
				return false, false
			}
			continue
		}
		if runLen > 0 && runStart+runLen == i {
			runLen++
		} else {
			runStart, runLen = i, 1
		}
	}

	if runLen == 0 {
		return false, true
	}

	free := runStart
	if runStart+runLen != slotCapacity {
		// The final dead run sits before live elements; close the gap.
		free = compact(&a.buf, runStart, runLen)
	}
	a.buf[free] = slot[E]{elem: e, live: true}
	a.count++
	return true, false
}

func (a *arrayRep[E]) remove(e E) bool {
	for i := range a.buf {
		if a.buf[i].live && a.buf[i].elem == e {
			a.buf[i] = slot[E]{}
			a.count--
			return true
		}
	}
	return false
}
