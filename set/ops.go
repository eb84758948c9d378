package set

import (
	"fmt"
	"strings"
)

// AddAll inserts every item in order. Insertion order matters only in
// that it decides which slots array mode elements land in.
func (s *AdaptiveSet[E]) AddAll(items ...E) {
	for _, e := range items {
		s.Add(e)
	}
}

// RemoveAll deletes every item in order.
func (s *AdaptiveSet[E]) RemoveAll(items ...E) {
	for _, e := range items {
		s.Remove(e)
	}
}

// RemoveWhere deletes every element for which pred returns true,
// visiting elements in iteration order. The mode never changes except
// single to empty; an array buffer left with no live elements stays in
// array mode.
func (s *AdaptiveSet[E]) RemoveWhere(pred func(E) bool) {
	switch s.mode {
	case modeSingle:
		if pred(s.one) {
			var zero E
			s.one = zero
			s.mode = modeEmpty
		}

	case modeArray:
		for i := range s.arr.buf {
			if s.arr.buf[i].live && pred(s.arr.buf[i].elem) {
				s.arr.buf[i] = slot[E]{}
				s.arr.count--
			}
		}

	case modeHash:
		s.hash.RemoveWhere(pred)
	}
}

// RetainWhere deletes every element for which pred returns false.
func (s *AdaptiveSet[E]) RetainWhere(pred func(E) bool) {
	s.RemoveWhere(func(e E) bool { return !pred(e) })
}

// Union returns a new AdaptiveSet holding every element of s and other.
// Neither operand is mutated.
func (s *AdaptiveSet[E]) Union(other Set[E]) *AdaptiveSet[E] {
	out := s.Clone()
	it := other.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out.Add(e)
	}
	return out
}

// Intersection returns a new AdaptiveSet holding the elements of s that
// are also in other.
func (s *AdaptiveSet[E]) Intersection(other Set[E]) *AdaptiveSet[E] {
	out := &AdaptiveSet[E]{}
	it := s.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if other.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

// Difference returns a new AdaptiveSet holding the elements of s that
// are not in other.
func (s *AdaptiveSet[E]) Difference(other Set[E]) *AdaptiveSet[E] {
	out := &AdaptiveSet[E]{}
	it := s.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if !other.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

// Clone returns an independent copy sharing no storage with s. The copy
// keeps the same representation: single and empty copy by value, the
// array buffer is copied whole, hash mode clones the backing table.
func (s *AdaptiveSet[E]) Clone() *AdaptiveSet[E] {
	out := &AdaptiveSet[E]{mode: s.mode, one: s.one}
	switch s.mode {
	case modeArray:
		arr := *s.arr
		out.arr = &arr
	case modeHash:
		out.hash = s.hash.Clone()
	}
	return out
}

// ContainsAll checks if every element of other is in this set.
func (s *AdaptiveSet[E]) ContainsAll(other Set[E]) bool {
	return containsAll[E](s, other)
}

// Equals compares the set against another set.
func (s *AdaptiveSet[E]) Equals(other Set[E]) bool {
	return setEquals[E](s, other)
}

// Slice returns the elements as a slice, in iteration order.
func (s *AdaptiveSet[E]) Slice() []E {
	return sliceOf[E](s)
}

func (s *AdaptiveSet[E]) String() string {
	parts := make([]string, 0, s.Len())
	it := s.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		parts = append(parts, fmt.Sprint(e))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
