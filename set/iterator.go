package set

type exhausted[E any] struct{}

func (exhausted[E]) Next() (E, bool) {
	var zero E
	return zero, false
}

type singleIterator[E any] struct {
	elem E
	done bool
}

func (it *singleIterator[E]) Next() (E, bool) {
	if it.done {
		var zero E
		return zero, false
	}
	it.done = true
	return it.elem, true
}

// arrayIterator walks the buffer by position, skipping dead slots, and
// stops after yielding the live count captured at construction even if
// dead slots trail the last element it saw.
type arrayIterator[E comparable] struct {
	arr       *arrayRep[E]
	pos       int
	remaining int
}

func (it *arrayIterator[E]) Next() (E, bool) {
	for it.remaining > 0 && it.pos < slotCapacity {
		sl := &it.arr.buf[it.pos]
		it.pos++
		if sl.live {
			it.remaining--
			return sl.elem, true
		}
	}
	var zero E
	return zero, false
}
