package set

import (
	"errors"
	"fmt"
)

// ErrCast is reported by a CastIterator when an element does not have
// the requested type.
var ErrCast = errors.New("set: element does not have the requested type")

// CastView adapts a set's elements to type R. Building the view never
// fails and never walks the source; the check is deferred to iteration,
// which stops with ErrCast at the first element that is not an R.
type CastView[R any] struct {
	src func() Iterator[any]
}

// Cast returns a view of s with elements asserted to R at iteration
// time. The view reads through to s: elements added or removed after
// the call are seen by iterators created later.
func Cast[R any, E comparable](s *AdaptiveSet[E]) *CastView[R] {
	return &CastView[R]{
		src: func() Iterator[any] {
			return boxedIterator[E]{it: s.Iterator()}
		},
	}
}

// boxedIterator widens an element iterator to Iterator[any].
type boxedIterator[E any] struct {
	it Iterator[E]
}

func (b boxedIterator[E]) Next() (any, bool) {
	e, ok := b.it.Next()
	if !ok {
		return nil, false
	}
	return e, true
}

// Iterator starts a new walk over the view.
func (v *CastView[R]) Iterator() *CastIterator[R] {
	return &CastIterator[R]{src: v.src()}
}

// Slice collects the whole view, or fails with ErrCast if any element
// does not have type R.
func (v *CastView[R]) Slice() ([]R, error) {
	var out []R
	it := v.Iterator()
	for it.Next() {
		out = append(out, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CastIterator walks a CastView scanner style: Next advances and
// reports whether a value is available, Value returns it, Err reports
// the cast failure that stopped the walk, if any.
type CastIterator[R any] struct {
	src Iterator[any]
	cur R
	err error
}

func (it *CastIterator[R]) Next() bool {
	if it.err != nil {
		return false
	}
	e, ok := it.src.Next()
	if !ok {
		return false
	}
	r, ok := e.(R)
	if !ok {
		it.err = fmt.Errorf("%w: %T", ErrCast, e)
		return false
	}
	it.cur = r
	return true
}

func (it *CastIterator[R]) Value() R {
	return it.cur
}

func (it *CastIterator[R]) Err() error {
	return it.err
}
