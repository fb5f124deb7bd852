package vector

import (
	"slices"

	"github.com/momentics/freestd/algo"
	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/layout"
)

// Insert places a copy of x before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos Iterator[T], x T) (Iterator[T], error) {
	return v.insertAt(pos.pos, 1, func(int) (T, error) { return v.copyOf(&x) })
}

// InsertN places n copies of x before pos and returns an iterator to the first.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, x T) (Iterator[T], error) {
	if n < 0 {
		return pos, api.NewError(api.ErrCodeInvalidArgument, "vector: negative count").WithContext("n", n)
	}
	return v.insertAt(pos.pos, n, func(int) (T, error) { return v.copyOf(&x) })
}

// InsertSlice places copies of s before pos. s may alias v's storage.
func (v *Vector[T]) InsertSlice(pos Iterator[T], s []T) (Iterator[T], error) {
	return v.insertAt(pos.pos, len(s), func(i int) (T, error) { return v.copyOf(&s[i]) })
}

// InsertRange places copies of [first, last) before pos in v.
func InsertRange[T any, P algo.Position[P, T]](v *Vector[T], pos Iterator[T], first, last P) (Iterator[T], error) {
	n := first.Distance(last)
	if n < 0 {
		return pos, api.NewError(api.ErrCodeInvalidArgument, "vector: inverted range").WithContext("n", n)
	}
	return v.insertAt(pos.pos, n, rangeGen(v, first))
}

// InsertMove moves *x into the slot before pos without copying it. On success
// *x is reset to the zero value; on failure it is left untouched. x may point
// into v: the value is taken before any element shifts.
func (v *Vector[T]) InsertMove(pos Iterator[T], x *T) (Iterator[T], error) {
	return v.insertAt(pos.pos, 1, func(int) (T, error) {
		val := *x
		var zero T
		*x = zero
		return val, nil
	})
}

// Emplace constructs an element in place before pos from build.
func (v *Vector[T]) Emplace(pos Iterator[T], build func() (T, error)) (Iterator[T], error) {
	return v.insertAt(pos.pos, 1, func(int) (T, error) { return build() })
}

// PushBack appends a copy of x.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.insertWith(v.size, 1, func(int) (T, error) { return v.copyOf(&x) })
	return err
}

// EmplaceBack appends an element constructed by build.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) error {
	_, err := v.insertWith(v.size, 1, func(int) (T, error) { return build() })
	return err
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return api.NewError(api.ErrCodeEmpty, "vector: pop from empty vector")
	}
	v.buf.destroy(v.size-1, v.size, v.tr)
	v.size--
	v.gen++
	return nil
}

// Erase destroys the element at pos, closes the gap and returns an iterator
// to the element now at that index (End when the tail was removed).
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Add(1))
}

// EraseRange destroys [first, last) and shifts the suffix left. Capacity is unchanged.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	lo, hi := first.pos, last.pos
	if lo == hi {
		return v.IterAt(lo)
	}
	v.buf.destroy(lo, hi, v.tr)
	copy(v.buf.slots[lo:], v.buf.slots[hi:v.size])
	n := hi - lo
	v.buf.forget(v.size-n, v.size)
	v.size -= n
	v.gen++
	return v.IterAt(lo)
}

func (v *Vector[T]) insertAt(at, n int, gen func(int) (T, error)) (Iterator[T], error) {
	at, err := v.insertWith(at, n, gen)
	return v.IterAt(at), err
}

// insertWith opens n slots before index at and fills them from gen.
//
// With spare capacity the new elements are built in the raw tail first and
// then rotated into place, so a failing gen leaves every live element where
// it was. Without it, a new block is built around the inserted run and the
// old block is released only after everything has been placed.
func (v *Vector[T]) insertWith(at, n int, gen func(int) (T, error)) (int, error) {
	if n == 0 {
		return at, nil
	}
	end, ok := layout.AddOverflowSafe(v.size, n)
	if !ok {
		return at, api.NewError(api.ErrCodeLengthOverflow, "vector: length overflows").
			WithContext("size", v.size).WithContext("add", n)
	}

	if end <= v.buf.capacity() {
		if err := v.buf.construct(v.size, n, v.tr, gen); err != nil {
			return at, err
		}
		if at < v.size {
			s := v.buf.slots
			slices.Reverse(s[at:v.size])
			slices.Reverse(s[v.size:end])
			slices.Reverse(s[at:end])
		}
		v.size = end
		v.gen++
		return at, nil
	}

	newCap, err := v.grownCapacity(n)
	if err != nil {
		return at, err
	}
	nb, err := allocStorage[T](v.alloc, v.lay, newCap)
	if err != nil {
		return at, err
	}
	if err := nb.construct(at, n, v.tr, gen); err != nil {
		nb.release(v.alloc)
		return at, err
	}
	nb.relocate(0, &v.buf, 0, at)
	nb.relocate(at+n, &v.buf, at, v.size-at)
	v.buf.release(v.alloc)
	v.buf = nb
	v.size = end
	v.gen++
	return at, nil
}
