package vector

import (
	"iter"

	"github.com/momentics/freestd/api"
)

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of elements the current block holds without reallocating.
func (v *Vector[T]) Cap() int { return v.buf.capacity() }

// Empty reports whether Len is zero.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at i, or an error matching api.ErrOutOfRange when
// i is not in [0, Len). The vector is never modified.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, v.outOfRange(i)
	}
	return v.buf.slots[i], nil
}

// Ref returns a pointer to the element at i for in-place mutation, bounds checked.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, v.outOfRange(i)
	}
	return &v.buf.slots[i], nil
}

// Set overwrites the element at i, bounds checked. The previous value is destroyed.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return v.outOfRange(i)
	}
	v.buf.destroy(i, i+1, v.tr)
	v.buf.slots[i] = x
	return nil
}

// Index returns the element at i without a bounds contract: i must be in [0, Len).
func (v *Vector[T]) Index(i int) T { return v.buf.slots[:v.size][i] }

// Ptr returns a pointer to the element at i; i must be in [0, Len).
func (v *Vector[T]) Ptr(i int) *T { return &v.buf.slots[:v.size][i] }

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmpty, "vector: front of empty vector")
	}
	return v.buf.slots[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmpty, "vector: back of empty vector")
	}
	return v.buf.slots[v.size-1], nil
}

// Data returns the live elements as a slice sharing v's storage. The slice is
// invalidated by the same operations that invalidate iterators; its capacity
// is clipped so appending to it never writes into raw slots.
func (v *Vector[T]) Data() []T {
	if v.size == 0 {
		return nil
	}
	return v.buf.slots[:v.size:v.size]
}

// All iterates over index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) outOfRange(i int) error {
	return api.NewError(api.ErrCodeOutOfRange, "vector: index out of range").
		WithContext("index", i).WithContext("size", v.size)
}
