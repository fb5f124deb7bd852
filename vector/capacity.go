package vector

import (
	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/layout"
)

// Reserve grows capacity to exactly n when n exceeds Cap; otherwise it does
// nothing. Elements are relocated in order and keep their values.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.capacity() {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates to exactly Len slots, releasing the block entirely
// when the vector is empty. Capacity never increases.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == v.buf.capacity() {
		return nil
	}
	if v.size == 0 {
		v.buf.release(v.alloc)
		v.gen++
		return nil
	}
	return v.reallocate(v.size)
}

// Clear destroys every element. Capacity is retained.
func (v *Vector[T]) Clear() {
	v.buf.destroy(0, v.size, v.tr)
	v.size = 0
	v.gen++
}

// Resize sets Len to n, default-constructing new elements or destroying
// trailing ones.
func (v *Vector[T]) Resize(n int) error {
	return v.resizeWith(n, v.makeDefault)
}

// ResizeFill sets Len to n, filling new slots with copies of value.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	return v.resizeWith(n, func(int) (T, error) { return v.copyOf(&value) })
}

func (v *Vector[T]) resizeWith(n int, gen func(int) (T, error)) error {
	switch {
	case n < 0:
		return api.NewError(api.ErrCodeInvalidArgument, "vector: negative size").WithContext("n", n)
	case n <= v.size:
		v.buf.destroy(n, v.size, v.tr)
		v.size = n
		v.gen++
		return nil
	default:
		_, err := v.insertWith(v.size, n-v.size, gen)
		return err
	}
}

// grownCapacity applies the growth policy for adding add elements.
func (v *Vector[T]) grownCapacity(add int) (int, error) {
	need, ok := layout.AddOverflowSafe(v.size, add)
	if !ok {
		return 0, api.NewError(api.ErrCodeLengthOverflow, "vector: length overflows").
			WithContext("size", v.size).WithContext("add", add)
	}
	c := v.buf.capacity()
	if need <= c {
		return c, nil
	}
	next := 1
	if c > 0 {
		if doubled, ok := layout.MulOverflowSafe(c, 2); ok {
			next = doubled
		} else {
			next = need
		}
	}
	return max(next, need), nil
}

// reallocate moves the live elements into a fresh block of exactly n slots.
func (v *Vector[T]) reallocate(n int) error {
	nb, err := allocStorage[T](v.alloc, v.lay, n)
	if err != nil {
		return err
	}
	nb.relocate(0, &v.buf, 0, v.size)
	v.buf.release(v.alloc)
	v.buf = nb
	v.gen++
	return nil
}
