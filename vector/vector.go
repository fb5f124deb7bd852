// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"github.com/momentics/freestd/algo"
	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/layout"
	"github.com/momentics/freestd/pool"
)

// Vector is a contiguous, growable sequence of T backed by provider memory.
// The zero value is not ready for use; build one with New or a sibling constructor.
type Vector[T any] struct {
	buf   storage[T]
	size  int
	gen   uint64
	alloc api.Allocator
	lay   layout.Layout
	tr    traits
	ctor  func() T
}

// Option configures a Vector at construction.
type Option func(*options)

type options struct {
	alloc api.Allocator
	ctor  any
}

// WithAllocator backs the vector with a instead of pool.Default().
func WithAllocator(a api.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithDefault sets the constructor used wherever an element is default constructed.
func WithDefault[T any](fn func() T) Option {
	return func(o *options) { o.ctor = fn }
}

// New returns an empty vector. No storage is allocated.
func New[T any](opts ...Option) *Vector[T] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	v := &Vector[T]{
		alloc: o.alloc,
		lay:   layout.Of[T](),
		tr:    traitsOf[T](),
	}
	if v.alloc == nil {
		v.alloc = pool.Default()
	}
	if fn, ok := o.ctor.(func() T); ok {
		v.ctor = fn
	}
	return v
}

// NewSize returns a vector of n default-constructed elements with capacity n.
func NewSize[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initWith(n, v.makeDefault); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFill returns a vector of n copies of value with capacity n.
func NewFill[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initWith(n, func(int) (T, error) { return v.copyOf(&value) }); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFromSlice returns a vector holding copies of s, in order, with capacity len(s).
func NewFromSlice[T any](s []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initWith(len(s), func(i int) (T, error) { return v.copyOf(&s[i]) }); err != nil {
		return nil, err
	}
	return v, nil
}

// FromRange returns a vector holding copies of [first, last), in order, with
// capacity equal to the range length.
func FromRange[T any, P algo.Position[P, T]](first, last P, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initWith(first.Distance(last), rangeGen(v, first)); err != nil {
		return nil, err
	}
	return v, nil
}

// NewMoved returns a vector that took over src's storage. src is left empty.
// No allocation happens and no element is touched.
func NewMoved[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{lay: src.lay, tr: src.tr, ctor: src.ctor, alloc: src.alloc}
	v.take(src)
	return v
}

// Clone returns an independent deep copy with capacity equal to Len.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.alloc, lay: v.lay, tr: v.tr, ctor: v.ctor}
	if err := c.initWith(v.size, func(i int) (T, error) { return v.copyOf(&v.buf.slots[i]) }); err != nil {
		return nil, err
	}
	return c, nil
}

// Allocator returns the provider backing v's storage.
func (v *Vector[T]) Allocator() api.Allocator { return v.alloc }

// Release destroys every element and returns the block to the provider.
// The vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.buf.destroy(0, v.size, v.tr)
	v.buf.release(v.alloc)
	v.size = 0
	v.gen++
}

// CopyFrom replaces v's contents with copies of src's. Copying a vector onto
// itself is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	return v.assignWith(src.size, func(i int) (T, error) { return src.copyOf(&src.buf.slots[i]) })
}

// MoveFrom releases v's storage and adopts src's, leaving src empty.
// The provider travels with the block. Moving a vector onto itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.alloc = src.alloc
	v.take(src)
}

// Swap exchanges storage, size, capacity and provider with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.alloc, other.alloc = other.alloc, v.alloc
	v.gen++
	other.gen++
}

// Assign replaces the contents with n copies of value.
func (v *Vector[T]) Assign(n int, value T) error {
	return v.assignWith(n, func(int) (T, error) { return v.copyOf(&value) })
}

// AssignSlice replaces the contents with copies of s. s must not alias v's storage.
func (v *Vector[T]) AssignSlice(s []T) error {
	return v.assignWith(len(s), func(i int) (T, error) { return v.copyOf(&s[i]) })
}

// AssignRange replaces the contents of v with copies of [first, last).
// The range must not point into v.
func AssignRange[T any, P algo.Position[P, T]](v *Vector[T], first, last P) error {
	return v.assignWith(first.Distance(last), rangeGen(v, first))
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf.slots[i] != b.buf.slots[i] {
			return false
		}
	}
	return true
}

func (v *Vector[T]) take(src *Vector[T]) {
	v.buf, v.size = src.buf, src.size
	src.buf, src.size = storage[T]{}, 0
	v.gen++
	src.gen++
}

// initWith allocates exactly n slots and constructs all of them. v must be empty.
func (v *Vector[T]) initWith(n int, gen func(int) (T, error)) error {
	nb, err := allocStorage[T](v.alloc, v.lay, n)
	if err != nil {
		return err
	}
	if err := nb.construct(0, n, v.tr, gen); err != nil {
		nb.release(v.alloc)
		return err
	}
	v.buf, v.size = nb, n
	return nil
}

// assignWith replaces the contents with n generated elements. When elements
// clone, every new element is built before any old one is destroyed: in the
// spare tail when it fits, otherwise in a fresh block of the same capacity.
// Generation cannot fail for non-cloning types, so they are rebuilt in place.
func (v *Vector[T]) assignWith(n int, gen func(int) (T, error)) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "vector: negative count").WithContext("n", n)
	}
	c := v.buf.capacity()
	switch {
	case n > c || (v.tr.clones && n > c-v.size):
		nb, err := allocStorage[T](v.alloc, v.lay, max(n, c))
		if err != nil {
			return err
		}
		if err := nb.construct(0, n, v.tr, gen); err != nil {
			nb.release(v.alloc)
			return err
		}
		v.buf.destroy(0, v.size, v.tr)
		v.buf.release(v.alloc)
		v.buf = nb
	case v.tr.clones:
		if err := v.buf.construct(v.size, n, v.tr, gen); err != nil {
			return err
		}
		v.buf.destroy(0, v.size, v.tr)
		copy(v.buf.slots[:n], v.buf.slots[v.size:v.size+n])
		v.buf.forget(n, v.size+n)
	default:
		v.buf.destroy(0, v.size, v.tr)
		if err := v.buf.construct(0, n, v.tr, gen); err != nil {
			v.size = 0
			v.gen++
			return err
		}
	}
	v.size = n
	v.gen++
	return nil
}

func (v *Vector[T]) makeDefault(int) (T, error) {
	if v.ctor != nil {
		return v.ctor(), nil
	}
	var zero T
	return zero, nil
}

// copyOf produces a copy of *x with T's copy semantics.
func (v *Vector[T]) copyOf(x *T) (T, error) {
	if !v.tr.clones {
		return *x, nil
	}
	if c, ok := any(*x).(Cloner[T]); ok {
		return c.Clone()
	}
	return any(x).(Cloner[T]).Clone()
}

func rangeGen[T any, P algo.Position[P, T]](v *Vector[T], first P) func(int) (T, error) {
	return func(i int) (T, error) {
		x := first.Add(i).Value()
		return v.copyOf(&x)
	}
}
