package vector

import (
	"unsafe"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/layout"
	"github.com/momentics/freestd/internal/logger"
)

// storage is a raw block carved into element slots. It has no notion of
// which slots are live; the owning Vector tracks that with its size.
type storage[T any] struct {
	raw   []byte // block as returned by the allocator, nil for empty or zero-size elements
	slots []T    // len(slots) is the capacity; nil iff capacity is zero
}

func (s *storage[T]) capacity() int { return len(s.slots) }

// allocStorage obtains a block for exactly n elements.
func allocStorage[T any](a api.Allocator, l layout.Layout, n int) (storage[T], error) {
	if n < 0 {
		return storage[T]{}, api.NewError(api.ErrCodeInvalidArgument, "vector: negative capacity").WithContext("n", n)
	}
	if n == 0 {
		return storage[T]{}, nil
	}
	size, ok := l.Bytes(n)
	if !ok {
		return storage[T]{}, api.NewError(api.ErrCodeLengthOverflow, "vector: block size overflows").
			WithContext("n", n).WithContext("elem", l.Type.String())
	}
	if size == 0 {
		// Zero-size elements occupy no memory; nothing to ask the provider for.
		return storage[T]{slots: make([]T, n)}, nil
	}

	var (
		raw []byte
		err error
	)
	if l.Pointers {
		sa, ok := a.(api.ScanningAllocator)
		if !ok {
			return storage[T]{}, api.NewError(api.ErrCodeUnsupportedLayout, "vector: allocator cannot hold pointer elements").
				WithContext("elem", l.Type.String())
		}
		raw, err = sa.AllocateScanned(l.Type, n)
	} else {
		raw, err = a.Allocate(size, int(l.Align))
	}
	if err != nil {
		return storage[T]{}, err
	}

	base := unsafe.Pointer(unsafe.SliceData(raw))
	if len(raw) < size || uintptr(base)%l.Align != 0 {
		_ = a.Deallocate(raw)
		return storage[T]{}, api.NewError(api.ErrCodeBadBlock, "vector: allocator returned an unusable block").
			WithContext("len", len(raw)).WithContext("want", size)
	}
	return storage[T]{raw: raw, slots: unsafe.Slice((*T)(base), n)}, nil
}

// release returns the block to a. Slots must already be destroyed or relocated.
func (s *storage[T]) release(a api.Allocator) {
	if s.raw != nil {
		if err := a.Deallocate(s.raw); err != nil {
			logger.L().Warn("vector: block release failed", "len", len(s.raw), "err", err)
		}
	}
	*s = storage[T]{}
}

// construct fills slots [off, off+n) from gen. On failure the slots built so
// far are destroyed and the error is returned.
func (s *storage[T]) construct(off, n int, tr traits, gen func(i int) (T, error)) error {
	for i := 0; i < n; i++ {
		x, err := gen(i)
		if err != nil {
			s.destroy(off, off+i, tr)
			return err
		}
		s.slots[off+i] = x
	}
	return nil
}

// destroy ends the lifetime of slots [lo, hi).
func (s *storage[T]) destroy(lo, hi int, tr traits) {
	if tr.destroys {
		for i := lo; i < hi; i++ {
			destroyValue(&s.slots[i])
		}
	}
	clear(s.slots[lo:hi])
}

// forget zeroes slots [lo, hi) whose values were relocated elsewhere.
func (s *storage[T]) forget(lo, hi int) {
	clear(s.slots[lo:hi])
}

// relocate moves n elements from src[srcOff:] into s[dstOff:] and forgets the
// source slots. s and src must be distinct blocks.
func (s *storage[T]) relocate(dstOff int, src *storage[T], srcOff, n int) {
	if n == 0 {
		return
	}
	copy(s.slots[dstOff:dstOff+n], src.slots[srcOff:srcOff+n])
	src.forget(srcOff, srcOff+n)
}

func destroyValue[T any](p *T) {
	if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}
