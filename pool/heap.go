// File: pool/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hosted allocation provider backed by the Go heap.

package pool

import (
	"reflect"
	"unsafe"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/layout"
	"github.com/momentics/freestd/internal/logger"
)

// HeapAllocator serves blocks from the Go heap. Released blocks are left to
// the collector; the allocator only keeps the books. An optional byte limit
// turns exhaustion into a recoverable ErrAllocFailed instead of a runtime abort.
type HeapAllocator struct {
	limit int64
	stats counters
}

// NewHeapAllocator creates a heap provider. limit caps the live bytes it will
// hand out; 0 means unlimited.
func NewHeapAllocator(limit int64) *HeapAllocator {
	return &HeapAllocator{limit: limit}
}

// Allocate returns size bytes aligned to align.
func (h *HeapAllocator) Allocate(size, align int) ([]byte, error) {
	if size <= 0 || !layout.IsPow2(align) {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "heap: bad allocation request").
			WithContext("size", size).WithContext("align", align)
	}
	if err := h.claim(size); err != nil {
		return nil, err
	}
	b := make([]byte, size)
	if uintptr(unsafe.Pointer(unsafe.SliceData(b)))%uintptr(align) != 0 {
		// Over-allocate and slide to the next aligned address.
		padded := make([]byte, size+align)
		base := uintptr(unsafe.Pointer(unsafe.SliceData(padded)))
		shift := int((uintptr(align) - base%uintptr(align)) % uintptr(align))
		b = padded[shift : shift+size : shift+size]
	}
	h.stats.totalAlloc.Add(1)
	h.stats.inUse.Add(1)
	return b, nil
}

// AllocateScanned returns a block the collector scans as count values of elem.
func (h *HeapAllocator) AllocateScanned(elem reflect.Type, count int) ([]byte, error) {
	if elem == nil || count <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "heap: bad scanned request").
			WithContext("count", count)
	}
	size, ok := layout.MulOverflowSafe(count, int(elem.Size()))
	if !ok {
		return nil, api.NewError(api.ErrCodeLengthOverflow, "heap: block size overflows").
			WithContext("count", count).WithContext("elem", elem.String())
	}
	if size == 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "heap: zero-size element").
			WithContext("elem", elem.String())
	}
	if err := h.claim(size); err != nil {
		return nil, err
	}
	sv := reflect.MakeSlice(reflect.SliceOf(elem), count, count)
	h.stats.totalAlloc.Add(1)
	h.stats.inUse.Add(1)
	return unsafe.Slice((*byte)(sv.UnsafePointer()), size), nil
}

// Deallocate accounts for the release; the memory itself is reclaimed by the collector.
func (h *HeapAllocator) Deallocate(block []byte) error {
	if len(block) == 0 {
		return api.NewError(api.ErrCodeBadBlock, "heap: empty block")
	}
	h.stats.onFree(len(block))
	return nil
}

// Stats returns a snapshot of the allocator counters.
func (h *HeapAllocator) Stats() api.AllocStats { return h.stats.snapshot("") }

func (h *HeapAllocator) claim(size int) error {
	if h.limit <= 0 {
		h.stats.inUseBytes.Add(int64(size))
		return nil
	}
	if !h.stats.reserve(size, h.limit) {
		h.stats.onFail()
		logger.L().Warn("heap allocation over limit", "size", size, "limit", h.limit)
		return api.NewError(api.ErrCodeAllocFailed, "heap: limit exceeded").
			WithContext("size", size).WithContext("limit", h.limit)
	}
	return nil
}

var _ api.ScanningAllocator = (*HeapAllocator)(nil)
