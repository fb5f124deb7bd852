// File: pool/pages.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral page pool. Concrete mapping primitives are selected at
// build time in pages_unix.go, pages_windows.go and pages_other.go.

package pool

import (
	"sync"
	"unsafe"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/layout"
	"github.com/momentics/freestd/internal/logger"
)

// DefaultTag is the pool tag used when none is configured.
const DefaultTag = "Fstd"

// PageAllocator is a tagged, non-paged style pool: every block is its own
// anonymous mapping, rounded up to whole pages. Memory handed out here is not
// scanned by the Go collector, so only pointer-free element types may live in it.
type PageAllocator struct {
	tag      string
	pageSize int

	mu     sync.Mutex
	blocks map[uintptr][]byte // base address -> full mapping

	stats counters
}

// NewPageAllocator creates a page pool identified by a 4-byte tag.
func NewPageAllocator(tag string) (*PageAllocator, error) {
	if len(tag) != 4 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pages: tag must be 4 bytes").
			WithContext("tag", tag)
	}
	return &PageAllocator{
		tag:      tag,
		pageSize: hostPageSize(),
		blocks:   make(map[uintptr][]byte),
	}, nil
}

// Tag returns the pool tag.
func (p *PageAllocator) Tag() string { return p.tag }

// PageSize returns the granularity of every mapping.
func (p *PageAllocator) PageSize() int { return p.pageSize }

// Allocate maps enough pages for size bytes. Mappings are page aligned, which
// satisfies any natural alignment up to the page size.
func (p *PageAllocator) Allocate(size, align int) ([]byte, error) {
	if size <= 0 || !layout.IsPow2(align) || align > p.pageSize {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pages: bad allocation request").
			WithContext("size", size).WithContext("align", align).WithContext("tag", p.tag)
	}
	length, ok := layout.AlignUp(size, p.pageSize)
	if !ok {
		p.stats.onFail()
		return nil, api.NewError(api.ErrCodeLengthOverflow, "pages: mapping size overflows").
			WithContext("size", size)
	}
	m, err := mapPages(length)
	if err != nil {
		p.stats.onFail()
		logger.L().Warn("page mapping failed", "tag", p.tag, "length", length, "err", err)
		return nil, api.NewError(api.ErrCodeAllocFailed, "pages: mapping failed").
			WithContext("length", length).WithContext("tag", p.tag).WithCause(err)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(m)))
	p.mu.Lock()
	p.blocks[base] = m
	p.mu.Unlock()
	p.stats.onAlloc(size)
	logger.L().Debug("pages mapped", "tag", p.tag, "length", length, "base", base)
	return m[:size:size], nil
}

// Deallocate unmaps a block returned by Allocate. Unknown or already released
// blocks yield ErrBadBlock.
func (p *PageAllocator) Deallocate(block []byte) error {
	if len(block) == 0 {
		return api.NewError(api.ErrCodeBadBlock, "pages: empty block").WithContext("tag", p.tag)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	p.mu.Lock()
	m, ok := p.blocks[base]
	if ok {
		delete(p.blocks, base)
	}
	p.mu.Unlock()
	if !ok {
		return api.NewError(api.ErrCodeBadBlock, "pages: block not owned").
			WithContext("base", base).WithContext("tag", p.tag)
	}
	if err := unmapPages(m); err != nil {
		logger.L().Warn("page unmapping failed", "tag", p.tag, "base", base, "err", err)
		return api.NewError(api.ErrCodeInternal, "pages: unmapping failed").WithCause(err)
	}
	p.stats.onFree(len(block))
	logger.L().Debug("pages unmapped", "tag", p.tag, "length", len(m), "base", base)
	return nil
}

// Live returns the number of mappings currently held.
func (p *PageAllocator) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.blocks)
}

// Stats returns a snapshot of the pool counters.
func (p *PageAllocator) Stats() api.AllocStats { return p.stats.snapshot(p.tag) }

var _ api.Allocator = (*PageAllocator)(nil)
