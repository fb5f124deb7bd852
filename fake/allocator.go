// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocation provider for testing: failure injection, leak and
// double-release accounting, and a bounded event history.

package fake

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/eapache/queue"
	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/pool"
)

// historyCap bounds the event log kept for diagnostics.
const historyCap = 64

// Event is one recorded allocator call.
type Event struct {
	Op   string // "alloc", "alloc-scanned", "free"
	Size int
	Err  error
}

// Allocator serves heap memory and records every call. It can be told to
// fail after a number of successful allocations.
type Allocator struct {
	mu        sync.Mutex
	heap      *pool.HeapAllocator
	failAfter int // remaining successes before failing; <0 never fails
	allocs    int
	frees     int
	live      map[uintptr]int
	events    *queue.Queue
}

// NewAllocator creates a fake provider that never fails.
func NewAllocator() *Allocator {
	return &Allocator{
		heap:      pool.NewHeapAllocator(0),
		failAfter: -1,
		live:      make(map[uintptr]int),
		events:    queue.New(),
	}
}

// FailAfter lets the next n allocations succeed and fails every one after.
func (a *Allocator) FailAfter(n int) {
	a.mu.Lock()
	a.failAfter = n
	a.mu.Unlock()
}

// FailNever disables failure injection.
func (a *Allocator) FailNever() { a.FailAfter(-1) }

// Allocate implements api.Allocator.
func (a *Allocator) Allocate(size, align int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.injected(size); err != nil {
		a.record(Event{Op: "alloc", Size: size, Err: err})
		return nil, err
	}
	b, err := a.heap.Allocate(size, align)
	a.track(b, err)
	a.record(Event{Op: "alloc", Size: size, Err: err})
	return b, err
}

// AllocateScanned implements api.ScanningAllocator.
func (a *Allocator) AllocateScanned(elem reflect.Type, count int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	size := count * int(elem.Size())
	if err := a.injected(size); err != nil {
		a.record(Event{Op: "alloc-scanned", Size: size, Err: err})
		return nil, err
	}
	b, err := a.heap.AllocateScanned(elem, count)
	a.track(b, err)
	a.record(Event{Op: "alloc-scanned", Size: size, Err: err})
	return b, err
}

// Deallocate implements api.Allocator. Unknown or repeated releases yield ErrBadBlock.
func (a *Allocator) Deallocate(block []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	base := baseOf(block)
	size, ok := a.live[base]
	if !ok || len(block) == 0 {
		err := api.NewError(api.ErrCodeBadBlock, "fake: block not live").WithContext("base", base)
		a.record(Event{Op: "free", Size: len(block), Err: err})
		return err
	}
	delete(a.live, base)
	a.frees++
	a.record(Event{Op: "free", Size: size})
	return a.heap.Deallocate(block)
}

// Live returns the number of blocks allocated and not yet released.
func (a *Allocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Allocs returns the number of successful allocations.
func (a *Allocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// Frees returns the number of successful releases.
func (a *Allocator) Frees() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frees
}

// Events returns the recorded history, oldest first.
func (a *Allocator) Events() []Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Event, 0, a.events.Length())
	for i := 0; i < a.events.Length(); i++ {
		out = append(out, a.events.Get(i).(Event))
	}
	return out
}

// Stats implements api.StatsProvider.
func (a *Allocator) Stats() api.AllocStats { return a.heap.Stats() }

// Unscanned returns a view of a that cannot host pointer-carrying element types,
// mimicking a page pool while keeping the fake's bookkeeping.
func (a *Allocator) Unscanned() api.Allocator { return unscanned{a} }

type unscanned struct{ a *Allocator }

func (u unscanned) Allocate(size, align int) ([]byte, error) { return u.a.Allocate(size, align) }
func (u unscanned) Deallocate(block []byte) error           { return u.a.Deallocate(block) }

func (a *Allocator) injected(size int) error {
	if a.failAfter < 0 {
		return nil
	}
	if a.failAfter == 0 {
		return api.NewError(api.ErrCodeAllocFailed, "fake: injected failure").WithContext("size", size)
	}
	a.failAfter--
	return nil
}

func (a *Allocator) track(b []byte, err error) {
	if err != nil {
		return
	}
	a.allocs++
	a.live[baseOf(b)] = len(b)
}

func (a *Allocator) record(e Event) {
	if a.events.Length() == historyCap {
		a.events.Remove()
	}
	a.events.Add(e)
}

func baseOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

var (
	_ api.ScanningAllocator = (*Allocator)(nil)
	_ api.StatsProvider     = (*Allocator)(nil)
)
