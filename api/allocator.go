// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocation provider contracts. Containers never talk to the host directly;
// every block they own comes from an Allocator injected at composition time.

package api

import "reflect"

// Allocator hands out raw, contiguous blocks and takes them back.
// Implementations must be safe for concurrent use: one provider is shared by
// every container in the process.
type Allocator interface {
	// Allocate returns a block of at least size bytes whose first byte is
	// aligned to align (a power of two). The contents are unspecified.
	Allocate(size, align int) ([]byte, error)

	// Deallocate releases a block previously returned by Allocate.
	// Releasing anything else, or releasing twice, is a caller error.
	Deallocate(block []byte) error
}

// ScanningAllocator is implemented by allocators able to hand out memory the
// Go garbage collector scans for pointers. Element types that contain Go
// pointers may only be stored in blocks obtained this way.
type ScanningAllocator interface {
	Allocator

	// AllocateScanned returns a block sized for count values of elem.
	// The block is released through Deallocate.
	AllocateScanned(elem reflect.Type, count int) ([]byte, error)
}

// StatsProvider is implemented by allocators that keep accounting.
type StatsProvider interface {
	Stats() AllocStats
}
