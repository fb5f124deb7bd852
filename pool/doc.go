// Package pool
// Author: momentics <momentics@gmail.com>
//
// Allocation providers for freestd containers.
// Implements the hosted heap backing, a kernel-style tagged page pool over
// anonymous mappings (mmap / VirtualAlloc), and a Guard applying the host's
// failure policy. All providers are safe for concurrent use and keep atomic
// accounting; see heap.go, pages.go and guard.go for implementation details.
package pool
