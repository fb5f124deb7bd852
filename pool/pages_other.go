//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

// File: pool/pages_other.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for hosts without an anonymous mapping API: pages come from the heap.

package pool

import "os"

func hostPageSize() int { return os.Getpagesize() }

func mapPages(length int) ([]byte, error) {
	return make([]byte, length), nil
}

func unmapPages([]byte) error { return nil }
