//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

// File: pool/pages_unix.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous private mappings via mmap(2).

package pool

import "golang.org/x/sys/unix"

func hostPageSize() int { return unix.Getpagesize() }

func mapPages(length int) ([]byte, error) {
	return unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapPages(m []byte) error {
	return unix.Munmap(m)
}
