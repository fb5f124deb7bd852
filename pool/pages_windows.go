//go:build windows

// File: pool/pages_windows.go
// Author: momentics <momentics@gmail.com>
//
// Committed read/write regions via VirtualAlloc.

package pool

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// x/sys/windows has no GetSystemInfo wrapper; the runtime reports the same
// dwPageSize through os.Getpagesize.
func hostPageSize() int { return os.Getpagesize() }

func mapPages(length int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(length),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length), nil
}

func unmapPages(m []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(m))), 0, windows.MEM_RELEASE)
}
