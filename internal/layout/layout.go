// Package layout describes how element values occupy raw storage and guards
// the byte arithmetic used to size blocks.
package layout

import (
	"math"
	"reflect"
	"unsafe"
)

// Layout is the storage shape of one element type.
type Layout struct {
	Type     reflect.Type
	Size     uintptr
	Align    uintptr
	Pointers bool // values hold Go pointers and need collector-scanned memory
}

// Of returns the layout of T.
func Of[T any]() Layout {
	var zero T
	t := reflect.TypeFor[T]()
	return Layout{
		Type:     t,
		Size:     unsafe.Sizeof(zero),
		Align:    unsafe.Alignof(zero),
		Pointers: HasPointers(t),
	}
}

// Bytes returns the byte size of n elements, ok = false on overflow or negative n.
func (l Layout) Bytes(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	return MulOverflowSafe(n, int(l.Size))
}

// HasPointers reports whether values of t contain anything the garbage
// collector has to trace.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, Slice, String, Map, Chan, Func, Interface.
		return true
	}
}

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// AlignUp rounds n up to a multiple of align (a power of two).
func AlignUp(n, align int) (int, bool) {
	sum, ok := AddOverflowSafe(n, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
