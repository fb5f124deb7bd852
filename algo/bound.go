// File: algo/bound.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package algo

import "cmp"

// Position is a random-access cursor into a sequence of E.
type Position[P any, E any] interface {
	// Value returns the element at the position.
	Value() E
	// Add returns the position n elements further (n may be negative).
	Add(n int) P
	// Distance returns the number of elements from the receiver to to.
	Distance(to P) int
}

// LowerBound returns the first position in [first, last) whose element is not
// less than value, or last if there is none.
func LowerBound[P Position[P, E], E cmp.Ordered](first, last P, value E) P {
	return LowerBoundFunc(first, last, value, cmp.Less[E])
}

// LowerBoundFunc returns the first position in [first, last) for which
// less(element, value) is false, or last if there is none.
func LowerBoundFunc[P Position[P, E], E, V any](first, last P, value V, less func(E, V) bool) P {
	count := first.Distance(last)
	for count > 0 {
		step := count / 2
		mid := first.Add(step)
		if less(mid.Value(), value) {
			first = mid.Add(1)
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

// UpperBound returns the first position in [first, last) whose element is
// greater than value, or last if there is none.
func UpperBound[P Position[P, E], E cmp.Ordered](first, last P, value E) P {
	return UpperBoundFunc(first, last, value, cmp.Less[E])
}

// UpperBoundFunc returns the first position in [first, last) for which
// less(value, element) is true, or last if there is none.
func UpperBoundFunc[P Position[P, E], E, V any](first, last P, value V, less func(V, E) bool) P {
	count := first.Distance(last)
	for count > 0 {
		step := count / 2
		mid := first.Add(step)
		if !less(value, mid.Value()) {
			first = mid.Add(1)
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

// EqualRange returns the sub-range of [first, last) holding elements equal to value.
func EqualRange[P Position[P, E], E cmp.Ordered](first, last P, value E) (P, P) {
	return EqualRangeFunc(first, last, value, cmp.Less[E])
}

// EqualRangeFunc is EqualRange under a caller-supplied strict weak ordering.
func EqualRangeFunc[P Position[P, E], E any](first, last P, value E, less func(E, E) bool) (P, P) {
	lo := LowerBoundFunc(first, last, value, less)
	return lo, UpperBoundFunc(lo, last, value, less)
}

// BinarySearch reports whether [first, last) holds an element equal to value,
// together with the lower bound position.
func BinarySearch[P Position[P, E], E cmp.Ordered](first, last P, value E) (P, bool) {
	return BinarySearchFunc(first, last, value, cmp.Less[E])
}

// BinarySearchFunc is BinarySearch under a caller-supplied strict weak ordering.
// Equality is derived from the ordering: neither element precedes the other.
func BinarySearchFunc[P Position[P, E], E any](first, last P, value E, less func(E, E) bool) (P, bool) {
	pos := LowerBoundFunc(first, last, value, less)
	if pos.Distance(last) == 0 {
		return pos, false
	}
	return pos, !less(value, pos.Value())
}
