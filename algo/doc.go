// Package algo
// Author: momentics <momentics@gmail.com>
//
// Comparator-driven binary search over half-open position ranges.
//
// A range is a pair of positions [first, last). Any type implementing
// Position qualifies: vector.Iterator and the slice adapter returned by
// Slice/SliceEnd both do. The searches never allocate and never mutate
// the range, so they are safe on any goroutine that owns the data.
//
// The range must be partitioned with respect to the probe value under the
// comparator; results are unspecified otherwise.
package algo
