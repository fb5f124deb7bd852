// Package vector
// Author: momentics <momentics@gmail.com>
//
// Growable, contiguous, randomly indexable sequence container whose storage
// comes from an injected allocation provider.
//
// # Storage model
//
// A Vector owns one raw block sized in elements. Slots [0, Len) hold live
// elements; slots [Len, Cap) are raw storage. The block is obtained from the
// api.Allocator the vector was built with (pool.Default unless overridden)
// and released exactly once: when the vector grows or shrinks into a new
// block, on Release, or by whichever vector adopted it through a move.
//
// The collector never releases a block. Release is mandatory for vectors on
// providers that hand out memory outside the Go heap, such as
// pool.PageAllocator: an unreachable, unreleased vector keeps its mapping
// until the process exits. Heap-backed blocks are reclaimed by the collector
// either way, but Release still keeps provider accounting exact.
//
// Element types holding Go pointers need collector-scanned memory and
// therefore an api.ScanningAllocator; pointer-free types may also live in
// page pools (pool.PageAllocator).
//
// # Element semantics
//
//   - default construction: the zero value, or the WithDefault constructor
//   - copy: assignment, or Clone when T implements Cloner[T]
//   - move / relocation: bitwise slot copy, Clone is never called
//   - destruction: Destroy when T implements Destroyer, then the slot is zeroed
//
// # Growth
//
// Implicit growth (insert, emplace, push, resize) picks
// max(2*Cap, Len+added), with 1 as the base when growing from zero.
// Reserve and ShrinkToFit are exact.
//
// # Errors
//
// At, Ref and Set are bounds checked and return errors matching
// api.ErrOutOfRange. Index and Ptr are unchecked: the index must be in
// [0, Len). Every operation that allocates or copies returns an error and
// leaves the vector as it was when it fails. Assign* and CopyFrom build the
// replacement elements before destroying the old ones.
//
// # Iterators
//
// Iterators are index positions tagged with the vector's generation. Any
// operation that may move elements (capacity change, insert, erase, clear,
// resize, assign, move, swap) starts a new generation; Valid reports false
// for iterators from an older one.
//
// # Thread Safety
//
// A Vector is not safe for concurrent mutation. Distinct vectors are
// independent.
package vector
