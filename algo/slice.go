package algo

// SliceIter is a Position over a Go slice.
type SliceIter[E any] struct {
	s []E
	i int
}

// Slice returns the position of the first element of s.
func Slice[E any](s []E) SliceIter[E] { return SliceIter[E]{s: s} }

// SliceEnd returns the past-the-end position of s.
func SliceEnd[E any](s []E) SliceIter[E] { return SliceIter[E]{s: s, i: len(s)} }

// Value returns s[i]; it panics at the end position.
func (it SliceIter[E]) Value() E { return it.s[it.i] }

// Add moves the position by n.
func (it SliceIter[E]) Add(n int) SliceIter[E] { return SliceIter[E]{s: it.s, i: it.i + n} }

// Distance returns to.Index() - it.Index().
func (it SliceIter[E]) Distance(to SliceIter[E]) int { return to.i - it.i }

// Index returns the offset into the slice.
func (it SliceIter[E]) Index() int { return it.i }
