package vector

// Iterator is a position in a Vector. It satisfies algo.Position.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
	gen uint64
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return v.IterAt(0) }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] { return v.IterAt(v.size) }

// IterAt returns an iterator to index i.
func (v *Vector[T]) IterAt(i int) Iterator[T] { return Iterator[T]{v: v, pos: i, gen: v.gen} }

// Value returns the element at the position.
func (it Iterator[T]) Value() T { return it.v.buf.slots[:it.v.size][it.pos] }

// Ptr returns a pointer to the element at the position.
func (it Iterator[T]) Ptr() *T { return &it.v.buf.slots[:it.v.size][it.pos] }

// Set overwrites the element at the position.
func (it Iterator[T]) Set(x T) { it.v.buf.slots[:it.v.size][it.pos] = x }

// Add returns the iterator n elements further.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Distance returns to.Index() - it.Index().
func (it Iterator[T]) Distance(to Iterator[T]) int { return to.pos - it.pos }

// Less orders positions within the same vector.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// Equal reports whether both iterators denote the same position of the same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.v == other.v && it.pos == other.pos }

// Index returns the element index the iterator denotes.
func (it Iterator[T]) Index() int { return it.pos }

// Valid reports whether no operation that may have moved elements ran since
// the iterator was obtained, and the position is within [0, Len].
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.gen == it.v.gen && it.pos >= 0 && it.pos <= it.v.size
}
