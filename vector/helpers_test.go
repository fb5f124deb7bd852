package vector_test

import (
	"errors"
	"testing"

	"github.com/momentics/freestd/fake"
	"github.com/momentics/freestd/vector"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("clone failed")

// ledger is shared by tracked values to count copies and destructions.
type ledger struct {
	copies    int
	destroys  int
	failAfter int // successful clones left before failing; <0 never fails
}

func newLedger() *ledger { return &ledger{failAfter: -1} }

type tracked struct {
	id int
	l  *ledger
}

func (t tracked) Clone() (tracked, error) {
	if t.l == nil {
		return t, nil
	}
	if t.l.failAfter == 0 {
		return tracked{}, errBoom
	}
	if t.l.failAfter > 0 {
		t.l.failAfter--
	}
	t.l.copies++
	return t, nil
}

func (t tracked) Destroy() {
	if t.l != nil {
		t.l.destroys++
	}
}

func trackedSeq(l *ledger, ids ...int) []tracked {
	out := make([]tracked, len(ids))
	for i, id := range ids {
		out[i] = tracked{id: id, l: l}
	}
	return out
}

func ids(v *vector.Vector[tracked]) []int {
	out := make([]int, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x.id)
	}
	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// newInts builds a vector of s on a fresh fake allocator.
func newInts(t *testing.T, s []int) (*vector.Vector[int], *fake.Allocator) {
	t.Helper()
	fa := fake.NewAllocator()
	v, err := vector.NewFromSlice(s, vector.WithAllocator(fa))
	require.NoError(t, err)
	return v, fa
}

func contents[T any](v *vector.Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}
