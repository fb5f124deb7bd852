package algo_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/momentics/freestd/algo"
	"github.com/stretchr/testify/require"
)

func bounds(s []int, v int) (int, int) {
	lo := algo.LowerBound(algo.Slice(s), algo.SliceEnd(s), v)
	hi := algo.UpperBound(algo.Slice(s), algo.SliceEnd(s), v)
	return lo.Index(), hi.Index()
}

func TestLowerBoundOddSequence(t *testing.T) {
	s := []int{1, 3, 5, 7, 9}
	for probe := 0; probe <= 10; probe++ {
		pos := algo.LowerBound(algo.Slice(s), algo.SliceEnd(s), probe)
		if probe == 10 {
			require.Equal(t, len(s), pos.Index(), "probe 10 must hit end")
			continue
		}
		require.Less(t, pos.Index(), len(s))
		got := pos.Value()
		require.GreaterOrEqual(t, got, probe)
		require.LessOrEqual(t, got-probe, 1, "probe %d landed on %d", probe, got)
	}
}

func TestBoundsEmptyRange(t *testing.T) {
	var s []int
	lo, hi := bounds(s, 3)
	require.Zero(t, lo)
	require.Zero(t, hi)
}

func TestBoundsDuplicates(t *testing.T) {
	s := []int{1, 2, 2, 2, 3, 5, 5}
	lo, hi := bounds(s, 2)
	require.Equal(t, 1, lo)
	require.Equal(t, 4, hi)

	lo, hi = bounds(s, 4)
	require.Equal(t, 5, lo)
	require.Equal(t, 5, hi)

	lo, hi = bounds(s, 0)
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)

	lo, hi = bounds(s, 9)
	require.Equal(t, len(s), lo)
	require.Equal(t, len(s), hi)
}

func TestBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		s := make([]int, rng.Intn(40))
		for i := range s {
			s[i] = rng.Intn(20)
		}
		slices.Sort(s)
		for probe := -1; probe <= 21; probe++ {
			lo, hi := bounds(s, probe)
			require.LessOrEqual(t, lo, hi)

			want := 0
			for _, x := range s {
				if x == probe {
					want++
				}
			}
			require.Equal(t, want, hi-lo)
			for _, x := range s[lo:hi] {
				require.Equal(t, probe, x)
			}
			stdLo, _ := slices.BinarySearch(s, probe)
			require.Equal(t, stdLo, lo)
		}
	}
}

func TestFuncMatchesDefaultOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := make([]int, 64)
	for i := range s {
		s[i] = rng.Intn(30)
	}
	slices.Sort(s)
	less := func(a, b int) bool { return a < b }
	for probe := -2; probe < 32; probe++ {
		first, last := algo.Slice(s), algo.SliceEnd(s)
		require.Equal(t,
			algo.LowerBound(first, last, probe).Index(),
			algo.LowerBoundFunc(first, last, probe, less).Index())
		require.Equal(t,
			algo.UpperBound(first, last, probe).Index(),
			algo.UpperBoundFunc(first, last, probe, less).Index())
		require.Equal(t,
			algo.LowerBound(first, last, probe).Index(),
			algo.LowerBoundFunc(first, last, probe, cmp.Less[int]).Index())
	}
}

func TestDescendingComparator(t *testing.T) {
	s := []int{9, 7, 7, 4, 1}
	greater := func(a, b int) bool { return a > b }
	first, last := algo.Slice(s), algo.SliceEnd(s)

	lo := algo.LowerBoundFunc(first, last, 7, greater)
	hi := algo.UpperBoundFunc(first, last, 7, greater)
	require.Equal(t, 1, lo.Index())
	require.Equal(t, 3, hi.Index())
}

type record struct {
	key  int
	name string
}

func TestHeterogeneousProbe(t *testing.T) {
	recs := []record{{1, "a"}, {4, "b"}, {4, "c"}, {8, "d"}}
	first, last := algo.Slice(recs), algo.SliceEnd(recs)

	lo := algo.LowerBoundFunc(first, last, 4, func(r record, k int) bool { return r.key < k })
	hi := algo.UpperBoundFunc(first, last, 4, func(k int, r record) bool { return k < r.key })
	require.Equal(t, "b", lo.Value().name)
	require.Equal(t, "d", hi.Value().name)
}

func TestEqualRangeAndBinarySearch(t *testing.T) {
	s := []string{"ant", "bee", "bee", "cat"}
	first, last := algo.Slice(s), algo.SliceEnd(s)

	lo, hi := algo.EqualRange(first, last, "bee")
	require.Equal(t, 1, lo.Index())
	require.Equal(t, 3, hi.Index())

	pos, ok := algo.BinarySearch(first, last, "cat")
	require.True(t, ok)
	require.Equal(t, 3, pos.Index())

	pos, ok = algo.BinarySearch(first, last, "cow")
	require.False(t, ok)
	require.Equal(t, 4, pos.Index())

	_, ok = algo.BinarySearch(first, last, "bat")
	require.False(t, ok)
}

func TestSubRange(t *testing.T) {
	s := []int{5, 1, 2, 3, 0}
	first := algo.Slice(s).Add(1)
	last := algo.SliceEnd(s).Add(-1)
	require.Equal(t, 3, first.Distance(last))
	require.Equal(t, 2, algo.LowerBound(first, last, 2).Index())
	require.Equal(t, 4, algo.UpperBound(first, last, 3).Index())
}
