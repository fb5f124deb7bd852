package vector_test

import (
	"testing"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/fake"
	"github.com/momentics/freestd/vector"
	"github.com/stretchr/testify/require"
)

func TestReserveExact(t *testing.T) {
	v, fa := newInts(t, seq(3))
	require.NoError(t, v.Reserve(5))
	require.Equal(t, 5, v.Cap())
	require.Equal(t, seq(3), v.Data())
	require.Equal(t, 1, fa.Live())

	allocs := fa.Allocs()
	require.NoError(t, v.Reserve(5))
	require.NoError(t, v.Reserve(2))
	require.NoError(t, v.Reserve(-1))
	require.Equal(t, 5, v.Cap())
	require.Equal(t, allocs, fa.Allocs(), "reserve below capacity is a no-op")
}

func TestShrinkToFit(t *testing.T) {
	fa := fake.NewAllocator()
	v := vector.New[int](vector.WithAllocator(fa))
	require.NoError(t, v.Reserve(16))
	require.Equal(t, 16, v.Cap())
	require.NoError(t, v.ShrinkToFit())
	require.Zero(t, v.Cap())
	require.Zero(t, fa.Live())
	require.Nil(t, v.Data())

	require.NoError(t, v.AssignSlice(seq(3)))
	require.NoError(t, v.Reserve(16))
	require.NoError(t, v.ShrinkToFit())
	require.Equal(t, 3, v.Cap())
	require.Equal(t, seq(3), v.Data())
	require.Equal(t, 1, fa.Live())

	allocs := fa.Allocs()
	require.NoError(t, v.ShrinkToFit())
	require.Equal(t, allocs, fa.Allocs())
}

func TestClearRetainsCapacity(t *testing.T) {
	v, fa := newInts(t, seq(10))
	v.Clear()
	require.True(t, v.Empty())
	require.Equal(t, 10, v.Cap())
	require.Equal(t, 1, fa.Live())

	require.NoError(t, v.PushBack(5))
	require.Equal(t, 1, fa.Allocs(), "cleared capacity is reused")
}

func TestResize(t *testing.T) {
	v, _ := newInts(t, []int{1, 2, 3})
	require.NoError(t, v.Resize(5))
	require.Equal(t, []int{1, 2, 3, 0, 0}, v.Data())
	require.Equal(t, 6, v.Cap(), "growth doubles")

	require.NoError(t, v.ResizeFill(8, 9))
	require.Equal(t, []int{1, 2, 3, 0, 0, 9, 9, 9}, v.Data())
	require.Equal(t, 12, v.Cap())

	require.NoError(t, v.Resize(2))
	require.Equal(t, []int{1, 2}, v.Data())
	require.Equal(t, 12, v.Cap())

	require.NoError(t, v.Resize(2))
	require.ErrorIs(t, v.Resize(-1), api.ErrInvalidArgument)

	w, _ := newInts(t, nil)
	require.NoError(t, w.Resize(7))
	require.Equal(t, 7, w.Cap(), "requirement floors the doubled capacity")
}

func TestReleaseReturnsBlockOnce(t *testing.T) {
	v, fa := newInts(t, seq(4))
	v.Release()
	require.Zero(t, v.Len())
	require.Zero(t, v.Cap())
	require.Zero(t, fa.Live())
	v.Release()
	require.Equal(t, 1, fa.Frees())

	require.NoError(t, v.PushBack(1))
	require.Equal(t, []int{1}, v.Data())
}
