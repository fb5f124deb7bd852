package pool_test

import (
	"os"
	"testing"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/pool"
	"github.com/stretchr/testify/require"
)

func TestPageAllocatorRoundTrip(t *testing.T) {
	p, err := pool.NewPageAllocator("Test")
	require.NoError(t, err)
	require.Equal(t, os.Getpagesize(), p.PageSize())

	b, err := p.Allocate(100, 8)
	require.NoError(t, err)
	require.Len(t, b, 100)
	require.Equal(t, 1, p.Live())

	for i := range b {
		b[i] = byte(i)
	}
	require.Equal(t, byte(99), b[99])

	st := p.Stats()
	require.Equal(t, "Test", st.Tag)
	require.EqualValues(t, 1, st.InUse)
	require.EqualValues(t, 100, st.InUseBytes)

	require.NoError(t, p.Deallocate(b))
	require.Zero(t, p.Live())
	require.ErrorIs(t, p.Deallocate(b), api.ErrBadBlock)
}

func TestPageAllocatorMultiPage(t *testing.T) {
	p, err := pool.NewPageAllocator(pool.DefaultTag)
	require.NoError(t, err)
	size := 3*p.PageSize() + 1
	b, err := p.Allocate(size, 64)
	require.NoError(t, err)
	b[size-1] = 0xAA
	require.NoError(t, p.Deallocate(b))
}

func TestPageAllocatorValidation(t *testing.T) {
	_, err := pool.NewPageAllocator("toolong")
	require.ErrorIs(t, err, api.ErrInvalidArgument)

	p, err := pool.NewPageAllocator("Fstd")
	require.NoError(t, err)
	_, err = p.Allocate(0, 8)
	require.ErrorIs(t, err, api.ErrInvalidArgument)
	_, err = p.Allocate(16, 2*p.PageSize())
	require.ErrorIs(t, err, api.ErrInvalidArgument)
	require.ErrorIs(t, p.Deallocate(make([]byte, 8)), api.ErrBadBlock)

	var _ api.Allocator = p
	_, scans := any(p).(api.ScanningAllocator)
	require.False(t, scans, "page memory is not collector scanned")
}
