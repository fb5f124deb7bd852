package pool_test

import (
	"testing"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/control"
	"github.com/momentics/freestd/fake"
	"github.com/momentics/freestd/pool"
	"github.com/stretchr/testify/require"
)

func TestDefaultProvider(t *testing.T) {
	d := pool.Default()
	require.NotNil(t, d)
	require.Same(t, d, pool.Default())

	g, ok := d.(*pool.Guard)
	require.True(t, ok)
	require.Equal(t, api.PolicyRecoverable, g.Policy())

	require.Contains(t, control.Probes().Names(), "pool.default")
}

func TestSetDefault(t *testing.T) {
	fa := fake.NewAllocator()
	prev := pool.SetDefault(fa)
	t.Cleanup(func() { pool.SetDefault(prev) })

	require.Same(t, fa, pool.Default())
	state := control.Probes().DumpState()
	require.IsType(t, api.AllocStats{}, state["pool.default"])

	pool.SetDefault(nil)
	_, ok := pool.Default().(*pool.Guard)
	require.True(t, ok)
}
