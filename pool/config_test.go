package pool_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/control"
	"github.com/momentics/freestd/pool"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := pool.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, pool.BackingHeap, cfg.Backing)
	require.Equal(t, "recoverable", cfg.Policy)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := pool.LoadConfig(strings.NewReader(`
backing: pages
policy: fatal
tag: Drv0
log_level: debug
`))
	require.NoError(t, err)
	require.Equal(t, pool.BackingPages, cfg.Backing)
	require.Equal(t, "fatal", cfg.Policy)
	require.Equal(t, "Drv0", cfg.Tag)

	g, err := pool.New(cfg)
	require.NoError(t, err)
	require.Equal(t, api.PolicyFatal, g.Policy())
	pa, ok := g.Backing().(*pool.PageAllocator)
	require.True(t, ok)
	require.Equal(t, "Drv0", pa.Tag())
	require.Contains(t, control.Stats().Names(), "pool.Drv0")
}

func countPrefixed(names []string, prefix string) int {
	n := 0
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			n++
		}
	}
	return n
}

func TestNewTracksEveryProvider(t *testing.T) {
	before := countPrefixed(control.Stats().Names(), "pool.heap")
	a, err := pool.New(nil)
	require.NoError(t, err)
	b, err := pool.New(nil)
	require.NoError(t, err)
	require.Equal(t, before+2, countPrefixed(control.Stats().Names(), "pool.heap"))
	require.NotContains(t, control.Stats().Names(), "pool.Fstd", "heap providers ignore the tag")

	require.NotSame(t, a, b)
}

func TestLoadConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := pool.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, pool.DefaultConfig(), cfg)
}

func TestLoadConfigRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "backing: heap\ncolour: blue\n",
		"bad backing":    "backing: disk\n",
		"bad policy":     "policy: sometimes\n",
		"bad tag":        "backing: pages\ntag: ab\n",
		"negative limit": "limit_bytes: -1\n",
		"bad log level":  "log_level: chatty\n",
		"malformed yaml": "backing: [heap\n",
	}
	for name, doc := range cases {
		_, err := pool.LoadConfig(strings.NewReader(doc))
		require.ErrorIs(t, err, api.ErrInvalidArgument, name)
	}
}

func TestNewHeapWithLimit(t *testing.T) {
	cfg := pool.DefaultConfig()
	cfg.LimitBytes = 64
	g, err := pool.New(cfg)
	require.NoError(t, err)

	_, err = g.Allocate(128, 8)
	require.ErrorIs(t, err, api.ErrAllocFailed)
	require.Error(t, g.LastError())
}

func TestSetLogOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := pool.DefaultConfig()
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.SetLogOutput(&buf))
	defer cfg.SetLogOutput(nil)

	_, err := pool.New(cfg)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "allocation provider composed")

	cfg.LogLevel = "loud"
	require.ErrorIs(t, cfg.SetLogOutput(&buf), api.ErrInvalidArgument)
}
