// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/freestd/api"
	"golang.org/x/sys/cpu"
)

// counters: lock-free allocation accounting shared by all providers.
// Padded so hot counters of distinct providers do not share a cache line.
type counters struct {
	_          cpu.CacheLinePad
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
	inUseBytes atomic.Int64
	failures   atomic.Int64
	_          cpu.CacheLinePad
}

func (c *counters) onAlloc(size int) {
	c.totalAlloc.Add(1)
	c.inUse.Add(1)
	c.inUseBytes.Add(int64(size))
}

func (c *counters) onFree(size int) {
	c.totalFree.Add(1)
	c.inUse.Add(-1)
	c.inUseBytes.Add(-int64(size))
}

func (c *counters) onFail() { c.failures.Add(1) }

// reserve claims size bytes against limit (0 = unlimited).
func (c *counters) reserve(size int, limit int64) bool {
	if limit <= 0 {
		return true
	}
	for {
		cur := c.inUseBytes.Load()
		if cur+int64(size) > limit {
			return false
		}
		if c.inUseBytes.CompareAndSwap(cur, cur+int64(size)) {
			return true
		}
	}
}

func (c *counters) snapshot(tag string) api.AllocStats {
	return api.AllocStats{
		Tag:        tag,
		TotalAlloc: c.totalAlloc.Load(),
		TotalFree:  c.totalFree.Load(),
		InUse:      c.inUse.Load(),
		InUseBytes: c.inUseBytes.Load(),
		Failures:   c.failures.Load(),
	}
}
