package pool

import (
	"sync"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/control"
)

var (
	defaultOnce  sync.Once
	defaultMu    sync.RWMutex
	defaultAlloc api.Allocator
)

// Default returns the process-wide allocation provider: a recoverable guard
// over the Go heap unless SetDefault installed something else. The first call
// registers a "pool.default" probe exposing its stats.
func Default() api.Allocator {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultAlloc == nil {
			defaultAlloc = NewGuard(NewHeapAllocator(0), api.PolicyRecoverable)
		}
		defaultMu.Unlock()
		control.Probes().RegisterProbe("pool.default", func() any {
			defaultMu.RLock()
			a := defaultAlloc
			defaultMu.RUnlock()
			if sp, ok := a.(api.StatsProvider); ok {
				return sp.Stats()
			}
			return nil
		})
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultAlloc
}

// SetDefault installs a as the process-wide provider and returns the previous
// one; nil restores a fresh heap guard. Containers keep the provider they were built with.
func SetDefault(a api.Allocator) api.Allocator {
	Default()
	if a == nil {
		a = NewGuard(NewHeapAllocator(0), api.PolicyRecoverable)
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultAlloc
	defaultAlloc = a
	return prev
}
