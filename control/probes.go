// control/probes.go
// Author: momentics <momentics@gmail.com>
//
// Runtime probe registry for allocator and platform inspection.

package control

import (
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/momentics/freestd/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Unregister removes a named hook.
func (dp *DebugProbes) Unregister(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// Names returns the registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DumpState returns output of all probes.
// Hooks run outside the lock so they may consult the registry themselves.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	hooks := make(map[string]func() any, len(dp.probes))
	for k, fn := range dp.probes {
		hooks[k] = fn
	}
	dp.mu.RUnlock()

	out := make(map[string]any, len(hooks))
	for k, fn := range hooks {
		out[k] = fn()
	}
	return out
}

// RegisterPlatformProbes adds host facts relevant to page-backed pools.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any { return runtime.NumCPU() })
	dp.RegisterProbe("platform.pagesize", func() any { return os.Getpagesize() })
	dp.RegisterProbe("platform.os", func() any { return runtime.GOOS + "/" + runtime.GOARCH })
}

var (
	globalOnce   sync.Once
	globalProbes *DebugProbes
)

// Probes returns the process-wide registry, created with platform probes on first use.
func Probes() *DebugProbes {
	globalOnce.Do(func() {
		globalProbes = NewDebugProbes()
		RegisterPlatformProbes(globalProbes)
	})
	return globalProbes
}

var _ api.Debug = (*DebugProbes)(nil)
