// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Allocator statistics registry. Providers register once and are sampled
// on every snapshot.

package control

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/momentics/freestd/api"
)

// StatsRegistry holds named allocation providers that report statistics.
type StatsRegistry struct {
	mu      sync.RWMutex
	sources map[string]api.StatsProvider
	updated time.Time
}

// NewStatsRegistry creates an empty registry.
func NewStatsRegistry() *StatsRegistry {
	return &StatsRegistry{
		sources: make(map[string]api.StatsProvider),
	}
}

// Track sets or replaces the provider reported under name.
func (sr *StatsRegistry) Track(name string, sp api.StatsProvider) {
	sr.mu.Lock()
	sr.sources[name] = sp
	sr.updated = time.Now()
	sr.mu.Unlock()
}

// TrackUnique tracks sp under base, or under base#2, base#3, ... when base
// is taken, and returns the name used.
func (sr *StatsRegistry) TrackUnique(base string, sp api.StatsProvider) string {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	name := base
	for i := 2; ; i++ {
		if _, taken := sr.sources[name]; !taken {
			break
		}
		name = base + "#" + strconv.Itoa(i)
	}
	sr.sources[name] = sp
	sr.updated = time.Now()
	return name
}

// Untrack removes name.
func (sr *StatsRegistry) Untrack(name string) {
	sr.mu.Lock()
	delete(sr.sources, name)
	sr.updated = time.Now()
	sr.mu.Unlock()
}

// Names returns the tracked names in sorted order.
func (sr *StatsRegistry) Names() []string {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	out := make([]string, 0, len(sr.sources))
	for k := range sr.sources {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Updated reports when the set of tracked providers last changed.
func (sr *StatsRegistry) Updated() time.Time {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return sr.updated
}

// GetSnapshot samples every tracked provider.
func (sr *StatsRegistry) GetSnapshot() map[string]api.AllocStats {
	sr.mu.RLock()
	sources := make(map[string]api.StatsProvider, len(sr.sources))
	for k, sp := range sr.sources {
		sources[k] = sp
	}
	sr.mu.RUnlock()

	out := make(map[string]api.AllocStats, len(sources))
	for k, sp := range sources {
		out[k] = sp.Stats()
	}
	return out
}

var (
	statsOnce   sync.Once
	globalStats *StatsRegistry
)

// Stats returns the process-wide registry. It is also exposed as the
// "pool.stats" probe.
func Stats() *StatsRegistry {
	statsOnce.Do(func() {
		globalStats = NewStatsRegistry()
		Probes().RegisterProbe("pool.stats", func() any { return globalStats.GetSnapshot() })
	})
	return globalStats
}
