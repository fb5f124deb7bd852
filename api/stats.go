// Package api
// Author: momentics
//
// Allocation accounting and introspection contracts.

package api

// AllocStats aggregates block allocation/release stats of one provider.
type AllocStats struct {
	Tag        string // pool tag, empty for untagged providers
	TotalAlloc int64  // successful Allocate calls
	TotalFree  int64  // successful Deallocate calls
	InUse      int64  // blocks currently live
	InUseBytes int64  // bytes currently live, as requested by callers
	Failures   int64  // allocations that returned an error
}

// Debug is a registry of named probes evaluated on demand.
type Debug interface {
	// DumpState evaluates every probe and returns the results by name.
	DumpState() map[string]any

	// RegisterProbe adds or replaces a probe.
	RegisterProbe(name string, fn func() any)
}
