// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection layer for freestd.
//
// Provides a concurrency-safe registry of named probes. Allocation providers
// register their accounting here so a host can dump the state of every pool
// from one place:
//   - Probes() returns the process-wide registry
//   - RegisterProbe adds or replaces a named hook
//   - DumpState evaluates every hook
//
// Stats() tracks providers by name and samples their AllocStats; the whole
// set is published as the "pool.stats" probe.
package control
