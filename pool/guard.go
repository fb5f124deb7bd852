// File: pool/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Host failure policy applied on top of any allocator.

package pool

import (
	"errors"
	"reflect"
	"sync/atomic"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/internal/logger"
)

// Guard routes requests to a backing allocator and applies the failure policy:
// under PolicyFatal a failed allocation panics with an *api.Error, under
// PolicyRecoverable it is returned and kept as the last error.
type Guard struct {
	next    api.Allocator
	policy  api.FailurePolicy
	lastErr atomic.Pointer[api.Error]
}

// NewGuard wraps next with policy.
func NewGuard(next api.Allocator, policy api.FailurePolicy) *Guard {
	return &Guard{next: next, policy: policy}
}

// Policy returns the configured failure policy.
func (g *Guard) Policy() api.FailurePolicy { return g.policy }

// Backing returns the wrapped allocator.
func (g *Guard) Backing() api.Allocator { return g.next }

// Allocate forwards to the backing allocator.
func (g *Guard) Allocate(size, align int) ([]byte, error) {
	b, err := g.next.Allocate(size, align)
	if err != nil {
		return nil, g.fail(err, size)
	}
	return b, nil
}

// AllocateScanned forwards to the backing allocator when it can scan.
func (g *Guard) AllocateScanned(elem reflect.Type, count int) ([]byte, error) {
	sa, ok := g.next.(api.ScanningAllocator)
	if !ok {
		return nil, api.NewError(api.ErrCodeUnsupportedLayout, "guard: backing allocator cannot hold pointers").
			WithContext("elem", elem.String())
	}
	b, err := sa.AllocateScanned(elem, count)
	if err != nil {
		return nil, g.fail(err, count*int(elem.Size()))
	}
	return b, nil
}

// Deallocate forwards to the backing allocator. Release errors are caller
// errors and are returned without applying the failure policy.
func (g *Guard) Deallocate(block []byte) error {
	return g.next.Deallocate(block)
}

// Stats forwards to the backing allocator when it keeps accounting.
func (g *Guard) Stats() api.AllocStats {
	if sp, ok := g.next.(api.StatsProvider); ok {
		return sp.Stats()
	}
	return api.AllocStats{}
}

// LastError returns the most recent recorded allocation failure, or nil.
func (g *Guard) LastError() error {
	if e := g.lastErr.Load(); e != nil {
		return e
	}
	return nil
}

// ClearLastError forgets the recorded failure.
func (g *Guard) ClearLastError() { g.lastErr.Store(nil) }

func (g *Guard) fail(cause error, size int) error {
	var e *api.Error
	if !errors.As(cause, &e) || e.Code != api.ErrCodeAllocFailed {
		// Argument and layout errors are not exhaustion; pass them through.
		if api.CodeOf(cause) != api.ErrCodeInternal {
			return cause
		}
		e = api.NewError(api.ErrCodeAllocFailed, "allocation failed").WithCause(cause)
	}
	e.WithContext("request", size)
	if g.policy == api.PolicyFatal {
		logger.L().Error("fatal allocation failure", "size", size, "err", e)
		panic(e)
	}
	g.lastErr.Store(e)
	return e
}

var _ api.ScanningAllocator = (*Guard)(nil)
