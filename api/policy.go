// File: api/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "fmt"

// FailurePolicy selects what happens when a provider cannot satisfy a request.
type FailurePolicy int

const (
	// PolicyRecoverable returns the failure to the caller and records it as the
	// provider's last error (hosted variant).
	PolicyRecoverable FailurePolicy = iota
	// PolicyFatal treats the failure as unrecoverable and panics (kernel host).
	PolicyFatal
)

func (p FailurePolicy) String() string {
	switch p {
	case PolicyRecoverable:
		return "recoverable"
	case PolicyFatal:
		return "fatal"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseFailurePolicy maps a configuration string onto a FailurePolicy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "", "recoverable":
		return PolicyRecoverable, nil
	case "fatal":
		return PolicyFatal, nil
	default:
		return 0, NewError(ErrCodeInvalidArgument, "unknown failure policy").WithContext("policy", s)
	}
}
