// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for freestd.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	// ErrOutOfRange is the bounds-violation signal raised by checked element access.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty reports front/back/pop access on an empty container.
	ErrEmpty = errors.New("container is empty")
	// ErrAllocFailed reports that the allocation provider could not supply a block.
	ErrAllocFailed = errors.New("allocation failed")
	// ErrInvalidArgument reports a malformed request (negative count, bad alignment).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedLayout reports an element type the allocator cannot host,
	// e.g. a type holding Go pointers placed in unscanned page memory.
	ErrUnsupportedLayout = errors.New("element layout not supported by allocator")
	// ErrBadBlock reports a release of a block the allocator does not own.
	ErrBadBlock = errors.New("block not owned by allocator")
	// ErrLengthOverflow reports a size computation that overflows int.
	ErrLengthOverflow = errors.New("length overflow")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeEmpty
	ErrCodeAllocFailed
	ErrCodeUnsupportedLayout
	ErrCodeBadBlock
	ErrCodeLengthOverflow
	ErrCodeInternal
)

var codeSentinels = map[ErrorCode]error{
	ErrCodeInvalidArgument:   ErrInvalidArgument,
	ErrCodeOutOfRange:        ErrOutOfRange,
	ErrCodeEmpty:             ErrEmpty,
	ErrCodeAllocFailed:       ErrAllocFailed,
	ErrCodeUnsupportedLayout: ErrUnsupportedLayout,
	ErrCodeBadBlock:          ErrBadBlock,
	ErrCodeLengthOverflow:    ErrLengthOverflow,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) != 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the sentinel matching Code and the underlying cause,
// so errors.Is(err, ErrOutOfRange) and friends work on structured errors.
func (e *Error) Unwrap() []error {
	var out []error
	if s, ok := codeSentinels[e.Code]; ok {
		out = append(out, s)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCause records the lower-level error that triggered e.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or ErrCodeInternal
// when err carries none. A nil err yields ErrCodeOK.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
