// Package api
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy and structured error type for the bytering library.

package api

import "fmt"

// Sentinel errors surfaced by ring operations. Match with errors.Is.
var (
	// ErrInvalidCapacity reports construction with a non-positive capacity
	// or a storage region that could not be allocated. Fatal to
	// construction; no ring is created.
	ErrInvalidCapacity = fmt.Errorf("invalid ring capacity")

	// ErrInsufficientData reports a peek or skip of more bytes than are
	// currently stored. Recoverable; the ring is left untouched.
	ErrInsufficientData = fmt.Errorf("insufficient data in ring")

	// ErrWrongOwner reports an operation invoked from a goroutine other
	// than the one that created the ring. Recoverable, but indicates a
	// usage bug; the ring is left untouched.
	ErrWrongOwner = fmt.Errorf("ring used outside owner goroutine")

	// ErrRingReleased reports an operation on a ring whose storage has
	// already been released.
	ErrRingReleased = fmt.Errorf("ring storage released")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeInsufficientData
	ErrCodeWrongOwner
	ErrCodeReleased
)

// Error represents a structured error with code, sentinel and context.
type Error struct {
	Code    ErrorCode
	Err     error
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel so errors.Is matches structured errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error wrapping a sentinel.
func NewError(code ErrorCode, sentinel error, message string) *Error {
	return &Error{
		Code:    code,
		Err:     sentinel,
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
