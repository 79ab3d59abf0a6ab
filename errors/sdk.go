package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error raised by the password store. It
// carries a stable Code for programmatic handling, a human-readable Msg,
// and an optional wrapped cause so error chains survive errors.Is/As.
//
// Usage:
//  1. All exported store operations return *Error, never a bare error.
//  2. All comparisons use errors.Is(), never message comparison.
//  3. Context goes in Msg, set after Clone()-ing a sentinel.
//  4. Prefer predefined sentinels (ErrUnknownUser, ...) wrapped with Wrap()
//     over constructing new Errors with New().
//
// Example:
//
//	return pphErrors.ErrUnknownUser.Clone()
//
//	if errors.Is(err, pphErrors.ErrUnknownUser) {
//	    // handle
//	}
type Error struct {
	// Code is the error code for programmatic error handling.
	Code Code

	// Msg is the human-readable error message.
	Msg string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// New creates a new Error with the given code, message, and optional
// wrapped cause.
//
// Prefer predefined sentinels wrapped with Wrap() over calling New
// directly.
func New(code Code, msg string, wrapped error) *Error {
	return &Error{
		Code:    code,
		Msg:     msg,
		Wrapped: wrapped,
	}
}

// Error implements the error interface, returning a formatted message that
// includes the code and, if present, the wrapped cause.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// Unwrap returns the wrapped error, enabling errors.Is()/errors.As() chain
// traversal from the standard library.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Wrap returns a new Error with the same Code and Msg as e, with err
// attached as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Code:    e.Code,
		Msg:     e.Msg,
		Wrapped: err,
	}
}

// Is enables errors.Is() comparison by Code. Two Errors are considered
// equal if they share a Code, regardless of Msg or Wrapped.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Clone returns a shallow copy of e, safe to mutate without corrupting a
// shared sentinel.
func (e *Error) Clone() *Error {
	return &Error{
		Code:    e.Code,
		Msg:     e.Msg,
		Wrapped: e.Wrapped,
	}
}
