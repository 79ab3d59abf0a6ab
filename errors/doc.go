// Package errors provides structured error handling for the password store.
//
// This package defines Error, a structured error type with stable codes for
// programmatic handling, and predefined sentinel errors for every failure
// condition the store can raise: duplicate/unknown users, share exhaustion,
// bootstrap-only restrictions, premature validation while locked, threshold
// violations during persistence and unlock, and malformed on-disk data.
//
// # Sentinel Errors and Cloning
//
// All predefined errors (e.g., ErrUnknownUser, ErrBadUnlock) are pointer
// types (*Error) pointing to shared global instances. This enables cheap
// comparison via errors.Is().
//
// IMPORTANT: sentinel errors are shared pointers and must never be mutated
// directly. Clone before customizing the message:
//
//	// WRONG - mutates the shared global sentinel:
//	failErr := pphErrors.ErrUnknownUser
//	failErr.Msg = "custom message" // BUG: corrupts the sentinel!
//
//	// CORRECT - clone before mutating:
//	failErr := pphErrors.ErrUnknownUser.Clone()
//	failErr.Msg = "custom message" // Safe: only affects the clone
//
// The Wrap() method is always safe since it returns a new instance.
//
// # Error Comparison
//
// Always use errors.Is(). Two Errors compare equal if they share a Code,
// regardless of Msg or Wrapped.
//
//	if errors.Is(err, pphErrors.ErrUnknownUser) {
//	    // handle unknown user
//	}
package errors
