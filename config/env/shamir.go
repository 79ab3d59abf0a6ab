package env

import (
	"os"
	"strconv"
)

// ShamirSharesVal returns a default number of protector shares for a new
// account, read from the PPH_SHAMIR_SHARES environment variable. The
// store does not consult it: CreateAccount always takes an explicit
// share count.
//
// Returns the parsed value if it is a valid positive integer, or 3
// otherwise.
func ShamirSharesVal() int {
	p := os.Getenv(ShamirShares)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 3
}

// ShamirThresholdVal returns the default reconstruction threshold k for a
// freshly created store, read from the PPH_SHAMIR_THRESHOLD environment
// variable.
//
// Returns the parsed value if it is a valid positive integer, or 2
// otherwise. Callers that pass an explicit threshold to NewFresh bypass
// this default entirely.
func ShamirThresholdVal() int {
	p := os.Getenv(ShamirThreshold)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 2
}

// ICBWidthVal returns the default isolated-check-bit width b, in bytes,
// read from the PPH_ICB_WIDTH environment variable.
//
// Returns the parsed value if it is a valid non-negative integer, or 0
// (isolated checking disabled) otherwise.
func ICBWidthVal() int {
	p := os.Getenv(ICBWidth)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv >= 0 {
			return mv
		}
	}
	return 0
}

// ICBIterationsVal returns the number of SHA-256 iterations used to derive
// isolated-check bits from a salted hash, read from the
// PPH_ICB_ITERATIONS environment variable.
//
// Returns the parsed value if it is a valid positive integer, or the
// reference default of 1000 otherwise.
func ICBIterationsVal() int {
	p := os.Getenv(ICBIterations)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 1000
}

// RecombinationIterationsVal returns the number of SHA-256 iterations used
// to compute the store's integrity fingerprint from a recovered secret,
// read from the PPH_RECOMBINATION_ITERATIONS environment variable.
//
// Returns the parsed value if it is a valid positive integer, or the
// reference default of 100000 otherwise.
func RecombinationIterationsVal() int {
	p := os.Getenv(RecombinationIterations)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 100000
}

// SaltSizeVal returns the per-account salt size in bytes, read from the
// PPH_SALT_SIZE environment variable.
//
// Returns the parsed value if it is a valid positive integer, or the
// reference default of 16 otherwise.
func SaltSizeVal() int {
	p := os.Getenv(SaltSize)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 16
}
