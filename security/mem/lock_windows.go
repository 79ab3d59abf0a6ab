//go:build windows

package mem

import pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"

// Lock is a no-op on Windows; mlockall has no equivalent in this package.
// Always returns ErrSystemMemLockFailed so callers that treat locking as
// best-effort can log and continue.
func Lock() *pphErrors.Error {
	return pphErrors.ErrSystemMemLockFailed.Clone()
}
