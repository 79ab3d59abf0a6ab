// Package pph is the public facade over the password store: a thin
// composition root that wraps store.Store and re-exports its operations
// and error type under a stable top-level API.
package pph

import (
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/store"
)

// Store is a threshold-protected password store.
type Store struct {
	inner *store.Store
}

// Login is one username/password pair submitted toward an Unlock call.
type Login = store.Login

// NewFresh creates a store with no backing file: a new secret is
// generated immediately and the store starts unlocked with no accounts.
// threshold is the number of protector shares required to recover the
// secret; icbBits is the width of the isolated-check suffix appended to
// shielded and protector passhashes (0 disables isolated validation).
// threshold == 0 and icbBits == -1 fall back to the PPH_SHAMIR_THRESHOLD /
// PPH_ICB_WIDTH environment-variable defaults.
func NewFresh(threshold, icbBits int) (*Store, *pphErrors.Error) {
	s, err := store.NewFresh(threshold, icbBits)
	if err != nil {
		return nil, err
	}
	return &Store{inner: s}, nil
}

// NewFromFile loads a previously persisted store from path. The loaded
// store starts locked: only bootstrap accounts may be created until a
// successful Unlock call recovers the secret. As with NewFresh,
// threshold == 0 and icbBits == -1 fall back to the environment-variable
// defaults.
func NewFromFile(path string, threshold, icbBits int) (*Store, *pphErrors.Error) {
	s, err := store.NewFromFile(path, threshold, icbBits)
	if err != nil {
		return nil, err
	}
	return &Store{inner: s}, nil
}

// CreateAccount registers a new user with the given number of protector
// shares (0 creates a bootstrap record while locked, or a shielded
// record while unlocked).
func (s *Store) CreateAccount(user, password string, shares int) *pphErrors.Error {
	return s.inner.CreateAccount(user, password, shares)
}

// IsValidLogin reports whether password is correct for user.
func (s *Store) IsValidLogin(user, password string) (bool, *pphErrors.Error) {
	return s.inner.IsValidLogin(user, password)
}

// Unlock attempts to recover the store's secret from the shares implied
// by logins, transitioning the store from locked to unlocked on success.
func (s *Store) Unlock(logins []Login) *pphErrors.Error {
	return s.inner.Unlock(logins)
}

// WritePasswordData persists the store's locked subset of state to path.
func (s *Store) WritePasswordData(path string) *pphErrors.Error {
	return s.inner.WritePasswordData(path)
}

// IsLocked reports whether the store is in the locked (bootstrapping)
// state.
func (s *Store) IsLocked() bool {
	return s.inner.IsLocked()
}
