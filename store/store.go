package store

import (
	"github.com/deepali-gupta/polypasswordhasher/config/env"
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/shares"
)

type lifecycleState int

const (
	stateLocked lifecycleState = iota
	stateUnlocked
)

// Store is the top-level credential container. In the locked state,
// engine and shieldedKey are nil and bootstrap records may exist; in the
// unlocked state (reached immediately on NewFresh, or via a successful
// Unlock from locked) both are present and every operation is available.
type Store struct {
	Threshold int
	ICBWidth  int

	state      lifecycleState
	nextShare  int
	accounts   map[string]*Account
	bootstrap  []bootstrapRef
	fingerprint [32]byte

	shieldedKey []byte
	engine      *shares.Engine
}

// NewFresh creates a store with no backing file: a new 32-byte secret is
// generated immediately, its integrity fingerprint is recorded, and the
// store starts unlocked with an empty account map.
//
// threshold == 0 and icbWidth == -1 mean "no explicit value": both fall
// back to the PPH_SHAMIR_THRESHOLD / PPH_ICB_WIDTH environment-variable
// defaults via defaultThreshold / defaultICBWidth.
func NewFresh(threshold, icbWidth int) (*Store, *pphErrors.Error) {
	if threshold == 0 {
		threshold = defaultThreshold()
	}
	if icbWidth == -1 {
		icbWidth = defaultICBWidth()
	}
	if threshold < 1 || threshold > 255 {
		return nil, pphErrors.ErrDataInvalidInput.Clone()
	}
	if icbWidth < 0 || icbWidth > 32 {
		return nil, pphErrors.ErrDataInvalidInput.Clone()
	}

	secret, fingerprint, err := createSecret()
	if err != nil {
		return nil, err
	}

	engine, engErr := shares.New(threshold, secret)
	if engErr != nil {
		return nil, engErr
	}

	s := &Store{
		Threshold:   threshold,
		ICBWidth:    icbWidth,
		state:       stateUnlocked,
		nextShare:   1,
		accounts:    make(map[string]*Account),
		fingerprint: fingerprint,
		shieldedKey: secret,
		engine:      engine,
	}
	return s, nil
}

// IsLocked reports whether the store is in the locked (bootstrapping)
// state.
func (s *Store) IsLocked() bool {
	return s.state == stateLocked
}

// defaultThreshold is substituted by NewFresh / NewFromFile when the
// caller passes threshold == 0.
func defaultThreshold() int {
	return env.ShamirThresholdVal()
}

// defaultICBWidth is substituted by NewFresh / NewFromFile when the
// caller passes icbWidth == -1.
func defaultICBWidth() int {
	return env.ICBWidthVal()
}
