package store

import (
	"github.com/deepali-gupta/polypasswordhasher/config/env"
	"github.com/deepali-gupta/polypasswordhasher/crypto"
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
)

// createSecret generates a fresh 32-byte secret and its integrity
// fingerprint, H^R(secret), where R is the configured recombination
// iteration count.
func createSecret() ([]byte, [32]byte, *pphErrors.Error) {
	secret, err := crypto.NewSecret()
	if err != nil {
		return nil, [32]byte{}, pphErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
	}
	var fingerprint [32]byte
	copy(fingerprint[:], crypto.IteratedHash(secret, env.RecombinationIterationsVal()))
	return secret, fingerprint, nil
}

// verifySecret reports whether candidate's iterated hash matches the
// store's recorded integrity fingerprint, in constant time.
func (s *Store) verifySecret(candidate []byte) bool {
	computed := crypto.IteratedHash(candidate, env.RecombinationIterationsVal())
	return crypto.ConstantTimeEqual(computed, s.fingerprint[:])
}

// icb computes the isolated-check suffix of a salted hash: the last
// ICBWidth bytes of H^I(h), where I is the configured ICB iteration
// count. Returns an empty slice when ICBWidth is 0.
func (s *Store) icb(h []byte) []byte {
	if s.ICBWidth == 0 {
		return nil
	}
	full := crypto.IteratedHash(h, env.ICBIterationsVal())
	return full[len(full)-s.ICBWidth:]
}
