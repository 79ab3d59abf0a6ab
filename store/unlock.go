package store

import (
	"github.com/deepali-gupta/polypasswordhasher/crypto"
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/journal"
	"github.com/deepali-gupta/polypasswordhasher/security/mem"
	"github.com/deepali-gupta/polypasswordhasher/shares"
)

// Login is one username/password pair submitted toward an Unlock call.
type Login struct {
	User     string
	Password string
}

// Unlock attempts to recover the store's secret from the shares implied
// by logins and, on success, transitions the store from locked to
// unlocked.
//
// Each login's protector records yield one candidate share; the
// collected shares are run through the Berlekamp-Welch recovery in the
// shares package, which tolerates some of them being wrong. If the
// recovered secret's fingerprint checks out, every bootstrap record
// created while locked is re-encoded in place as a shielded record under
// the recovered secret, the bootstrap ledger is cleared, and the store
// becomes unlocked. On any failure the store is left untouched and still
// locked.
func (s *Store) Unlock(logins []Login) *pphErrors.Error {
	if !s.IsLocked() {
		return pphErrors.ErrAlreadyUnlocked.Clone()
	}

	submitted, err := s.candidateShares(logins)
	if err != nil {
		return err
	}

	secret, recErr := shares.Recover(s.Threshold, submitted)
	if recErr != nil {
		journal.Audit(journal.AuditEntry{
			Component: "store",
			Action:    journal.AuditUnlockFailed,
			State:     journal.AuditErrored,
			Err:       recErr.Error(),
		})
		return recErr
	}

	if !s.verifySecret(secret) {
		mem.ClearBytes(secret)
		journal.Audit(journal.AuditEntry{
			Component: "store",
			Action:    journal.AuditUnlockFailed,
			State:     journal.AuditErrored,
			Err:       pphErrors.ErrBadUnlock.Error(),
		})
		return pphErrors.ErrBadUnlock.Clone()
	}

	engine, engErr := shares.New(s.Threshold, secret)
	if engErr != nil {
		mem.ClearBytes(secret)
		return engErr
	}

	if err := s.reencodeBootstrapRecords(secret); err != nil {
		mem.ClearBytes(secret)
		return err
	}

	s.shieldedKey = secret
	s.engine = engine
	s.bootstrap = nil
	s.state = stateUnlocked

	journal.Audit(journal.AuditEntry{
		Component: "store",
		Action:    journal.AuditUnlockSucceeded,
		State:     journal.AuditSuccess,
	})
	return nil
}

// candidateShares recomputes one share per protector record of each
// login's user, skipping bootstrap and shielded records which never
// carry a recoverable share.
func (s *Store) candidateShares(logins []Login) ([]shares.Share, *pphErrors.Error) {
	var submitted []shares.Share

	for _, login := range logins {
		account, exists := s.accounts[login.User]
		if !exists {
			return nil, pphErrors.ErrUnknownUser.Clone()
		}

		for _, record := range account.Records {
			if record.ShareNumber == ShareNumberBootstrap ||
				record.ShareNumber == ShareNumberShielded {
				continue
			}

			h := saltedHash(record.Salt[:], login.Password)
			core, _ := splitPasshash(record.Passhash, s.ICBWidth)
			candidate := crypto.XOR(core, h)
			mem.ClearBytes(h)

			submitted = append(submitted, shares.Share{
				X: int(record.ShareNumber),
				Y: candidate,
			})
		}
	}

	return submitted, nil
}

// reencodeBootstrapRecords converts every bootstrap record created while
// locked into a shielded record under the newly recovered secret. Each
// bootstrap record already holds the raw salted hash as its passhash, so
// no password is needed here.
func (s *Store) reencodeBootstrapRecords(secret []byte) *pphErrors.Error {
	for _, ref := range s.bootstrap {
		account := s.accounts[ref.username]
		record := &account.Records[ref.index]

		h := record.Passhash
		core, err := crypto.EncryptECB(secret, h)
		if err != nil {
			return pphErrors.ErrGeneralFailure.Wrap(err)
		}

		record.ShareNumber = ShareNumberShielded
		record.Passhash = append(core, s.icb(h)...)
	}
	return nil
}
