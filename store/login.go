package store

import (
	"github.com/deepali-gupta/polypasswordhasher/crypto"
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/journal"
	"github.com/deepali-gupta/polypasswordhasher/security/mem"
)

// IsValidLogin reports whether password is correct for user.
//
// While locked, the verdict comes only from the isolated-check bits
// (ICB) suffix of each record — a narrow, intentionally leaky signal
// available before the secret is recoverable. ErrStillBootstrapping is
// returned instead of a verdict when ICBWidth is 0, since no check is
// possible at all in that configuration.
//
// While unlocked, shielded records are checked by decrypting the stored
// core and comparing it to the salted hash; protector records are
// checked by re-deriving the share and validating it against the share
// engine. A record whose ICB suffix matches but whose full check fails
// is logged as a suspected break-in: a narrower signal matched while the
// stronger one did not, which should never happen for a genuine
// password guess.
//
// A locked store with ICBWidth 0 can issue no verdict at all — not even
// for a bootstrap account whose own record is directly comparable — so
// that case is rejected with ErrStillBootstrapping before the username
// is even looked up.
func (s *Store) IsValidLogin(user, password string) (bool, *pphErrors.Error) {
	if s.IsLocked() && s.ICBWidth == 0 {
		return false, pphErrors.ErrStillBootstrapping.Clone()
	}

	account, exists := s.accounts[user]
	if !exists {
		return false, pphErrors.ErrUnknownUser.Clone()
	}

	for _, record := range account.Records {
		h := saltedHash(record.Salt[:], password)

		if record.ShareNumber == ShareNumberBootstrap {
			match := crypto.ConstantTimeEqual(h, record.Passhash)
			mem.ClearBytes(h)
			if match {
				return true, nil
			}
			continue
		}

		core, suffix := splitPasshash(record.Passhash, s.ICBWidth)
		icbMatch := s.ICBWidth > 0 && crypto.ConstantTimeEqual(s.icb(h), suffix)

		if s.IsLocked() {
			mem.ClearBytes(h)
			if icbMatch {
				return true, nil
			}
			continue
		}

		fullMatch := s.checkUnlockedRecord(record, core, h)
		mem.ClearBytes(h)
		if fullMatch {
			return true, nil
		}
		if icbMatch {
			journal.Audit(journal.AuditEntry{
				Component: "store",
				Action:    journal.AuditBreakInSuspected,
				UserID:    user,
				State:     journal.AuditErrored,
			})
		}
	}

	return false, nil
}

// checkUnlockedRecord validates a shielded or protector record against
// the freshly computed salted hash h, with the engine and shielded key
// only available while unlocked.
func (s *Store) checkUnlockedRecord(record Record, core, h []byte) bool {
	if record.ShareNumber == ShareNumberShielded {
		decrypted, err := crypto.DecryptECB(s.shieldedKey, core)
		if err != nil {
			return false
		}
		match := crypto.ConstantTimeEqual(decrypted, h)
		mem.ClearBytes(decrypted)
		return match
	}

	candidate := crypto.XOR(core, h)
	match := s.engine.IsValidShare(int(record.ShareNumber), candidate)
	mem.ClearBytes(candidate)
	return match
}

// splitPasshash separates a record's passhash into its fixed-size core
// and trailing isolated-check suffix of the given width.
func splitPasshash(passhash []byte, icbWidth int) (core, suffix []byte) {
	if icbWidth == 0 {
		return passhash, nil
	}
	return passhash[:len(passhash)-icbWidth], passhash[len(passhash)-icbWidth:]
}
