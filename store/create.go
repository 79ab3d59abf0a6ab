package store

import (
	"github.com/deepali-gupta/polypasswordhasher/config/env"
	"github.com/deepali-gupta/polypasswordhasher/crypto"
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/journal"
	"github.com/deepali-gupta/polypasswordhasher/security/mem"
)

// saltedHash returns SHA256(salt || password) — a single application of
// the same iterated-hash primitive the integrity fingerprint and ICB
// both build on, with a round count of 1.
func saltedHash(salt []byte, password string) []byte {
	buf := make([]byte, 0, len(salt)+len(password))
	buf = append(buf, salt...)
	buf = append(buf, password...)
	h := crypto.IteratedHash(buf, 1)
	mem.ClearBytes(buf)
	return h
}

// CreateAccount registers a new user. numShares is the number of protector
// shares to allocate (0 creates a bootstrap record while locked, or a
// shielded record while unlocked).
func (s *Store) CreateAccount(user, password string, numShares int) *pphErrors.Error {
	if _, exists := s.accounts[user]; exists {
		return pphErrors.ErrDuplicateUser.Clone()
	}
	if numShares < 0 || numShares > 255 || s.nextShare+numShares > 255 {
		return pphErrors.ErrShareExhausted.Clone()
	}
	if s.IsLocked() && numShares != 0 {
		return pphErrors.ErrBootstrapOnly.Clone()
	}

	var records []Record
	var err *pphErrors.Error

	switch {
	case s.IsLocked():
		records, err = s.newBootstrapRecord(password)
	case numShares == 0:
		records, err = s.newShieldedRecord(password)
	default:
		records, err = s.newProtectorRecords(password, numShares)
	}
	if err != nil {
		return err
	}

	s.accounts[user] = &Account{Records: records}
	if s.IsLocked() {
		s.bootstrap = append(s.bootstrap, bootstrapRef{username: user, index: 0})
	} else if numShares > 0 {
		s.nextShare += numShares
	}

	journal.Audit(journal.AuditEntry{
		Component: "store",
		Action:    journal.AuditAccountCreated,
		UserID:    user,
	})
	return nil
}

func (s *Store) newBootstrapRecord(password string) ([]Record, *pphErrors.Error) {
	salt, err := crypto.NewSalt(env.SaltSizeVal())
	if err != nil {
		return nil, pphErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
	}

	record := Record{ShareNumber: ShareNumberBootstrap, Passhash: saltedHash(salt, password)}
	copy(record.Salt[:], salt)
	return []Record{record}, nil
}

func (s *Store) newShieldedRecord(password string) ([]Record, *pphErrors.Error) {
	salt, err := crypto.NewSalt(env.SaltSizeVal())
	if err != nil {
		return nil, pphErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
	}

	h := saltedHash(salt, password)
	defer mem.ClearBytes(h)

	core, encErr := crypto.EncryptECB(s.shieldedKey, h)
	if encErr != nil {
		return nil, pphErrors.ErrGeneralFailure.Wrap(encErr)
	}

	record := Record{ShareNumber: ShareNumberShielded, Passhash: append(core, s.icb(h)...)}
	copy(record.Salt[:], salt)
	return []Record{record}, nil
}

func (s *Store) newProtectorRecords(password string, numShares int) ([]Record, *pphErrors.Error) {
	records := make([]Record, 0, numShares)
	for x := s.nextShare; x < s.nextShare+numShares; x++ {
		salt, err := crypto.NewSalt(env.SaltSizeVal())
		if err != nil {
			return nil, pphErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
		}

		h := saltedHash(salt, password)
		shareBytes := s.engine.ComputeShare(x)
		passhash := append(crypto.XOR(h, shareBytes), s.icb(h)...)
		mem.ClearBytes(h)

		record := Record{ShareNumber: int16(x), Passhash: passhash}
		copy(record.Salt[:], salt)
		records = append(records, record)
	}
	return records, nil
}
