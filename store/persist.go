package store

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/journal"
)

const formatVersion byte = 0x01

// WritePasswordData serializes the locked subset of the store — the
// integrity fingerprint, the ICB width, and every account's records — to
// path as a deterministic byte stream. The shielded key and the share
// engine's polynomial coefficients are never written.
//
// Valid only once next_share exceeds the threshold; otherwise the file
// would not carry enough protector shares to ever be recoverable.
func (s *Store) WritePasswordData(path string) *pphErrors.Error {
	if s.nextShare <= s.Threshold {
		return pphErrors.ErrUnderThreshold.Clone()
	}

	var buf bytes.Buffer
	buf.WriteByte(formatVersion)
	buf.WriteByte(byte(s.ICBWidth))
	buf.Write(s.fingerprint[:])

	usernames := make([]string, 0, len(s.accounts))
	for user := range s.accounts {
		usernames = append(usernames, user)
	}
	sort.Strings(usernames)

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(usernames)))
	buf.Write(count[:])

	for _, user := range usernames {
		account := s.accounts[user]

		var ulen [2]byte
		binary.LittleEndian.PutUint16(ulen[:], uint16(len(user)))
		buf.Write(ulen[:])
		buf.WriteString(user)

		buf.WriteByte(byte(len(account.Records)))

		for _, record := range account.Records {
			buf.WriteByte(byte(int8(record.ShareNumber)))
			buf.Write(record.Salt[:])

			var plen [2]byte
			binary.LittleEndian.PutUint16(plen[:], uint16(len(record.Passhash)))
			buf.Write(plen[:])
			buf.Write(record.Passhash)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return pphErrors.ErrFSFileOpenFailed.Wrap(err)
	}

	journal.Audit(journal.AuditEntry{
		Component: "store",
		Action:    journal.AuditStorePersisted,
		State:     journal.AuditSuccess,
	})
	return nil
}

// NewFromFile loads a previously persisted store, rebuilding it into the
// locked state: any protector records it contains can be used toward an
// Unlock call, but the shielded key and share engine are absent until
// that succeeds. threshold must match what the file was written with; a
// mismatched threshold manifests as ErrBadUnlock during a later Unlock
// rather than as a load-time error, since the file does not carry the
// threshold itself. icbWidth is checked against the width recorded in
// the file and rejected with ErrBadFormat on mismatch, since ICB width
// is persisted and cannot be changed without re-deriving every record.
//
// As with NewFresh, threshold == 0 and icbWidth == -1 fall back to the
// environment-variable defaults.
func NewFromFile(path string, threshold, icbWidth int) (*Store, *pphErrors.Error) {
	if threshold == 0 {
		threshold = defaultThreshold()
	}
	if icbWidth == -1 {
		icbWidth = defaultICBWidth()
	}
	if threshold < 1 || threshold > 255 {
		return nil, pphErrors.ErrDataInvalidInput.Clone()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pphErrors.ErrFSFileOpenFailed.Wrap(err)
	}

	s, decErr := decodeStore(data, threshold, icbWidth)
	if decErr != nil {
		return nil, decErr
	}

	journal.Audit(journal.AuditEntry{
		Component: "store",
		Action:    journal.AuditStoreLoaded,
		State:     journal.AuditSuccess,
	})
	return s, nil
}

func decodeStore(data []byte, threshold, icbWidth int) (*Store, *pphErrors.Error) {
	r := bytes.NewReader(data)

	version, err := r.ReadByte()
	if err != nil || version != formatVersion {
		return nil, pphErrors.ErrBadFormat.Clone()
	}

	fileICBWidth, err := r.ReadByte()
	if err != nil {
		return nil, pphErrors.ErrBadFormat.Clone()
	}
	if int(fileICBWidth) != icbWidth {
		return nil, pphErrors.ErrBadFormat.Clone()
	}

	var fingerprint [32]byte
	if _, err := io.ReadFull(r, fingerprint[:]); err != nil {
		return nil, pphErrors.ErrBadFormat.Clone()
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, pphErrors.ErrBadFormat.Clone()
	}
	accountCount := binary.LittleEndian.Uint32(countBuf[:])

	accounts := make(map[string]*Account, accountCount)
	maxShare := -1

	for i := uint32(0); i < accountCount; i++ {
		var ulen [2]byte
		if _, err := io.ReadFull(r, ulen[:]); err != nil {
			return nil, pphErrors.ErrBadFormat.Clone()
		}
		nameBytes := make([]byte, binary.LittleEndian.Uint16(ulen[:]))
		if _, err := io.ReadFull(r, nameBytes); err != nil {
			return nil, pphErrors.ErrBadFormat.Clone()
		}

		recordCount, err := r.ReadByte()
		if err != nil {
			return nil, pphErrors.ErrBadFormat.Clone()
		}

		records := make([]Record, recordCount)
		for j := 0; j < int(recordCount); j++ {
			snByte, err := r.ReadByte()
			if err != nil {
				return nil, pphErrors.ErrBadFormat.Clone()
			}
			sn := int16(int8(snByte))

			var salt [16]byte
			if _, err := io.ReadFull(r, salt[:]); err != nil {
				return nil, pphErrors.ErrBadFormat.Clone()
			}

			var plen [2]byte
			if _, err := io.ReadFull(r, plen[:]); err != nil {
				return nil, pphErrors.ErrBadFormat.Clone()
			}
			passhash := make([]byte, binary.LittleEndian.Uint16(plen[:]))
			if _, err := io.ReadFull(r, passhash); err != nil {
				return nil, pphErrors.ErrBadFormat.Clone()
			}

			records[j] = Record{ShareNumber: sn, Salt: salt, Passhash: passhash}
			if sn >= 1 && int(sn) > maxShare {
				maxShare = int(sn)
			}
		}

		accounts[string(nameBytes)] = &Account{Records: records}
	}

	// No protector records at all clamps next_share to 255, per the
	// reference implementation's handling of an all-bootstrap/shielded
	// account set: no further protector shares can be allocated.
	var nextShare int
	if maxShare < 0 {
		nextShare = 255
	} else {
		nextShare = maxShare + 1
		if nextShare > 255 {
			nextShare = 255
		}
	}

	return &Store{
		Threshold:   threshold,
		ICBWidth:    int(fileICBWidth),
		state:       stateLocked,
		nextShare:   nextShare,
		accounts:    accounts,
		fingerprint: fingerprint,
	}, nil
}
