package store

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePasswordData_UnderThreshold(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	path := filepath.Join(t.TempDir(), "f")
	writeErr := s.WritePasswordData(path)
	require.NotNil(t, writeErr)
	assert.True(t, writeErr.Is(pphErrors.ErrUnderThreshold))
}

func TestWriteThenRead_RoundTrips(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)
	require.Nil(t, s.CreateAccount("alice", "kitten", 1))
	require.Nil(t, s.CreateAccount("bob", "puppy", 1))
	require.Nil(t, s.CreateAccount("charlie", "velociraptor", 1))
	require.Nil(t, s.CreateAccount("eve", "iamevil", 0))

	path := filepath.Join(t.TempDir(), "f")
	require.Nil(t, s.WritePasswordData(path))

	reloaded, readErr := NewFromFile(path, 3, 0)
	require.Nil(t, readErr)

	assert.Equal(t, s.fingerprint, reloaded.fingerprint)
	assert.Equal(t, len(s.accounts), len(reloaded.accounts))
	for user, account := range s.accounts {
		reloadedAccount, ok := reloaded.accounts[user]
		require.True(t, ok)
		require.Len(t, reloadedAccount.Records, len(account.Records))
		for i, record := range account.Records {
			assert.Equal(t, record.ShareNumber, reloadedAccount.Records[i].ShareNumber)
			assert.Equal(t, record.Salt, reloadedAccount.Records[i].Salt)
			assert.Equal(t, record.Passhash, reloadedAccount.Records[i].Passhash)
		}
	}

	assert.True(t, reloaded.IsLocked())
	assert.Nil(t, reloaded.shieldedKey)
	assert.Nil(t, reloaded.engine)
}

func TestNewFromFile_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	data := []byte{0x02, 0x00}
	require.NoError(t, writeFixture(path, data))

	_, err := NewFromFile(path, 3, 0)
	require.NotNil(t, err)
	assert.True(t, err.Is(pphErrors.ErrBadFormat))
}

func TestNewFromFile_RejectsICBWidthMismatch(t *testing.T) {
	s, err := NewFresh(3, 2)
	require.Nil(t, err)
	require.Nil(t, s.CreateAccount("alice", "kitten", 3))

	path := filepath.Join(t.TempDir(), "f")
	require.Nil(t, s.WritePasswordData(path))

	_, readErr := NewFromFile(path, 3, 0)
	require.NotNil(t, readErr)
	assert.True(t, readErr.Is(pphErrors.ErrBadFormat))
}

func TestNewFromFile_NextShareRecomputedFromMaxShareNumber(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)
	require.Nil(t, s.CreateAccount("alice", "kitten", 4))

	path := filepath.Join(t.TempDir(), "f")
	require.Nil(t, s.WritePasswordData(path))

	reloaded, readErr := NewFromFile(path, 3, 0)
	require.Nil(t, readErr)
	assert.Equal(t, 5, reloaded.nextShare)
}

func TestDecodeStore_NextShareClampsTo255WithNoProtectorRecords(t *testing.T) {
	// Hand-built fixture with a single shielded (sn=0) record and no
	// protector records at all, since WritePasswordData refuses to
	// persist a store below threshold.
	var buf bytes.Buffer
	buf.WriteByte(formatVersion)
	buf.WriteByte(0) // ICB width

	var fingerprint [32]byte
	buf.Write(fingerprint[:])

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], 1)
	buf.Write(count[:])

	user := "eve"
	var ulen [2]byte
	binary.LittleEndian.PutUint16(ulen[:], uint16(len(user)))
	buf.Write(ulen[:])
	buf.WriteString(user)

	buf.WriteByte(1) // record count

	buf.WriteByte(0) // sn = ShareNumberShielded
	var salt [16]byte
	buf.Write(salt[:])

	passhash := make([]byte, 32)
	var plen [2]byte
	binary.LittleEndian.PutUint16(plen[:], uint16(len(passhash)))
	buf.Write(plen[:])
	buf.Write(passhash)

	locked, decErr := decodeStore(buf.Bytes(), 3, 0)
	require.Nil(t, decErr)
	assert.Equal(t, 255, locked.nextShare)
}

func writeFixture(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}
