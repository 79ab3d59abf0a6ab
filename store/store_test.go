package store

import (
	"os"
	"testing"

	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFresh_StartsUnlockedWithNoAccounts(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)
	assert.False(t, s.IsLocked())
	assert.Equal(t, 1, s.nextShare)
}

func TestNewFresh_RejectsBadThreshold(t *testing.T) {
	_, err := NewFresh(-1, 0)
	require.NotNil(t, err)
	assert.True(t, err.Is(pphErrors.ErrDataInvalidInput))

	_, err = NewFresh(256, 0)
	require.NotNil(t, err)
	assert.True(t, err.Is(pphErrors.ErrDataInvalidInput))
}

func TestNewFresh_SentinelsFallBackToEnvDefaults(t *testing.T) {
	t.Setenv("PPH_SHAMIR_THRESHOLD", "5")
	t.Setenv("PPH_ICB_WIDTH", "4")

	s, err := NewFresh(0, -1)
	require.Nil(t, err)
	assert.Equal(t, 5, s.Threshold)
	assert.Equal(t, 4, s.ICBWidth)
}

func TestCreateAccount_DuplicateUser(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	require.Nil(t, s.CreateAccount("alice", "kitten", 1))
	dupErr := s.CreateAccount("alice", "other", 1)
	require.NotNil(t, dupErr)
	assert.True(t, dupErr.Is(pphErrors.ErrDuplicateUser))
}

func TestCreateAccount_ShareExhausted(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	createErr := s.CreateAccount("alice", "kitten", 256)
	require.NotNil(t, createErr)
	assert.True(t, createErr.Is(pphErrors.ErrShareExhausted))

	createErr = s.CreateAccount("bob", "puppy", 255)
	require.NotNil(t, createErr)
	assert.True(t, createErr.Is(pphErrors.ErrShareExhausted))
}

func TestCreateAccount_ProtectorRecordAdvancesNextShare(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	require.Nil(t, s.CreateAccount("alice", "kitten", 2))
	assert.Equal(t, 3, s.nextShare)

	account := s.accounts["alice"]
	require.Len(t, account.Records, 2)
	assert.Equal(t, int16(1), account.Records[0].ShareNumber)
	assert.Equal(t, int16(2), account.Records[1].ShareNumber)
}

func TestCreateAccount_ShieldedRecordDoesNotAdvanceNextShare(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	require.Nil(t, s.CreateAccount("eve", "iamevil", 0))
	assert.Equal(t, 1, s.nextShare)

	account := s.accounts["eve"]
	require.Len(t, account.Records, 1)
	assert.Equal(t, ShareNumberShielded, account.Records[0].ShareNumber)
}

func TestCreateAccount_BootstrapOnlyWhileLocked(t *testing.T) {
	s := lockedStoreFixture(t, 3, 0)

	createErr := s.CreateAccount("moe", "tadpole", 1)
	require.NotNil(t, createErr)
	assert.True(t, createErr.Is(pphErrors.ErrBootstrapOnly))

	require.Nil(t, s.CreateAccount("stooge", "nyuk", 0))
	assert.Len(t, s.bootstrap, 1)
	assert.Equal(t, bootstrapRef{username: "stooge", index: 0}, s.bootstrap[0])
}

func TestIsValidLogin_UnknownUser(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	_, loginErr := s.IsValidLogin("nobody", "anything")
	require.NotNil(t, loginErr)
	assert.True(t, loginErr.Is(pphErrors.ErrUnknownUser))
}

func TestIsValidLogin_StillBootstrappingBeforeUnknownUserCheck(t *testing.T) {
	s := lockedStoreFixture(t, 3, 0)

	_, loginErr := s.IsValidLogin("nobody", "anything")
	require.NotNil(t, loginErr)
	assert.True(t, loginErr.Is(pphErrors.ErrStillBootstrapping))
}

func TestIsValidLogin_ProtectorAndShieldedRoundTrip(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	require.Nil(t, s.CreateAccount("alice", "kitten", 1))
	require.Nil(t, s.CreateAccount("eve", "iamevil", 0))

	ok, loginErr := s.IsValidLogin("alice", "kitten")
	require.Nil(t, loginErr)
	assert.True(t, ok)

	ok, loginErr = s.IsValidLogin("alice", "wrong")
	require.Nil(t, loginErr)
	assert.False(t, ok)

	ok, loginErr = s.IsValidLogin("eve", "iamevil")
	require.Nil(t, loginErr)
	assert.True(t, ok)
}

func TestIsValidLogin_StillBootstrappingWithoutICB(t *testing.T) {
	s := lockedStoreFixture(t, 3, 0)
	require.Nil(t, s.CreateAccount("stooge", "nyuk", 0))

	_, loginErr := s.IsValidLogin("stooge", "anything")
	require.NotNil(t, loginErr)
	assert.True(t, loginErr.Is(pphErrors.ErrStillBootstrapping))
}

func TestIsValidLogin_BootstrapRecordAlwaysDirectlyComparable(t *testing.T) {
	s := lockedStoreFixture(t, 3, 2)
	require.Nil(t, s.CreateAccount("stooge", "nyuk", 0))

	ok, loginErr := s.IsValidLogin("stooge", "nyuk")
	require.Nil(t, loginErr)
	assert.True(t, ok)

	ok, loginErr = s.IsValidLogin("stooge", "wrong")
	require.Nil(t, loginErr)
	assert.False(t, ok)
}

func TestUnlock_AlreadyUnlocked(t *testing.T) {
	s, err := NewFresh(3, 0)
	require.Nil(t, err)

	unlockErr := s.Unlock(nil)
	require.NotNil(t, unlockErr)
	assert.True(t, unlockErr.Is(pphErrors.ErrAlreadyUnlocked))
}

func TestUnlock_RecombinesSecretAndReencodesBootstrap(t *testing.T) {
	fresh, err := NewFresh(3, 0)
	require.Nil(t, err)
	require.Nil(t, fresh.CreateAccount("alice", "kitten", 1))
	require.Nil(t, fresh.CreateAccount("bob", "puppy", 1))
	require.Nil(t, fresh.CreateAccount("charlie", "velociraptor", 1))

	locked, decErr := decodeStore(encode(t, fresh), 3, 0)
	require.Nil(t, decErr)
	require.Nil(t, locked.CreateAccount("stooge", "nyuk", 0))

	unlockErr := locked.Unlock([]Login{
		{User: "alice", Password: "kitten"},
		{User: "bob", Password: "puppy"},
		{User: "charlie", Password: "velociraptor"},
	})
	require.Nil(t, unlockErr)
	assert.False(t, locked.IsLocked())
	assert.Empty(t, locked.bootstrap)

	stoogeRecord := locked.accounts["stooge"].Records[0]
	assert.Equal(t, ShareNumberShielded, stoogeRecord.ShareNumber)

	ok, loginErr := locked.IsValidLogin("stooge", "nyuk")
	require.Nil(t, loginErr)
	assert.True(t, ok)
}

func TestUnlock_BadPasswordsFailWithoutStateChange(t *testing.T) {
	fresh, err := NewFresh(3, 0)
	require.Nil(t, err)
	require.Nil(t, fresh.CreateAccount("alice", "kitten", 1))
	require.Nil(t, fresh.CreateAccount("bob", "puppy", 1))
	require.Nil(t, fresh.CreateAccount("charlie", "velociraptor", 1))

	locked, decErr := decodeStore(encode(t, fresh), 3, 0)
	require.Nil(t, decErr)

	unlockErr := locked.Unlock([]Login{
		{User: "alice", Password: "wrong"},
		{User: "bob", Password: "wrong"},
		{User: "charlie", Password: "wrong"},
	})
	require.NotNil(t, unlockErr)
	assert.True(t, locked.IsLocked())
}

// lockedStoreFixture builds a fresh store, persists it, and reloads it so
// the returned store starts in the locked state.
func lockedStoreFixture(t *testing.T, threshold, icbWidth int) *Store {
	t.Helper()
	fresh, err := NewFresh(threshold, icbWidth)
	require.Nil(t, err)
	require.Nil(t, fresh.CreateAccount("alice", "kitten", threshold))

	locked, decErr := decodeStore(encode(t, fresh), threshold, icbWidth)
	require.Nil(t, decErr)
	return locked
}

func encode(t *testing.T, s *Store) []byte {
	t.Helper()
	path := t.TempDir() + "/f"
	require.Nil(t, s.WritePasswordData(path))
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	return data
}
