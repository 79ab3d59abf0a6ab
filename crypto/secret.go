package crypto

import (
	"crypto/rand"
)

// reader is swapped out in tests to exercise CSPRNG failure paths.
var reader = rand.Read

// NewSecret generates a cryptographically secure random 32-byte master
// secret. This is the value the share engine splits into protector shares
// and the shielded-account cipher key is derived from; it is never
// persisted directly.
func NewSecret() ([]byte, error) {
	secret := make([]byte, SecretLength)
	if _, err := reader(secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// NewSalt generates a cryptographically secure random salt of the given
// size, used so that two accounts sharing a password end up with
// different passhash bytes.
func NewSalt(size int) ([]byte, error) {
	salt := make([]byte, size)
	if _, err := reader(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
