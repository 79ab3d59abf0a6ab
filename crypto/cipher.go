package crypto

import (
	"crypto/aes"
	"fmt"
)

// EncryptECB encrypts exactly one 32-byte salted hash under key using
// AES-256 in ECB mode: the plaintext is split into two 16-byte blocks and
// each is enciphered independently, with no chaining and no nonce.
//
// ECB leaks equality of identical plaintext blocks across ciphertexts,
// which is normally disqualifying. It is safe here only because the
// plaintext is always a single fixed-length SHA-256 digest salted with a
// per-account random value: no two accounts ever encrypt the same block,
// there is no multi-block structure to correlate, and no larger plaintext
// is ever passed through this function.
func EncryptECB(key, plaintext []byte) ([]byte, error) {
	if len(key) != AES256KeySize {
		return nil, fmt.Errorf("crypto: EncryptECB: key must be %d bytes, got %d", AES256KeySize, len(key))
	}
	if len(plaintext) == 0 || len(plaintext)%ECBBlockSize != 0 {
		return nil, fmt.Errorf("crypto: EncryptECB: plaintext length %d is not a multiple of the block size %d", len(plaintext), ECBBlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(plaintext))
	for offset := 0; offset < len(plaintext); offset += ECBBlockSize {
		block.Encrypt(ciphertext[offset:offset+ECBBlockSize], plaintext[offset:offset+ECBBlockSize])
	}
	return ciphertext, nil
}

// DecryptECB reverses EncryptECB.
func DecryptECB(key, ciphertext []byte) ([]byte, error) {
	if len(key) != AES256KeySize {
		return nil, fmt.Errorf("crypto: DecryptECB: key must be %d bytes, got %d", AES256KeySize, len(key))
	}
	if len(ciphertext) == 0 || len(ciphertext)%ECBBlockSize != 0 {
		return nil, fmt.Errorf("crypto: DecryptECB: ciphertext length %d is not a multiple of the block size %d", len(ciphertext), ECBBlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	for offset := 0; offset < len(ciphertext); offset += ECBBlockSize {
		block.Decrypt(plaintext[offset:offset+ECBBlockSize], ciphertext[offset:offset+ECBBlockSize])
	}
	return plaintext, nil
}
