package mem

import (
	"testing"
)

func TestClearRawBytes(t *testing.T) {
	// shieldedKeyBuf stands in for the struct a recovered secret is held
	// in before it is installed as a store's shielded key.
	type shieldedKeyBuf struct {
		Key     [32]byte
		Version int64
	}

	key := [32]byte{}
	for i := range key {
		key[i] = byte(i + 1)
	}

	buf := &shieldedKeyBuf{
		Key:     key,
		Version: 12345,
	}

	ClearRawBytes(buf)

	for i, b := range buf.Key {
		if b != 0 {
			t.Errorf("Expected byte at index %d to be 0, got %d", i, b)
		}
	}

	if buf.Version != 0 {
		t.Errorf("Expected Version to be 0, got %d", buf.Version)
	}
}

func TestClearBytes(t *testing.T) {
	// Stands in for a scratch salted-hash buffer produced mid-login.
	h := make([]byte, 32)
	for i := range h {
		h[i] = byte(i + 1)
	}

	original := make([]byte, len(h))
	copy(original, h)

	for i, b := range h {
		if b != original[i] {
			t.Fatalf("test setup issue: bytes changed before ClearBytes call")
		}
	}

	ClearBytes(h)

	for i, b := range h {
		if b != 0 {
			t.Errorf("Expected byte at index %d to be 0, got %d", i, b)
		}
	}
}

func TestZeroed32(t *testing.T) {
	var zero [32]byte
	if !Zeroed32(&zero) {
		t.Fatalf("expected all-zero array to report Zeroed32 == true")
	}

	nonZero := [32]byte{}
	nonZero[17] = 1
	if Zeroed32(&nonZero) {
		t.Fatalf("expected array with a nonzero byte to report Zeroed32 == false")
	}
}
