package crypto

import "crypto/subtle"

// XOR returns a XOR b. Panics if the slices differ in length; callers
// always XOR same-length salted hashes and share bytes.
func XOR(a, b []byte) []byte {
	if len(a) != len(b) {
		panic("crypto: XOR: operand length mismatch")
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// ConstantTimeEqual reports whether a and b hold the same bytes, in time
// independent of where they first differ. Used for every passhash
// comparison so a failed login cannot be timed to learn which byte of the
// stored hash was wrong.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
