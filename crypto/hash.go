package crypto

import "crypto/sha256"

// IteratedHash applies SHA-256 to data, then re-hashes the digest n-1
// more times, for a total of n applications. Used both to derive
// isolated-check bits from a salted hash (n small, e.g. 1000) and to
// derive the integrity fingerprint from a recovered secret (n large,
// e.g. 100000); slowing down recovery makes brute-force guessing of the
// underlying secret from a stolen fingerprint correspondingly slower.
func IteratedHash(data []byte, n int) []byte {
	sum := sha256.Sum256(data)
	digest := sum[:]
	for i := 1; i < n; i++ {
		sum = sha256.Sum256(digest)
		digest = sum[:]
	}
	return digest
}
