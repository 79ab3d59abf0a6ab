// Package shares implements the protector-share half of the store: an
// Engine splits a 32-byte master secret into share values over GF(2^8)
// under a k-out-of-n threshold, and Recover reconstructs the secret from
// submitted shares, correcting a minority of wrong submissions via
// Berlekamp-Welch decoding instead of merely detecting them.
package shares
