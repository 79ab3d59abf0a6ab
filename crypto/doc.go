// Package crypto provides the low-level cryptographic primitives the
// password store builds on.
//
// It includes functionality for:
//   - Generating the random master secret and per-account salts
//   - Iterated SHA-256 hashing, used for both isolated-check bits and the
//     integrity fingerprint
//   - AES-256 in ECB mode, used only to bind a shielded account's salted
//     hash to the master secret
//   - Constant-time byte comparison and XOR, used throughout account
//     validation
//
// All random generation uses crypto/rand, directly or through a
// package-level indirection that tests substitute to exercise failure
// paths.
package crypto
