// Package env provides environment variable configuration for the
// password store. It defines constants for every recognized environment
// variable and utility functions to read and parse them with sensible
// defaults.
//
// The package covers configuration for:
//   - Shamir secret sharing (default shares, default threshold)
//   - Isolated-check bits (width, iteration count)
//   - The integrity fingerprint (recombination iteration count)
//   - Per-account salt size
//   - Logging level and fatal-error stack traces
//
// The threshold and ICB width defaults are read when a Store is
// constructed. The salt size and the ICB and recombination iteration
// counts are read each time an operation uses them, so changing those
// variables after a Store has been built affects its later operations.
package env
