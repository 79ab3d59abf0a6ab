package errors

//
// Store lifecycle and operation errors — spec.md §7 taxonomy.
//

// ErrDuplicateUser is returned by CreateAccount when the username already
// has at least one record in the store.
var ErrDuplicateUser = register("duplicate_user", "user already exists", nil)

// ErrUnknownUser is returned by IsValidLogin and Unlock when the username
// has no records in the store.
var ErrUnknownUser = register("unknown_user", "unknown user", nil)

// ErrShareExhausted is returned by CreateAccount when the requested share
// count is out of range, or would push next_share past 255.
var ErrShareExhausted = register("share_exhausted", "share allocation exhausted", nil)

// ErrBootstrapOnly is returned by CreateAccount when the store is locked
// and the caller requested shares > 0 (only bootstrap accounts, with
// shares == 0, may be created while locked).
var ErrBootstrapOnly = register("bootstrap_only", "store is locked; only bootstrap accounts (shares=0) may be created", nil)

// ErrStillBootstrapping is returned by IsValidLogin when the store is
// locked and isolated-check bits are disabled (b == 0), so no verdict can
// be produced at all.
var ErrStillBootstrapping = register("still_bootstrapping", "store is locked and isolated validation is disabled", nil)

// ErrUnderThreshold is returned by WritePasswordData when next_share does
// not yet exceed the threshold, meaning the file would be unrecoverable.
var ErrUnderThreshold = register("under_threshold", "not enough protector shares allocated to write a recoverable file", nil)

// ErrInsufficientShares is returned by the share engine's Recover when
// fewer than k shares were submitted.
var ErrInsufficientShares = register("insufficient_shares", "fewer shares submitted than the threshold requires", nil)

// ErrUnrecoverableShares is returned by the share engine's Recover when the
// submitted shares contain more errors than its correction capacity, or
// the decode equations are inconsistent.
var ErrUnrecoverableShares = register("unrecoverable_shares", "submitted shares could not be reconciled to a single secret", nil)

// ErrBadUnlock is returned by Unlock when a secret was recovered but does
// not match the store's integrity fingerprint.
var ErrBadUnlock = register("bad_unlock", "recovered secret failed integrity verification", nil)

// ErrAlreadyUnlocked is returned by Unlock when called on a store that is
// not in the locked state.
var ErrAlreadyUnlocked = register("already_unlocked", "store is already unlocked", nil)

// ErrBadFormat is returned by NewFromFile when the persisted file carries
// an unrecognized version tag or is otherwise structurally invalid.
var ErrBadFormat = register("bad_format", "unrecognized or corrupt password file format", nil)

//
// General-purpose errors used by internal helpers.
//

// ErrGeneralFailure is a catch-all for conditions with no more specific
// sentinel, and the fallback value returned by FromCode for unknown codes.
var ErrGeneralFailure = register("general_failure", "general failure", nil)

// ErrDataInvalidInput flags a malformed argument that does not map to one
// of the domain-specific sentinels above.
var ErrDataInvalidInput = register("data_invalid_input", "invalid input", nil)

// ErrCryptoRandomGenerationFailed is returned when the CSPRNG fails to
// fill a requested buffer (salt, secret, or polynomial coefficients).
var ErrCryptoRandomGenerationFailed = register("crypto_random_generation_failed", "random generation failed", nil)

// ErrFSFileOpenFailed wraps a failure to open the password file for
// reading or writing.
var ErrFSFileOpenFailed = register("fs_file_open_failed", "failed to open password file", nil)

// ErrFSFileCloseFailed wraps a failure to close the password file after a
// read or write.
var ErrFSFileCloseFailed = register("fs_file_close_failed", "failed to close password file", nil)

// ErrSystemMemLockFailed is returned by security/mem.Lock when the OS
// refuses to pin process memory against swap (insufficient privileges or
// RLIMIT_MEMLOCK too low).
var ErrSystemMemLockFailed = register("system_mem_lock_failed", "failed to lock process memory", nil)
