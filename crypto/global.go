package crypto

// AES256KeySize is the key size, in bytes, for AES-256.
const AES256KeySize = 32

// ECBBlockSize is the AES block size in bytes. The store's ECB mode
// always operates on exactly two blocks: one 32-byte salted hash.
const ECBBlockSize = 16

// SecretLength is the size, in bytes, of the master secret protected by
// the share engine and verified by the integrity fingerprint.
const SecretLength = 32
