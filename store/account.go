package store

// Share number sentinels. Protector records use the positive range
// 1..254; bootstrap and shielded records use the two reserved values
// below.
const (
	ShareNumberBootstrap int16 = -1
	ShareNumberShielded  int16 = 0

	maxProtectorShare = 254
)

// Record is one credential slot for a user: a share number, the salt
// mixed into the password hash, and the passhash bytes themselves.
//
// For protector and shielded records, Passhash is a 32-byte core plus a
// trailing b-byte isolated-check suffix; for bootstrap records it is the
// raw 32-byte salted hash with no suffix.
type Record struct {
	ShareNumber int16
	Salt        [16]byte
	Passhash    []byte
}

// Account is every record registered for one username; a user with
// multiple shares holds multiple protector records, all authenticating
// the same password.
type Account struct {
	Records []Record
}

// bootstrapRef names a bootstrap record by (username, index into that
// user's Records slice) rather than holding a pointer into the account
// map, so the ledger never aliases the records it points at.
type bootstrapRef struct {
	username string
	index    int
}
