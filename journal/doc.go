// Package journal provides audit logging for the password store.
//
// It records security-relevant events — account creation, login
// attempts, suspected break-ins, unlock attempts, and store loads — as
// structured JSON entries, each carrying a unique trail ID for
// correlation.
//
// Key types:
//
//   - AuditEntry: a single audit event with fields for component, user
//     ID, action, state, and duration.
//   - AuditAction: the store operation being audited (account-created,
//     login-attempted, break-in-suspected, unlock-attempted/succeeded/
//     failed, store-loaded, store-persisted).
//   - AuditState: the outcome (audit-entry-created, audit-success,
//     audit-errored).
//
// Audit entries are written as JSON objects to stderr, one per line:
//
//	{"time":"2026-01-15T10:30:00Z","audit":{"Component":"store","TrailID":"...","Timestamp":"0001-01-01T00:00:00Z","UserID":"alice","Action":"account-created","State":"","Err":"","Duration":0}}
//
// If JSON marshaling fails, the package calls log.FatalLn to terminate,
// since an unrecorded audit event is treated as a security failure.
package journal
