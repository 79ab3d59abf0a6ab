package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	logger "github.com/deepali-gupta/polypasswordhasher/log"
)

// AuditState is the outcome recorded against an audit entry.
type AuditState string

const AuditEntryCreated AuditState = "audit-entry-created"
const AuditErrored AuditState = "audit-errored"
const AuditSuccess AuditState = "audit-success"

// AuditAction names the store operation an audit entry describes.
type AuditAction string

const AuditAccountCreated AuditAction = "account-created"
const AuditLoginAttempted AuditAction = "login-attempted"
const AuditBreakInSuspected AuditAction = "break-in-suspected"
const AuditUnlockAttempted AuditAction = "unlock-attempted"
const AuditUnlockSucceeded AuditAction = "unlock-succeeded"
const AuditUnlockFailed AuditAction = "unlock-failed"
const AuditStoreLoaded AuditAction = "store-loaded"
const AuditStorePersisted AuditAction = "store-persisted"

// AuditEntry represents a single audit log entry describing an action
// taken against the store.
type AuditEntry struct {
	// Component is the name of the component that performed the action.
	Component string

	// TrailID uniquely identifies this audit entry. Generated by Audit
	// when left blank.
	TrailID string

	// Timestamp indicates when the audited action occurred.
	Timestamp time.Time

	// UserID identifies the account the action concerns.
	UserID string

	// Action describes what operation was performed.
	Action AuditAction

	// State represents the outcome of the action.
	State AuditState

	// Err contains an error message if the action failed.
	Err string

	// Duration is the time taken to process the action.
	Duration time.Duration
}

type AuditLogLine struct {
	Timestamp  time.Time  `json:"time"`
	AuditEntry AuditEntry `json:"audit"`
}

// Audit logs an audit entry as JSON to stderr. A blank TrailID is filled
// in with a fresh random identifier. If JSON marshaling fails, it logs a
// fatal error, since an audit trail that cannot be written is treated as
// a security failure rather than something to continue past.
func Audit(entry AuditEntry) {
	if entry.TrailID == "" {
		entry.TrailID = uuid.NewString()
	}

	audit := AuditLogLine{
		Timestamp:  time.Now(),
		AuditEntry: entry,
	}

	body, err := json.Marshal(audit)
	if err != nil {
		logger.FatalLn("Audit",
			"message", "problem marshalling audit entry",
			"err", err.Error())
		return
	}

	// Audit logs go to stderr, separate from application output, so log
	// aggregators can distinguish them from regular logs.
	_, _ = fmt.Fprintln(os.Stderr, string(body))
}
