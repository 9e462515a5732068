package models

// Audit actions. The labels match the lab's historical history_log exports.
const (
	ActionCreated = "CREATED"
	ActionUpdated = "UPDATE"
	ActionDeleted = "DELETED"
)

// AuditEntry represents one audit log row. The log is append-only and kept
// newest first.
type AuditEntry struct {
	Time   string `json:"time"` // YYYY-MM-DD HH:MM:SS
	Asset  string `json:"asset"`
	Action string `json:"action"` // CREATED, UPDATE, DELETED
	Detail string `json:"detail"`
}
