package domain

import "time"

// Auth event actions.
const (
	ActionRegister     = "register"
	ActionLoginSuccess = "login_success"
	ActionLoginFailure = "login_failure"
	ActionLogout       = "logout"
)

// ResourceAuth is the resource recorded for authentication events.
const ResourceAuth = "auth"

// AuditLog represents an audit event. UserID is empty for events with no known user
// (e.g. a failed login for an unknown email).
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Resource  string
	IP        string
	Metadata  string
	CreatedAt time.Time
}
