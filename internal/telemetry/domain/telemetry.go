package domain

import "time"

// Event is a named, user-attributed occurrence exported as an OTel log record.
// Attributes must never carry passwords or session tokens.
type Event struct {
	Name       string
	UserID     string
	Source     string
	Attributes map[string]string
	At         time.Time
}
