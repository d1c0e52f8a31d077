package domain

import "time"

// DefaultTTL is the lifetime of a new session.
const DefaultTTL = 30 * 24 * time.Hour

// Session is a server-side login session keyed by its opaque token.
// ExpiresAt is fixed at creation; activity only moves LastSeenAt.
type Session struct {
	Token      string
	UserID     string
	CreatedAt  time.Time
	LastSeenAt time.Time
	ExpiresAt  time.Time
	IP         string
	UserAgent  string
}

// Active reports whether the session is usable at now.
func (s *Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
