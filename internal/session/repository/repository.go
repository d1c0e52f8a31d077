package repository

import (
	"context"
	"time"

	"opsboard/backend/internal/session/domain"
	userdomain "opsboard/backend/internal/user/domain"
)

// Repository defines persistence for sessions.
type Repository interface {
	Create(ctx context.Context, s *domain.Session) error
	// Touch moves last_seen_at forward to at. Never moves it backwards and never changes expires_at.
	// Touching a missing token is not an error.
	Touch(ctx context.Context, token string, at time.Time) error
	// GetActiveUser returns the user owning token when the session expires after now, or nil.
	GetActiveUser(ctx context.Context, token string, now time.Time) (*userdomain.User, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
