// Package service manages server-side login sessions: issuing opaque tokens,
// resolving them to users, recording activity and revoking them.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"opsboard/backend/internal/session/domain"
	"opsboard/backend/internal/session/repository"
	userdomain "opsboard/backend/internal/user/domain"
)

// ErrNotFound is returned by Resolve when the token is empty, unknown or expired.
// The three cases are indistinguishable to callers.
var ErrNotFound = errors.New("session not found")

// Store issues and resolves sessions. It holds no per-session state in memory;
// every call goes to the repository.
type Store struct {
	repo     repository.Repository
	ttl      time.Duration
	now      func() time.Time
	newToken func() (string, error)
}

// NewStore returns a Store backed by repo. ttl <= 0 selects domain.DefaultTTL.
func NewStore(repo repository.Repository, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = domain.DefaultTTL
	}
	return &Store{
		repo:     repo,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		newToken: randomToken,
	}
}

// TTL returns the lifetime given to new sessions.
func (s *Store) TTL() time.Duration { return s.ttl }

// randomToken returns a version 4 UUID (122 random bits from crypto/rand).
func randomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Create starts a session for userID. ip and userAgent are optional and stored as given.
func (s *Store) Create(ctx context.Context, userID, ip, userAgent string) (*domain.Session, error) {
	if userID == "" {
		return nil, errors.New("session: user id is required")
	}
	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("session: generate token: %w", err)
	}
	now := s.now()
	sess := &domain.Session{
		Token:      token,
		UserID:     userID,
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(s.ttl),
		IP:         ip,
		UserAgent:  userAgent,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Touch records activity on token. Missing tokens are ignored; expires_at never moves.
func (s *Store) Touch(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.Touch(ctx, token, s.now())
}

// Resolve returns the user owning an active session and records activity on it.
// The read and the touch are separate statements; a concurrent Delete may land between them.
func (s *Store) Resolve(ctx context.Context, token string) (*userdomain.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	now := s.now()
	u, err := s.repo.GetActiveUser(ctx, token, now)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if err := s.repo.Touch(ctx, token, now); err != nil {
		return nil, err
	}
	return u, nil
}

// Lookup returns the user owning an active session without recording activity.
func (s *Store) Lookup(ctx context.Context, token string) (*userdomain.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	u, err := s.repo.GetActiveUser(ctx, token, s.now())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Delete removes the session. Deleting an unknown token succeeds.
func (s *Store) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.Delete(ctx, token)
}

// PurgeExpired removes every session whose expiry has passed and returns how many were removed.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}

// RevokeUser removes all sessions belonging to userID.
func (s *Store) RevokeUser(ctx context.Context, userID string) (int64, error) {
	return s.repo.DeleteByUser(ctx, userID)
}
