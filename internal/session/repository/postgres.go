package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/session/domain"
	userdomain "opsboard/backend/internal/user/domain"
	userrepo "opsboard/backend/internal/user/repository"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a session repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// Create persists the session. The session must have Token set.
func (r *PostgresRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.queries.CreateSession(ctx, gen.CreateSessionParams{
		Token:      s.Token,
		UserID:     s.UserID,
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeenAt,
		ExpiresAt:  s.ExpiresAt,
		Ip:         nullString(s.IP),
		UserAgent:  nullString(s.UserAgent),
	})
}

func (r *PostgresRepository) Touch(ctx context.Context, token string, at time.Time) error {
	_, err := r.queries.TouchSession(ctx, gen.TouchSessionParams{Token: token, LastSeenAt: at})
	return err
}

// GetActiveUser joins the session to its user in one statement, filtering on expires_at > now.
// Returns nil when the token is unknown or expired.
func (r *PostgresRepository) GetActiveUser(ctx context.Context, token string, now time.Time) (*userdomain.User, error) {
	row, err := r.queries.GetSessionUser(ctx, gen.GetSessionUserParams{Token: token, ExpiresAt: now})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return userrepo.SessionRowToDomain(&row)
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	return r.queries.DeleteSession(ctx, token)
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.queries.DeleteExpiredSessions(ctx, now)
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return r.queries.DeleteUserSessions(ctx, userID)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
