package repository

import (
	"context"
	"database/sql"

	"opsboard/backend/internal/audit/domain"
	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/platform/scope"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns an audit log repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// Create persists the audit log. The audit log must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	return r.queries.CreateAuditLog(ctx, gen.CreateAuditLogParams{
		ID:        a.ID,
		UserID:    sql.NullString{String: a.UserID, Valid: a.UserID != ""},
		Action:    a.Action,
		Resource:  a.Resource,
		Ip:        a.IP,
		Metadata:  sql.NullString{String: a.Metadata, Valid: a.Metadata != ""},
		CreatedAt: a.CreatedAt,
	})
}

func (r *PostgresRepository) ListByUser(ctx context.Context, owner scope.Owner, limit int32) ([]*domain.AuditLog, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	list, err := r.queries.ListAuditLogsByUser(ctx, gen.ListAuditLogsByUserParams{
		UserID: sql.NullString{String: owner.UserID(), Valid: true},
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.AuditLog, len(list))
	for i := range list {
		out[i] = genAuditLogToDomain(&list[i])
	}
	return out, nil
}

func genAuditLogToDomain(a *gen.AuditLog) *domain.AuditLog {
	if a == nil {
		return nil
	}
	return &domain.AuditLog{
		ID:        a.ID,
		UserID:    a.UserID.String,
		Action:    a.Action,
		Resource:  a.Resource,
		IP:        a.Ip,
		Metadata:  a.Metadata.String,
		CreatedAt: a.CreatedAt,
	}
}
