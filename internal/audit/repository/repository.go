package repository

import (
	"context"

	"opsboard/backend/internal/audit/domain"
	"opsboard/backend/internal/platform/scope"
)

// Repository defines persistence for audit logs.
type Repository interface {
	Create(ctx context.Context, a *domain.AuditLog) error
	// ListByUser returns the owner's most recent events, newest first.
	ListByUser(ctx context.Context, owner scope.Owner, limit int32) ([]*domain.AuditLog, error)
}
