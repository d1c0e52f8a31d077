package repository

import (
	"context"

	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/prospect/domain"
)

// Repository defines persistence for prospects. Every method is confined to owner's rows;
// a row belonging to another user behaves exactly like a missing one.
type Repository interface {
	List(ctx context.Context, owner scope.Owner) ([]*domain.Prospect, error)
	// Get returns nil if the prospect does not exist for owner.
	Get(ctx context.Context, owner scope.Owner, id string) (*domain.Prospect, error)
	Create(ctx context.Context, owner scope.Owner, p *domain.Prospect) (*domain.Prospect, error)
	// Update returns nil if the prospect does not exist for owner.
	Update(ctx context.Context, owner scope.Owner, p *domain.Prospect) (*domain.Prospect, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, owner scope.Owner, id string) (bool, error)
	Count(ctx context.Context, owner scope.Owner) (int64, error)
}
