package repository

import (
	"context"

	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/task/domain"
)

// Repository defines persistence for tasks and task categories, confined to one owner per call.
type Repository interface {
	ListCategories(ctx context.Context, owner scope.Owner) ([]*domain.Category, error)
	// CreateCategory inserts c, or returns the owner's existing category with the same name (case-insensitive).
	CreateCategory(ctx context.Context, owner scope.Owner, c *domain.Category) (*domain.Category, error)
	// CategoryOwned reports whether id is one of owner's categories.
	CategoryOwned(ctx context.Context, owner scope.Owner, id string) (bool, error)
	CountCategories(ctx context.Context, owner scope.Owner) (int64, error)

	// List returns tasks newest-activity first (activated_at, else created_at).
	List(ctx context.Context, owner scope.Owner) ([]*domain.Task, error)
	// Get returns nil if the task does not exist for owner.
	Get(ctx context.Context, owner scope.Owner, id string) (*domain.Task, error)
	Create(ctx context.Context, owner scope.Owner, t *domain.Task) (*domain.Task, error)
	// Update returns nil if the task does not exist for owner.
	Update(ctx context.Context, owner scope.Owner, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, owner scope.Owner, id string) (bool, error)
	Count(ctx context.Context, owner scope.Owner) (int64, error)
}
