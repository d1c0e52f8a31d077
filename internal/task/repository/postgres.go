package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/task/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a task repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

func (r *PostgresRepository) ListCategories(ctx context.Context, owner scope.Owner) ([]*domain.Category, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	rows, err := r.queries.ListTaskCategories(ctx, owner.UserID())
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Category, len(rows))
	for i := range rows {
		out[i] = genCategoryToDomain(&rows[i])
	}
	return out, nil
}

// CreateCategory relies on ON CONFLICT DO NOTHING; a conflict yields no row, so the existing one is fetched.
func (r *PostgresRepository) CreateCategory(ctx context.Context, owner scope.Owner, c *domain.Category) (*domain.Category, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	row, err := r.queries.CreateTaskCategory(ctx, gen.CreateTaskCategoryParams{
		ID:        c.ID,
		UserID:    owner.UserID(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	})
	if errors.Is(err, sql.ErrNoRows) {
		row, err = r.queries.GetTaskCategoryByName(ctx, gen.GetTaskCategoryByNameParams{UserID: owner.UserID(), Lower: c.Name})
	}
	if err != nil {
		return nil, err
	}
	return genCategoryToDomain(&row), nil
}

func (r *PostgresRepository) CategoryOwned(ctx context.Context, owner scope.Owner, id string) (bool, error) {
	if err := owner.Check(); err != nil {
		return false, err
	}
	return r.queries.TaskCategoryOwned(ctx, gen.TaskCategoryOwnedParams{ID: id, UserID: owner.UserID()})
}

func (r *PostgresRepository) CountCategories(ctx context.Context, owner scope.Owner) (int64, error) {
	if err := owner.Check(); err != nil {
		return 0, err
	}
	return r.queries.CountTaskCategories(ctx, owner.UserID())
}

func (r *PostgresRepository) List(ctx context.Context, owner scope.Owner) ([]*domain.Task, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	rows, err := r.queries.ListTasks(ctx, owner.UserID())
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Task, len(rows))
	for i := range rows {
		out[i] = genTaskToDomain(&rows[i])
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner scope.Owner, id string) (*domain.Task, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	t, err := r.queries.GetTask(ctx, gen.GetTaskParams{ID: id, UserID: owner.UserID()})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genTaskToDomain(&t), nil
}

func (r *PostgresRepository) Create(ctx context.Context, owner scope.Owner, t *domain.Task) (*domain.Task, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	row, err := r.queries.CreateTask(ctx, gen.CreateTaskParams{
		ID:          t.ID,
		UserID:      owner.UserID(),
		CategoryID:  nullString(t.CategoryID),
		Title:       t.Title,
		Description: nullString(t.Description),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     nullTime(t.DueDate),
		ActivatedAt: nullTime(t.ActivatedAt),
		CompletedAt: nullTime(t.CompletedAt),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	return genTaskToDomain(&row), nil
}

func (r *PostgresRepository) Update(ctx context.Context, owner scope.Owner, t *domain.Task) (*domain.Task, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	row, err := r.queries.UpdateTask(ctx, gen.UpdateTaskParams{
		ID:          t.ID,
		UserID:      owner.UserID(),
		CategoryID:  nullString(t.CategoryID),
		Title:       t.Title,
		Description: nullString(t.Description),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     nullTime(t.DueDate),
		ActivatedAt: nullTime(t.ActivatedAt),
		CompletedAt: nullTime(t.CompletedAt),
		UpdatedAt:   t.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genTaskToDomain(&row), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner scope.Owner, id string) (bool, error) {
	if err := owner.Check(); err != nil {
		return false, err
	}
	n, err := r.queries.DeleteTask(ctx, gen.DeleteTaskParams{ID: id, UserID: owner.UserID()})
	return n > 0, err
}

func (r *PostgresRepository) Count(ctx context.Context, owner scope.Owner) (int64, error) {
	if err := owner.Check(); err != nil {
		return 0, err
	}
	return r.queries.CountTasks(ctx, owner.UserID())
}

func genCategoryToDomain(c *gen.TaskCategory) *domain.Category {
	return &domain.Category{ID: c.ID, UserID: c.UserID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func genTaskToDomain(t *gen.Task) *domain.Task {
	return &domain.Task{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID.String,
		Title:       t.Title,
		Description: t.Description.String,
		Priority:    domain.Priority(t.Priority),
		Status:      domain.Status(t.Status),
		DueDate:     nullTimeToPtr(t.DueDate),
		ActivatedAt: nullTimeToPtr(t.ActivatedAt),
		CompletedAt: nullTimeToPtr(t.CompletedAt),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}
