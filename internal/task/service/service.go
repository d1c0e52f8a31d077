// Package service holds the task and task-category use cases, scoped to the authenticated owner.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/task/domain"
	"opsboard/backend/internal/task/repository"
)

// CreateInput carries the fields accepted on create. New tasks always start inactive;
// an unknown priority falls back to domain.DefaultPriority.
type CreateInput struct {
	Title       string
	Description string
	CategoryID  string
	Priority    string
	DueDate     *time.Time
}

// UpdateInput is a partial update; nil fields are left unchanged.
// ClearCategory detaches the task from its category and ClearDueDate removes the due date.
// Unknown priority or status values are ignored.
type UpdateInput struct {
	Title         *string
	Description   *string
	CategoryID    *string
	ClearCategory bool
	Priority      *string
	Status        *string
	DueDate       *time.Time
	ClearDueDate  bool
}

type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) ListCategories(ctx context.Context, owner scope.Owner) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx, owner)
}

// CreateCategory is idempotent on name: an existing category with the same name is returned.
func (s *Service) CreateCategory(ctx context.Context, owner scope.Owner, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name", "name required")
	}
	return s.repo.CreateCategory(ctx, owner, &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: s.now(),
	})
}

func (s *Service) List(ctx context.Context, owner scope.Owner) ([]*domain.Task, error) {
	tasks, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := s.fillCategoryNames(ctx, owner, tasks...); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Service) Get(ctx context.Context, owner scope.Owner, id string) (*domain.Task, error) {
	t, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.ErrNotFound
	}
	if err := s.fillCategoryNames(ctx, owner, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, owner scope.Owner, in CreateInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Validation("title", "title required")
	}
	categoryID, err := s.ownedCategory(ctx, owner, in.CategoryID)
	if err != nil {
		return nil, err
	}
	priority, ok := domain.ParsePriority(in.Priority)
	if !ok {
		priority = domain.DefaultPriority
	}
	now := s.now()
	t, err := s.repo.Create(ctx, owner, &domain.Task{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		Status:      domain.StatusInactive,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	if err := s.fillCategoryNames(ctx, owner, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, owner scope.Owner, id string, in UpdateInput) (*domain.Task, error) {
	t, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.ErrNotFound
	}
	now := s.now()

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Validation("title", "title required")
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	switch {
	case in.ClearCategory:
		t.CategoryID = ""
	case in.CategoryID != nil:
		categoryID, err := s.ownedCategory(ctx, owner, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if categoryID != "" {
			t.CategoryID = categoryID
		}
	}
	if in.Priority != nil {
		if p, ok := domain.ParsePriority(*in.Priority); ok {
			t.Priority = p
		}
	}
	if in.Status != nil {
		if st, ok := domain.ParseStatus(*in.Status); ok {
			t.SetStatus(st, now)
		}
	}
	switch {
	case in.ClearDueDate:
		t.DueDate = nil
	case in.DueDate != nil:
		t.DueDate = in.DueDate
	}
	t.UpdatedAt = now

	updated, err := s.repo.Update(ctx, owner, t)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrNotFound
	}
	if err := s.fillCategoryNames(ctx, owner, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, owner scope.Owner, id string) error {
	ok, err := s.repo.Delete(ctx, owner, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Counts returns the owner's task and category totals.
func (s *Service) Counts(ctx context.Context, owner scope.Owner) (tasks, categories int64, err error) {
	if tasks, err = s.repo.Count(ctx, owner); err != nil {
		return 0, 0, err
	}
	if categories, err = s.repo.CountCategories(ctx, owner); err != nil {
		return 0, 0, err
	}
	return tasks, categories, nil
}

// ownedCategory returns id when it names one of owner's categories and "" otherwise.
// A foreign or unknown category is dropped silently rather than rejected.
func (s *Service) ownedCategory(ctx context.Context, owner scope.Owner, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil
	}
	ok, err := s.repo.CategoryOwned(ctx, owner, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return id, nil
}

func (s *Service) fillCategoryNames(ctx context.Context, owner scope.Owner, tasks ...*domain.Task) error {
	need := false
	for _, t := range tasks {
		if t.CategoryID != "" {
			need = true
			break
		}
	}
	if !need {
		return nil
	}
	cats, err := s.repo.ListCategories(ctx, owner)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	for _, t := range tasks {
		t.CategoryName = names[t.CategoryID]
	}
	return nil
}
