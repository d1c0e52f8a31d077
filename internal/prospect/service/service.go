// Package service holds the prospect use cases. Every call is scoped to the
// authenticated owner; another user's prospect is reported as not found.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/prospect/domain"
	"opsboard/backend/internal/prospect/repository"
)

// CreateInput carries the fields accepted on create. An unknown stage falls back to domain.DefaultStage.
type CreateInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Stage   string
	Notes   string
}

// UpdateInput is a partial update; nil fields are left unchanged. An unknown stage is ignored.
type UpdateInput struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Stage   *string
	Notes   *string
}

type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) List(ctx context.Context, owner scope.Owner) ([]*domain.Prospect, error) {
	return s.repo.List(ctx, owner)
}

func (s *Service) Get(ctx context.Context, owner scope.Owner, id string) (*domain.Prospect, error) {
	p, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, owner scope.Owner, in CreateInput) (*domain.Prospect, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name", "name required")
	}
	stage, ok := domain.ParseStage(in.Stage)
	if !ok {
		stage = domain.DefaultStage
	}
	now := s.now()
	return s.repo.Create(ctx, owner, &domain.Prospect{
		ID:        uuid.New().String(),
		Name:      name,
		Company:   strings.TrimSpace(in.Company),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Stage:     stage,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) Update(ctx context.Context, owner scope.Owner, id string, in UpdateInput) (*domain.Prospect, error) {
	p, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("name", "name required")
		}
		p.Name = name
	}
	setTrimmed(&p.Company, in.Company)
	setTrimmed(&p.Email, in.Email)
	setTrimmed(&p.Phone, in.Phone)
	setTrimmed(&p.Notes, in.Notes)
	if in.Stage != nil {
		if st, ok := domain.ParseStage(*in.Stage); ok {
			p.Stage = st
		}
	}
	p.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, owner, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrNotFound
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

func (s *Service) Count(ctx context.Context, owner scope.Owner) (int64, error) {
	return s.repo.Count(ctx, owner)
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
