// Package service holds the profile and module-settings use cases.
package service

import (
	"context"
	"strings"
	"time"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/user/domain"
	"opsboard/backend/internal/user/repository"
)

type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Get returns the user or apperr.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

// SelectModule makes module the user's active module and adds it to the enabled set.
// Previously enabled modules stay enabled.
func (s *Service) SelectModule(ctx context.Context, userID, module string) (*domain.User, error) {
	module = strings.ToLower(strings.TrimSpace(module))
	if !domain.IsAllowedModule(module) {
		return nil, apperr.Validation("active_module", "invalid module")
	}
	u, err := s.repo.UpdateModules(ctx, userID, module, s.now())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

// Promote grants the superadmin role to the user with email. Returns apperr.ErrNotFound
// when no user matches.
func (s *Service) Promote(ctx context.Context, email string) error {
	ok, err := s.repo.SetRoleByEmail(ctx, strings.TrimSpace(email), domain.RoleSuperadmin, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
