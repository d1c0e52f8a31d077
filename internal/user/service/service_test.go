package service

import (
	"context"
	"errors"
	"testing"

	identitydomain "opsboard/backend/internal/identity/domain"
	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/storetest"
	"opsboard/backend/internal/user/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db := storetest.New()
	err := db.Accounts().Create(context.Background(), &identitydomain.Account{
		User: domain.User{
			ID: "u-1", Email: "Owner@example.com", Role: domain.RoleUser,
			ActiveModule: domain.ModuleProspects, ModulesEnabled: []string{domain.ModuleProspects},
		},
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewService(db.Users())
}

func TestSelectModule_AddsWithoutRemoving(t *testing.T) {
	s := newTestService(t)
	u, err := s.SelectModule(context.Background(), "u-1", " Tasks ")
	if err != nil {
		t.Fatalf("SelectModule: %v", err)
	}
	if u.ActiveModule != domain.ModuleTasks {
		t.Errorf("active = %q", u.ActiveModule)
	}
	if !u.HasModule(domain.ModuleProspects) || !u.HasModule(domain.ModuleTasks) {
		t.Errorf("enabled = %v", u.ModulesEnabled)
	}
	u, err = s.SelectModule(context.Background(), "u-1", domain.ModuleTasks)
	if err != nil || len(u.ModulesEnabled) != 2 {
		t.Fatalf("reselect = %v, %v", u.ModulesEnabled, err)
	}
}

func TestSelectModule_RejectsUnknown(t *testing.T) {
	s := newTestService(t)
	_, err := s.SelectModule(context.Background(), "u-1", "crm")
	e, ok := apperr.As(err)
	if !ok || e.Code != apperr.CodeValidation || e.Message != "invalid module" {
		t.Fatalf("err = %v, want invalid module", err)
	}
}

func TestSelectModule_MissingUser(t *testing.T) {
	s := newTestService(t)
	if _, err := s.SelectModule(context.Background(), "ghost", domain.ModuleTasks); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestPromote(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	if err := s.Promote(ctx, "owner@EXAMPLE.com"); err != nil {
		t.Fatalf("Promote: %v", err)
	}
	u, err := s.Get(ctx, "u-1")
	if err != nil || u.Role != domain.RoleSuperadmin {
		t.Fatalf("Get = %+v, %v", u, err)
	}
	if err := s.Promote(ctx, "nobody@example.com"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Promote unknown err = %v", err)
	}
}
