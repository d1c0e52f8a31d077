package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/prospect/domain"
	"opsboard/backend/internal/storetest"
)

func owner(id string) scope.Owner {
	o, _ := scope.FromContext(scope.WithOwner(context.Background(), id))
	return o
}

func newTestService() *Service {
	s := NewService(storetest.New().Prospects())
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return s
}

func strPtr(s string) *string { return &s }

func TestCreate_DefaultsAndTrims(t *testing.T) {
	s := newTestService()
	p, err := s.Create(context.Background(), owner("u-1"), CreateInput{Name: "  Acme  ", Stage: "bogus", Email: " a@acme.io "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Acme" || p.Email != "a@acme.io" {
		t.Errorf("fields not trimmed: %+v", p)
	}
	if p.Stage != domain.StageLead {
		t.Errorf("stage = %q, want lead", p.Stage)
	}
	if p.UserID != "u-1" {
		t.Errorf("user id = %q", p.UserID)
	}

	p2, err := s.Create(context.Background(), owner("u-1"), CreateInput{Name: "Beta", Stage: "WON"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p2.Stage != domain.StageWon {
		t.Errorf("stage = %q, want won", p2.Stage)
	}
}

func TestCreate_NameRequired(t *testing.T) {
	s := newTestService()
	_, err := s.Create(context.Background(), owner("u-1"), CreateInput{Name: "   "})
	e, ok := apperr.As(err)
	if !ok || e.Code != apperr.CodeValidation || e.Field != "name" {
		t.Fatalf("err = %v, want name validation error", err)
	}
}

func TestList_NewestFirstAndScoped(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Create(ctx, owner("u-1"), CreateInput{Name: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := s.Create(ctx, owner("u-2"), CreateInput{Name: "foreign"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	list, err := s.List(ctx, owner("u-1"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].Name != "third" || list[2].Name != "first" {
		t.Fatalf("unexpected order: %v, %v, %v", list[0].Name, list[1].Name, list[2].Name)
	}
	n, err := s.Count(ctx, owner("u-2"))
	if err != nil || n != 1 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	p, err := s.Create(ctx, owner("alice"), CreateInput{Name: "Secret"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	bob := owner("bob")
	if _, err := s.Get(ctx, bob, p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
	if _, err := s.Update(ctx, bob, p.ID, UpdateInput{Name: strPtr("Stolen")}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Update err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, bob, p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete err = %v, want ErrNotFound", err)
	}
	got, err := s.Get(ctx, owner("alice"), p.ID)
	if err != nil || got.Name != "Secret" {
		t.Fatalf("owner Get = %+v, %v", got, err)
	}
}

func TestUpdate_Partial(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	p, _ := s.Create(ctx, owner("u-1"), CreateInput{Name: "Acme", Company: "Acme Inc", Stage: "qualified"})

	got, err := s.Update(ctx, owner("u-1"), p.ID, UpdateInput{Notes: strPtr(" call back "), Stage: strPtr("nonsense")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Notes != "call back" || got.Company != "Acme Inc" || got.Name != "Acme" {
		t.Errorf("unexpected fields: %+v", got)
	}
	if got.Stage != domain.StageQualified {
		t.Errorf("invalid stage should be ignored, got %q", got.Stage)
	}
	if !got.UpdatedAt.After(p.UpdatedAt) {
		t.Error("UpdatedAt should advance")
	}

	got, err = s.Update(ctx, owner("u-1"), p.ID, UpdateInput{Stage: strPtr("proposal")})
	if err != nil || got.Stage != domain.StageProposal {
		t.Fatalf("Update stage = %+v, %v", got, err)
	}
	if _, err := s.Update(ctx, owner("u-1"), p.ID, UpdateInput{Name: strPtr(" ")}); err == nil {
		t.Error("blank name should be rejected")
	}
}

func TestDelete(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	p, _ := s.Create(ctx, owner("u-1"), CreateInput{Name: "Acme"})
	if err := s.Delete(ctx, owner("u-1"), p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, owner("u-1"), p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("second Delete err = %v", err)
	}
}

func TestZeroOwnerRejected(t *testing.T) {
	s := newTestService()
	if _, err := s.List(context.Background(), scope.Owner{}); !errors.Is(err, scope.ErrNoOwner) {
		t.Fatalf("List err = %v, want ErrNoOwner", err)
	}
}
