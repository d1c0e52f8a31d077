package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/storetest"
	"opsboard/backend/internal/task/domain"
)

func owner(id string) scope.Owner {
	o, _ := scope.FromContext(scope.WithOwner(context.Background(), id))
	return o
}

func strPtr(s string) *string { return &s }

func newTestService() *Service {
	s := NewService(storetest.New().Tasks())
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return s
}

func TestCreateCategory_IdempotentIgnoringCase(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	c1, err := s.CreateCategory(ctx, owner("u-1"), " Work ")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	c2, err := s.CreateCategory(ctx, owner("u-1"), "WORK")
	if err != nil {
		t.Fatalf("CreateCategory again: %v", err)
	}
	if c1.ID != c2.ID || c1.Name != "Work" {
		t.Fatalf("categories differ: %+v vs %+v", c1, c2)
	}
	c3, err := s.CreateCategory(ctx, owner("u-2"), "Work")
	if err != nil || c3.ID == c1.ID {
		t.Fatalf("other user's category must be separate: %+v, %v", c3, err)
	}
	if _, err := s.CreateCategory(ctx, owner("u-1"), ""); err == nil {
		t.Fatal("empty name should be rejected")
	}
}

func TestCreate_Defaults(t *testing.T) {
	s := newTestService()
	task, err := s.Create(context.Background(), owner("u-1"), CreateInput{Title: "Write report", Priority: "urgent"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Priority != domain.PriorityMedium || task.Status != domain.StatusInactive {
		t.Errorf("defaults = %q/%q", task.Priority, task.Status)
	}
	if task.ActivatedAt != nil || task.CompletedAt != nil {
		t.Error("new task should have no activity stamps")
	}
	if _, err := s.Create(context.Background(), owner("u-1"), CreateInput{Title: " "}); err == nil {
		t.Fatal("blank title should be rejected")
	}
}

func TestCreate_ForeignCategoryDropped(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	foreign, _ := s.CreateCategory(ctx, owner("u-2"), "Theirs")
	mine, _ := s.CreateCategory(ctx, owner("u-1"), "Mine")

	task, err := s.Create(ctx, owner("u-1"), CreateInput{Title: "t", CategoryID: foreign.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.CategoryID != "" {
		t.Errorf("foreign category kept: %q", task.CategoryID)
	}

	task, err = s.Create(ctx, owner("u-1"), CreateInput{Title: "t2", CategoryID: mine.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.CategoryID != mine.ID || task.CategoryName != "Mine" {
		t.Errorf("category = %q/%q", task.CategoryID, task.CategoryName)
	}

	updated, err := s.Update(ctx, owner("u-1"), task.ID, UpdateInput{CategoryID: strPtr(foreign.ID)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CategoryID != mine.ID {
		t.Errorf("foreign category on update should keep existing, got %q", updated.CategoryID)
	}

	updated, err = s.Update(ctx, owner("u-1"), task.ID, UpdateInput{ClearCategory: true})
	if err != nil || updated.CategoryID != "" || updated.CategoryName != "" {
		t.Fatalf("clear category = %+v, %v", updated, err)
	}
}

func TestUpdate_StatusTransitions(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	o := owner("u-1")
	task, _ := s.Create(ctx, o, CreateInput{Title: "t"})

	active, err := s.Update(ctx, o, task.ID, UpdateInput{Status: strPtr("active")})
	if err != nil {
		t.Fatalf("Update active: %v", err)
	}
	if active.ActivatedAt == nil || active.CompletedAt != nil {
		t.Fatalf("active stamps = %v/%v", active.ActivatedAt, active.CompletedAt)
	}
	firstActivation := *active.ActivatedAt

	again, _ := s.Update(ctx, o, task.ID, UpdateInput{Status: strPtr("active")})
	if !again.ActivatedAt.Equal(firstActivation) {
		t.Error("re-activating must not move activated_at")
	}

	done, _ := s.Update(ctx, o, task.ID, UpdateInput{Status: strPtr("completed")})
	if done.CompletedAt == nil || done.ActivatedAt != nil {
		t.Fatalf("completed stamps = %v/%v", done.ActivatedAt, done.CompletedAt)
	}

	ignored, _ := s.Update(ctx, o, task.ID, UpdateInput{Status: strPtr("archived"), Priority: strPtr("nope")})
	if ignored.Status != domain.StatusCompleted || ignored.Priority != domain.PriorityMedium {
		t.Errorf("invalid status/priority should be ignored: %q/%q", ignored.Status, ignored.Priority)
	}

	back, _ := s.Update(ctx, o, task.ID, UpdateInput{Status: strPtr("inactive")})
	if back.CompletedAt != nil || back.ActivatedAt != nil {
		t.Errorf("inactive should clear stamps: %v/%v", back.ActivatedAt, back.CompletedAt)
	}
}

func TestList_ActivityOrderAndCategoryNames(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	o := owner("u-1")
	cat, _ := s.CreateCategory(ctx, o, "Home")
	older, _ := s.Create(ctx, o, CreateInput{Title: "older", CategoryID: cat.ID})
	_, _ = s.Create(ctx, o, CreateInput{Title: "newer"})
	if _, err := s.Update(ctx, o, older.ID, UpdateInput{Status: strPtr("active")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	list, err := s.List(ctx, o)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Title != "older" || list[0].CategoryName != "Home" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestCrossUserTaskIsNotFound(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	task, _ := s.Create(ctx, owner("alice"), CreateInput{Title: "private"})
	if _, err := s.Get(ctx, owner("bob"), task.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get err = %v", err)
	}
	if _, err := s.Update(ctx, owner("bob"), task.ID, UpdateInput{Title: strPtr("x")}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Update err = %v", err)
	}
	if err := s.Delete(ctx, owner("bob"), task.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete err = %v", err)
	}
	if err := s.Delete(ctx, owner("alice"), task.ID); err != nil {
		t.Errorf("owner Delete: %v", err)
	}
}

func TestCounts(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	o := owner("u-1")
	_, _ = s.CreateCategory(ctx, o, "A")
	_, _ = s.Create(ctx, o, CreateInput{Title: "1"})
	_, _ = s.Create(ctx, o, CreateInput{Title: "2"})
	tasks, cats, err := s.Counts(ctx, o)
	if err != nil || tasks != 2 || cats != 1 {
		t.Fatalf("Counts = %d, %d, %v", tasks, cats, err)
	}
}

func TestUpdate_DueDate(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	task, err := s.Create(ctx, owner("u-1"), CreateInput{Title: "File taxes", DueDate: &due})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Fatalf("DueDate = %v, want %v", task.DueDate, due)
	}

	later := due.AddDate(0, 0, 7)
	task, err = s.Update(ctx, owner("u-1"), task.ID, UpdateInput{DueDate: &later})
	if err != nil || task.DueDate == nil || !task.DueDate.Equal(later) {
		t.Fatalf("Update due date = %v, %v", task.DueDate, err)
	}

	task, err = s.Update(ctx, owner("u-1"), task.ID, UpdateInput{Title: strPtr("Renamed")})
	if err != nil || task.DueDate == nil {
		t.Fatalf("unrelated update must keep the due date: %v, %v", task.DueDate, err)
	}

	task, err = s.Update(ctx, owner("u-1"), task.ID, UpdateInput{ClearDueDate: true, DueDate: &later})
	if err != nil {
		t.Fatalf("Update clear: %v", err)
	}
	if task.DueDate != nil {
		t.Fatalf("DueDate = %v, want cleared", task.DueDate)
	}
}
