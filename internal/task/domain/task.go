package domain

import (
	"strings"
	"time"
)

// Task is a to-do item owned by one user, optionally filed under one of that user's categories.
type Task struct {
	ID           string
	UserID       string
	CategoryID   string
	CategoryName string
	Title        string
	Description  string
	Priority     Priority
	Status       Status
	DueDate      *time.Time
	ActivatedAt  *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups tasks. Names are unique per user, ignoring case.
type Category struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a task is created without a recognised priority.
const DefaultPriority = PriorityMedium

func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

type Status string

const (
	StatusInactive  Status = "inactive"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusInactive, StatusActive, StatusCompleted:
		return st, true
	}
	return "", false
}

// SetStatus moves t to st and keeps the timestamps consistent with it:
// ActivatedAt is set on the first move to active and cleared on leaving active;
// CompletedAt is stamped on every move to completed and cleared otherwise.
func (t *Task) SetStatus(st Status, now time.Time) {
	t.Status = st
	switch st {
	case StatusActive:
		if t.ActivatedAt == nil {
			t.ActivatedAt = &now
		}
		t.CompletedAt = nil
	case StatusCompleted:
		t.ActivatedAt = nil
		t.CompletedAt = &now
	default:
		t.ActivatedAt = nil
		t.CompletedAt = nil
	}
}
