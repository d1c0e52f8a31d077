package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"opsboard/backend/internal/audit/domain"
	"opsboard/backend/internal/platform/scope"
	telemetrydomain "opsboard/backend/internal/telemetry/domain"
)

// mockAuditRepo implements the audit repository interface for tests.
type mockAuditRepo struct {
	mu        sync.Mutex
	entries   []*domain.AuditLog
	createErr error
}

func (m *mockAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepo) ListByUser(ctx context.Context, owner scope.Owner, limit int32) ([]*domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AuditLog
	for i := len(m.entries) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		if m.entries[i].UserID == owner.UserID() {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

type chanEmitter chan *telemetrydomain.Event

func (c chanEmitter) Emit(ctx context.Context, e *telemetrydomain.Event) error {
	c <- e
	return nil
}

func TestLogger_LogEvent_Success(t *testing.T) {
	repo := &mockAuditRepo{}
	logger := NewLogger(repo, func(context.Context) string { return "192.168.1.1" }, nil)

	logger.LogEvent(context.Background(), "user-1", domain.ActionLoginSuccess, domain.ResourceAuth, `{"email":"a@b.c"}`)

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.UserID != "user-1" {
		t.Errorf("user_id = %q, want %q", entry.UserID, "user-1")
	}
	if entry.Action != domain.ActionLoginSuccess || entry.Resource != domain.ResourceAuth {
		t.Errorf("action/resource = %q/%q", entry.Action, entry.Resource)
	}
	if entry.IP != "192.168.1.1" {
		t.Errorf("ip = %q, want %q", entry.IP, "192.168.1.1")
	}
	if entry.Metadata != `{"email":"a@b.c"}` {
		t.Errorf("metadata = %q", entry.Metadata)
	}
	if entry.ID == "" {
		t.Error("entry ID should be set")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("entry CreatedAt should be set")
	}
}

func TestLogger_LogEvent_NilIPExtractor(t *testing.T) {
	repo := &mockAuditRepo{}
	logger := NewLogger(repo, nil, nil)

	logger.LogEvent(context.Background(), "", domain.ActionLoginFailure, domain.ResourceAuth, "")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].IP != "unknown" {
		t.Errorf("ip = %q, want %q", repo.entries[0].IP, "unknown")
	}
	if repo.entries[0].UserID != "" {
		t.Errorf("user_id = %q, want empty", repo.entries[0].UserID)
	}
}

func TestLogger_LogEvent_MirrorsToEmitter(t *testing.T) {
	repo := &mockAuditRepo{}
	events := make(chanEmitter, 1)
	logger := NewLogger(repo, func(context.Context) string { return "10.0.0.1" }, events)

	logger.LogEvent(context.Background(), "user-1", domain.ActionLogout, domain.ResourceAuth, "")

	select {
	case ev := <-events:
		if ev.Name != domain.ActionLogout || ev.UserID != "user-1" || ev.Source != "audit" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if ev.Attributes["ip"] != "10.0.0.1" || ev.Attributes["resource"] != domain.ResourceAuth {
			t.Errorf("unexpected attributes: %v", ev.Attributes)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event was not emitted")
	}
}

func TestLogger_LogEvent_RepositoryError(t *testing.T) {
	repo := &mockAuditRepo{createErr: errors.New("database error")}
	logger := NewLogger(repo, nil, nil)

	// best-effort: must not panic
	logger.LogEvent(context.Background(), "user-1", "action", "resource", "")
}

func TestLogger_LogEvent_NilRepo(t *testing.T) {
	logger := NewLogger(nil, nil, nil)
	logger.LogEvent(context.Background(), "user-1", "action", "resource", "")

	var nilLogger *Logger
	nilLogger.LogEvent(context.Background(), "user-1", "action", "resource", "")
}
