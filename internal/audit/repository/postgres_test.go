package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"opsboard/backend/internal/audit/domain"
	"opsboard/backend/internal/platform/scope"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_NullsEmptyUserAndMetadata(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO audit_logs`).
		WithArgs("a-1", nil, domain.ActionLoginFailure, domain.ResourceAuth, "10.0.0.1", nil, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.AuditLog{
		ID: "a-1", Action: domain.ActionLoginFailure, Resource: domain.ResourceAuth, IP: "10.0.0.1", CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListByUser_ScopedAndLimited(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)FROM audit_logs\s+WHERE user_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs("u-1", int32(20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action", "resource", "ip", "metadata", "created_at"}).
			AddRow("a-2", "u-1", "logout", "auth", "1.2.3.4", nil, now).
			AddRow("a-1", "u-1", "login_success", "auth", "1.2.3.4", "{}", now))

	o, _ := scope.FromContext(scope.WithOwner(context.Background(), "u-1"))
	list, err := repo.ListByUser(context.Background(), o, 20)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 || list[0].Action != "logout" || list[1].Metadata != "{}" || list[0].UserID != "u-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListByUser_ZeroOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if _, err := repo.ListByUser(context.Background(), scope.Owner{}, 10); !errors.Is(err, scope.ErrNoOwner) {
		t.Fatalf("err = %v, want ErrNoOwner", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should run: %v", err)
	}
}
