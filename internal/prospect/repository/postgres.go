package repository

import (
	"context"
	"database/sql"
	"errors"

	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/prospect/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a prospect repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

func (r *PostgresRepository) List(ctx context.Context, owner scope.Owner) ([]*domain.Prospect, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	rows, err := r.queries.ListProspects(ctx, owner.UserID())
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Prospect, len(rows))
	for i := range rows {
		out[i] = genProspectToDomain(&rows[i])
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner scope.Owner, id string) (*domain.Prospect, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	p, err := r.queries.GetProspect(ctx, gen.GetProspectParams{ID: id, UserID: owner.UserID()})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genProspectToDomain(&p), nil
}

// Create inserts p under owner. p.UserID is ignored; the owner always wins.
func (r *PostgresRepository) Create(ctx context.Context, owner scope.Owner, p *domain.Prospect) (*domain.Prospect, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	row, err := r.queries.CreateProspect(ctx, gen.CreateProspectParams{
		ID:        p.ID,
		UserID:    owner.UserID(),
		Name:      p.Name,
		Company:   nullString(p.Company),
		Email:     nullString(p.Email),
		Phone:     nullString(p.Phone),
		Stage:     string(p.Stage),
		Notes:     nullString(p.Notes),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	return genProspectToDomain(&row), nil
}

func (r *PostgresRepository) Update(ctx context.Context, owner scope.Owner, p *domain.Prospect) (*domain.Prospect, error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	row, err := r.queries.UpdateProspect(ctx, gen.UpdateProspectParams{
		ID:        p.ID,
		UserID:    owner.UserID(),
		Name:      p.Name,
		Company:   nullString(p.Company),
		Email:     nullString(p.Email),
		Phone:     nullString(p.Phone),
		Stage:     string(p.Stage),
		Notes:     nullString(p.Notes),
		UpdatedAt: p.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genProspectToDomain(&row), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner scope.Owner, id string) (bool, error) {
	if err := owner.Check(); err != nil {
		return false, err
	}
	n, err := r.queries.DeleteProspect(ctx, gen.DeleteProspectParams{ID: id, UserID: owner.UserID()})
	return n > 0, err
}

func (r *PostgresRepository) Count(ctx context.Context, owner scope.Owner) (int64, error) {
	if err := owner.Check(); err != nil {
		return 0, err
	}
	return r.queries.CountProspects(ctx, owner.UserID())
}

func genProspectToDomain(p *gen.Prospect) *domain.Prospect {
	return &domain.Prospect{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Company:   p.Company.String,
		Email:     p.Email.String,
		Phone:     p.Phone.String,
		Stage:     domain.Stage(p.Stage),
		Notes:     p.Notes.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
