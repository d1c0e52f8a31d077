package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"opsboard/backend/internal/identity/domain"
	identityrepo "opsboard/backend/internal/identity/repository"
	"opsboard/backend/internal/security"
	userdomain "opsboard/backend/internal/user/domain"
	userrepo "opsboard/backend/internal/user/repository"
)

// CreateParams describes a new account. Email is stored as given; callers normalise it.
type CreateParams struct {
	Email    string
	Password string
	Name     string
	// ActiveModule, when set, becomes the active module and the only enabled one.
	ActiveModule string
}

// CredentialStore persists users together with their password hashes.
// Plaintext passwords only pass through Create and are hashed before anything is stored.
type CredentialStore struct {
	accounts identityrepo.Repository
	users    userrepo.Repository
	hasher   *security.Hasher
	now      func() time.Time
}

func NewCredentialStore(accounts identityrepo.Repository, users userrepo.Repository, hasher *security.Hasher) *CredentialStore {
	return &CredentialStore{
		accounts: accounts,
		users:    users,
		hasher:   hasher,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// FindByEmail looks the account up case-insensitively. Returns nil if not found.
func (c *CredentialStore) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return c.accounts.GetByEmail(ctx, strings.TrimSpace(email))
}

// GetByID returns the user without its hash, or nil if not found.
func (c *CredentialStore) GetByID(ctx context.Context, id string) (*userdomain.User, error) {
	return c.users.GetByID(ctx, id)
}

// Create hashes the password and inserts the user with role user, no premium flag and
// an empty module set unless p.ActiveModule is given. A case-insensitive email collision
// returns apperr.ErrDuplicateEmail.
func (c *CredentialStore) Create(ctx context.Context, p CreateParams) (*userdomain.User, error) {
	hash, err := c.hasher.Hash(p.Password)
	if err != nil {
		return nil, err
	}
	now := c.now()
	u := userdomain.User{
		ID:             uuid.New().String(),
		Email:          p.Email,
		Name:           strings.TrimSpace(p.Name),
		ModulesEnabled: []string{},
		Role:           userdomain.RoleUser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.ActiveModule != "" {
		u.ActiveModule = p.ActiveModule
		u.ModulesEnabled = []string{p.ActiveModule}
	}
	if err := c.accounts.Create(ctx, &domain.Account{User: u, PasswordHash: hash}); err != nil {
		return nil, err
	}
	return &u, nil
}
