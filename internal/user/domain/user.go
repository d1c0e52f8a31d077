package domain

import (
	"slices"
	"time"
)

// User is the core user entity. It never carries the password hash.
type User struct {
	ID             string
	Email          string
	Name           string
	ActiveModule   string
	ModulesEnabled []string
	Role           Role
	IsPremium      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Role string

const (
	RoleUser       Role = "user"
	RoleSuperadmin Role = "superadmin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleSuperadmin
}

// HasModule reports whether module is in the user's enabled set.
func (u *User) HasModule(module string) bool {
	return slices.Contains(u.ModulesEnabled, module)
}
