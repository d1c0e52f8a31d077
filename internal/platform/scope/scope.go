// Package scope carries the authenticated owner of a request. Repositories that
// read or write per-user rows take an Owner argument, so a query cannot be
// issued without first resolving who the caller is.
package scope

import (
	"context"
	"errors"
)

// ErrNoOwner is returned when an operation needs an owner and none is bound.
var ErrNoOwner = errors.New("scope: no authenticated owner")

// Owner identifies the user whose rows an operation may touch. The zero value
// is not a valid owner.
type Owner struct {
	userID string
}

// UserID returns the owning user's id.
func (o Owner) UserID() string { return o.userID }

// Valid reports whether o was bound from an authenticated identity.
func (o Owner) Valid() bool { return o.userID != "" }

// Check returns ErrNoOwner for the zero Owner.
func (o Owner) Check() error {
	if !o.Valid() {
		return ErrNoOwner
	}
	return nil
}

type ownerKey struct{}

// WithOwner binds userID as the owner of everything done with the returned context.
// The request guard calls this after resolving the session; batch tools call it
// for the user they act on.
func WithOwner(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, ownerKey{}, Owner{userID: userID})
}

// FromContext returns the bound owner and true, or the zero Owner and false.
func FromContext(ctx context.Context) (Owner, bool) {
	o, ok := ctx.Value(ownerKey{}).(Owner)
	return o, ok && o.Valid()
}

// Require returns the bound owner or ErrNoOwner.
func Require(ctx context.Context) (Owner, error) {
	o, ok := FromContext(ctx)
	if !ok {
		return Owner{}, ErrNoOwner
	}
	return o, nil
}
