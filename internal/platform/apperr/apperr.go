// Package apperr defines the error taxonomy shared by services and the HTTP layer.
// Services return these values (possibly wrapped); the HTTP error handler maps
// Code to a status. Any error that is not an *Error is treated as an internal failure.
package apperr

import "errors"

// Code is the machine-readable reason returned to API clients.
type Code string

const (
	CodeValidation         Code = "VALIDATION_FAILED"
	CodeAuthRequired       Code = "AUTH_REQUIRED"
	CodeAuthExpired        Code = "AUTH_EXPIRED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeEmailTaken         Code = "EMAIL_TAKEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInternal           Code = "INTERNAL"
)

// Error is a classified application error.
type Error struct {
	Code    Code
	Message string
	// Field names the offending input for CodeValidation; empty otherwise.
	Field string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Sentinels. Compare with errors.Is.
var (
	// ErrUnauthenticated means no credential was presented.
	ErrUnauthenticated = &Error{Code: CodeAuthRequired, Message: "auth required"}
	// ErrSessionExpired means a credential was presented but does not resolve to a live session.
	// Absent and expired sessions are deliberately indistinguishable.
	ErrSessionExpired = &Error{Code: CodeAuthExpired, Message: "auth expired"}
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "invalid credentials"}
	// ErrDuplicateEmail is returned when the case-insensitive email unique constraint is violated.
	ErrDuplicateEmail = &Error{Code: CodeEmailTaken, Message: "email already registered"}
	// ErrNotFound is returned when a scoped row does not exist for the caller.
	ErrNotFound = &Error{Code: CodeNotFound, Message: "not found"}
)

// Validation returns a CodeValidation error for field.
func Validation(field, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Field: field}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
