package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"opsboard/backend/internal/audit"
	auditdomain "opsboard/backend/internal/audit/domain"
	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/security"
	sessiondomain "opsboard/backend/internal/session/domain"
	sessionservice "opsboard/backend/internal/session/service"
	userdomain "opsboard/backend/internal/user/domain"
)

// SessionStore is the subset of the session store the auth service needs.
type SessionStore interface {
	Create(ctx context.Context, userID, ip, userAgent string) (*sessiondomain.Session, error)
	Lookup(ctx context.Context, token string) (*userdomain.User, error)
	Delete(ctx context.Context, token string) error
}

// RegisterInput is the registration request plus client details recorded on the session.
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	IP        string
	UserAgent string
}

// LoginInput is the login request plus client details recorded on the session.
type LoginInput struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

// AuthResult is the outcome of Register and Login.
type AuthResult struct {
	User    *userdomain.User
	Session *sessiondomain.Session
}

// AuthService implements password register, login, and logout over server-side sessions.
type AuthService struct {
	credentials *CredentialStore
	sessions    SessionStore
	hasher      *security.Hasher
	audit       audit.AuditLogger

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService returns an AuthService. auditLogger may be nil.
func NewAuthService(credentials *CredentialStore, sessions SessionStore, hasher *security.Hasher, auditLogger audit.AuditLogger) *AuthService {
	return &AuthService{credentials: credentials, sessions: sessions, hasher: hasher, audit: auditLogger}
}

// Register creates the user, starts a session for it and returns both.
// New users start on the default module.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperr.Validation("", "email and password required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	u, err := s.credentials.Create(ctx, CreateParams{
		Email:        email,
		Password:     in.Password,
		Name:         in.Name,
		ActiveModule: userdomain.DefaultModule,
	})
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Create(ctx, u.ID, in.IP, in.UserAgent)
	if err != nil {
		return nil, err
	}
	s.logEvent(ctx, u.ID, auditdomain.ActionRegister, email)
	return &AuthResult{User: u, Session: sess}, nil
}

// Login verifies the password and starts a session. Unknown email and wrong password
// both return apperr.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		s.logEvent(ctx, "", auditdomain.ActionLoginFailure, email)
		return nil, apperr.ErrInvalidCredentials
	}
	acct, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		// Spend the same bcrypt time as a real comparison.
		s.hasher.Verify(in.Password, s.dummy())
		s.logEvent(ctx, "", auditdomain.ActionLoginFailure, email)
		return nil, apperr.ErrInvalidCredentials
	}
	if !s.hasher.Verify(in.Password, acct.PasswordHash) {
		s.logEvent(ctx, acct.User.ID, auditdomain.ActionLoginFailure, email)
		return nil, apperr.ErrInvalidCredentials
	}
	sess, err := s.sessions.Create(ctx, acct.User.ID, in.IP, in.UserAgent)
	if err != nil {
		return nil, err
	}
	s.logEvent(ctx, acct.User.ID, auditdomain.ActionLoginSuccess, email)
	u := acct.User
	return &AuthResult{User: &u, Session: sess}, nil
}

// Logout deletes the session behind token. It succeeds for empty, unknown and expired tokens.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	userID := ""
	u, err := s.sessions.Lookup(ctx, token)
	switch {
	case err == nil:
		userID = u.ID
	case errors.Is(err, sessionservice.ErrNotFound):
	default:
		slog.WarnContext(ctx, "auth: resolve session on logout", "error", err)
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	if userID != "" {
		s.logEvent(ctx, userID, auditdomain.ActionLogout, "")
	}
	return nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("opsboard-dummy-password")
		if err != nil {
			slog.Error("auth: dummy hash", "error", err)
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

func (s *AuthService) logEvent(ctx context.Context, userID, action, email string) {
	if s.audit == nil {
		return
	}
	meta := ""
	if email != "" {
		b, _ := json.Marshal(map[string]string{"email": email})
		meta = string(b)
	}
	s.audit.LogEvent(ctx, userID, action, auditdomain.ResourceAuth, meta)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var simpleEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if !simpleEmail.MatchString(email) {
		return apperr.Validation("email", "invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) > security.MaxPasswordBytes {
		return apperr.Validation("password", "password must be at most 72 bytes")
	}
	return nil
}
