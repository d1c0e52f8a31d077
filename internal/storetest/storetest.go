// Package storetest provides an in-memory implementation of every repository,
// sharing one set of tables so that cross-repository behaviour (sessions joined
// to users, tasks joined to categories) matches the Postgres implementation.
// It is intended for service and HTTP tests.
package storetest

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	auditdomain "opsboard/backend/internal/audit/domain"
	auditrepo "opsboard/backend/internal/audit/repository"
	identitydomain "opsboard/backend/internal/identity/domain"
	identityrepo "opsboard/backend/internal/identity/repository"
	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	prospectdomain "opsboard/backend/internal/prospect/domain"
	prospectrepo "opsboard/backend/internal/prospect/repository"
	sessiondomain "opsboard/backend/internal/session/domain"
	sessionrepo "opsboard/backend/internal/session/repository"
	taskdomain "opsboard/backend/internal/task/domain"
	taskrepo "opsboard/backend/internal/task/repository"
	userdomain "opsboard/backend/internal/user/domain"
	userrepo "opsboard/backend/internal/user/repository"
)

var (
	_ identityrepo.Repository = (*Accounts)(nil)
	_ userrepo.Repository     = (*Users)(nil)
	_ sessionrepo.Repository  = (*Sessions)(nil)
	_ prospectrepo.Repository = (*Prospects)(nil)
	_ taskrepo.Repository     = (*Tasks)(nil)
	_ auditrepo.Repository    = (*Audit)(nil)
)

// DB holds the tables. The zero value is not usable; call New.
type DB struct {
	mu         sync.Mutex
	accounts   map[string]*identitydomain.Account
	sessions   map[string]*sessiondomain.Session
	prospects  []*prospectdomain.Prospect
	tasks      []*taskdomain.Task
	categories []*taskdomain.Category
	audit      []*auditdomain.AuditLog

	// Err, when set, is returned by every repository call.
	Err error
}

func New() *DB {
	return &DB{
		accounts: make(map[string]*identitydomain.Account),
		sessions: make(map[string]*sessiondomain.Session),
	}
}

// SetErr makes every subsequent call fail with err; nil restores normal behaviour.
func (d *DB) SetErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Err = err
}

// begin takes the table lock, failing with Err when one is injected.
func (d *DB) begin() (func(), error) {
	d.mu.Lock()
	if d.Err != nil {
		err := d.Err
		d.mu.Unlock()
		return nil, err
	}
	return d.mu.Unlock, nil
}

func (d *DB) beginScoped(owner scope.Owner) (func(), error) {
	if err := owner.Check(); err != nil {
		return nil, err
	}
	return d.begin()
}

// Session returns a copy of the stored session, for assertions.
func (d *DB) Session(token string) (*sessiondomain.Session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sessions[token]
	if !ok {
		return nil, false
	}
	c := *s
	return &c, true
}

// SessionCount returns the number of stored sessions, expired ones included.
func (d *DB) SessionCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sessions)
}

// AuditLogs returns a copy of every stored audit entry in insertion order.
func (d *DB) AuditLogs() []auditdomain.AuditLog {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]auditdomain.AuditLog, len(d.audit))
	for i, a := range d.audit {
		out[i] = *a
	}
	return out
}

// PasswordHash returns the stored hash for the user id, for assertions.
func (d *DB) PasswordHash(userID string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if a, ok := d.accounts[userID]; ok {
		return a.PasswordHash
	}
	return ""
}

func copyUser(u userdomain.User) *userdomain.User {
	u.ModulesEnabled = slices.Clone(u.ModulesEnabled)
	return &u
}

// Accounts is the credential view.
func (d *DB) Accounts() *Accounts { return &Accounts{d} }

type Accounts struct{ d *DB }

func (r *Accounts) GetByEmail(ctx context.Context, email string) (*identitydomain.Account, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return nil, err
	}
	defer unlock()
	for _, a := range r.d.accounts {
		if strings.EqualFold(a.User.Email, email) {
			return &identitydomain.Account{User: *copyUser(a.User), PasswordHash: a.PasswordHash}, nil
		}
	}
	return nil, nil
}

func (r *Accounts) Create(ctx context.Context, a *identitydomain.Account) error {
	unlock, err := r.d.begin()
	if err != nil {
		return err
	}
	defer unlock()
	for _, existing := range r.d.accounts {
		if strings.EqualFold(existing.User.Email, a.User.Email) {
			return fmt.Errorf("create user: %w", apperr.ErrDuplicateEmail)
		}
	}
	r.d.accounts[a.User.ID] = &identitydomain.Account{User: *copyUser(a.User), PasswordHash: a.PasswordHash}
	return nil
}

// Users is the user view.
func (d *DB) Users() *Users { return &Users{d} }

type Users struct{ d *DB }

func (r *Users) GetByID(ctx context.Context, id string) (*userdomain.User, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return nil, err
	}
	defer unlock()
	if a, ok := r.d.accounts[id]; ok {
		return copyUser(a.User), nil
	}
	return nil, nil
}

func (r *Users) UpdateModules(ctx context.Context, id, module string, at time.Time) (*userdomain.User, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return nil, err
	}
	defer unlock()
	a, ok := r.d.accounts[id]
	if !ok {
		return nil, nil
	}
	a.User.ActiveModule = module
	a.User.ModulesEnabled = userdomain.EnableModule(a.User.ModulesEnabled, module)
	a.User.UpdatedAt = at
	return copyUser(a.User), nil
}

func (r *Users) SetRoleByEmail(ctx context.Context, email string, role userdomain.Role, at time.Time) (bool, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return false, err
	}
	defer unlock()
	for _, a := range r.d.accounts {
		if strings.EqualFold(a.User.Email, email) {
			a.User.Role = role
			a.User.UpdatedAt = at
			return true, nil
		}
	}
	return false, nil
}

// Sessions is the session view.
func (d *DB) Sessions() *Sessions { return &Sessions{d} }

type Sessions struct{ d *DB }

func (r *Sessions) Create(ctx context.Context, s *sessiondomain.Session) error {
	unlock, err := r.d.begin()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.d.accounts[s.UserID]; !ok {
		return fmt.Errorf("sessions: user %s does not exist", s.UserID)
	}
	c := *s
	r.d.sessions[s.Token] = &c
	return nil
}

func (r *Sessions) Touch(ctx context.Context, token string, at time.Time) error {
	unlock, err := r.d.begin()
	if err != nil {
		return err
	}
	defer unlock()
	if s, ok := r.d.sessions[token]; ok && at.After(s.LastSeenAt) {
		s.LastSeenAt = at
	}
	return nil
}

func (r *Sessions) GetActiveUser(ctx context.Context, token string, now time.Time) (*userdomain.User, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return nil, err
	}
	defer unlock()
	s, ok := r.d.sessions[token]
	if !ok || !s.Active(now) {
		return nil, nil
	}
	a, ok := r.d.accounts[s.UserID]
	if !ok {
		return nil, nil
	}
	return copyUser(a.User), nil
}

func (r *Sessions) Delete(ctx context.Context, token string) error {
	unlock, err := r.d.begin()
	if err != nil {
		return err
	}
	defer unlock()
	delete(r.d.sessions, token)
	return nil
}

func (r *Sessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for token, s := range r.d.sessions {
		if !s.Active(now) {
			delete(r.d.sessions, token)
			n++
		}
	}
	return n, nil
}

func (r *Sessions) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	unlock, err := r.d.begin()
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for token, s := range r.d.sessions {
		if s.UserID == userID {
			delete(r.d.sessions, token)
			n++
		}
	}
	return n, nil
}

// Prospects is the prospect view.
func (d *DB) Prospects() *Prospects { return &Prospects{d} }

type Prospects struct{ d *DB }

func (r *Prospects) List(ctx context.Context, owner scope.Owner) ([]*prospectdomain.Prospect, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	var out []*prospectdomain.Prospect
	for i := len(r.d.prospects) - 1; i >= 0; i-- {
		if p := r.d.prospects[i]; p.UserID == owner.UserID() {
			c := *p
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Prospects) find(owner scope.Owner, id string) int {
	for i, p := range r.d.prospects {
		if p.ID == id && p.UserID == owner.UserID() {
			return i
		}
	}
	return -1
}

func (r *Prospects) Get(ctx context.Context, owner scope.Owner, id string) (*prospectdomain.Prospect, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	i := r.find(owner, id)
	if i < 0 {
		return nil, nil
	}
	c := *r.d.prospects[i]
	return &c, nil
}

func (r *Prospects) Create(ctx context.Context, owner scope.Owner, p *prospectdomain.Prospect) (*prospectdomain.Prospect, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	c := *p
	c.UserID = owner.UserID()
	r.d.prospects = append(r.d.prospects, &c)
	out := c
	return &out, nil
}

func (r *Prospects) Update(ctx context.Context, owner scope.Owner, p *prospectdomain.Prospect) (*prospectdomain.Prospect, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	i := r.find(owner, p.ID)
	if i < 0 {
		return nil, nil
	}
	cur := r.d.prospects[i]
	cur.Name, cur.Company, cur.Email, cur.Phone = p.Name, p.Company, p.Email, p.Phone
	cur.Stage, cur.Notes, cur.UpdatedAt = p.Stage, p.Notes, p.UpdatedAt
	c := *cur
	return &c, nil
}

func (r *Prospects) Delete(ctx context.Context, owner scope.Owner, id string) (bool, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return false, err
	}
	defer unlock()
	i := r.find(owner, id)
	if i < 0 {
		return false, nil
	}
	r.d.prospects = slices.Delete(r.d.prospects, i, i+1)
	return true, nil
}

func (r *Prospects) Count(ctx context.Context, owner scope.Owner) (int64, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for _, p := range r.d.prospects {
		if p.UserID == owner.UserID() {
			n++
		}
	}
	return n, nil
}

// Tasks is the task and task-category view.
func (d *DB) Tasks() *Tasks { return &Tasks{d} }

type Tasks struct{ d *DB }

func (r *Tasks) ListCategories(ctx context.Context, owner scope.Owner) ([]*taskdomain.Category, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	var out []*taskdomain.Category
	for _, c := range r.d.categories {
		if c.UserID == owner.UserID() {
			cc := *c
			out = append(out, &cc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Tasks) CreateCategory(ctx context.Context, owner scope.Owner, c *taskdomain.Category) (*taskdomain.Category, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	for _, existing := range r.d.categories {
		if existing.UserID == owner.UserID() && strings.EqualFold(existing.Name, c.Name) {
			cc := *existing
			return &cc, nil
		}
	}
	cc := *c
	cc.UserID = owner.UserID()
	r.d.categories = append(r.d.categories, &cc)
	out := cc
	return &out, nil
}

func (r *Tasks) CategoryOwned(ctx context.Context, owner scope.Owner, id string) (bool, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return false, err
	}
	defer unlock()
	for _, c := range r.d.categories {
		if c.ID == id && c.UserID == owner.UserID() {
			return true, nil
		}
	}
	return false, nil
}

func (r *Tasks) CountCategories(ctx context.Context, owner scope.Owner) (int64, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for _, c := range r.d.categories {
		if c.UserID == owner.UserID() {
			n++
		}
	}
	return n, nil
}

func activity(t *taskdomain.Task) time.Time {
	if t.ActivatedAt != nil {
		return *t.ActivatedAt
	}
	return t.CreatedAt
}

func (r *Tasks) List(ctx context.Context, owner scope.Owner) ([]*taskdomain.Task, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	var out []*taskdomain.Task
	for i := len(r.d.tasks) - 1; i >= 0; i-- {
		if t := r.d.tasks[i]; t.UserID == owner.UserID() {
			c := *t
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return activity(out[i]).After(activity(out[j])) })
	return out, nil
}

func (r *Tasks) find(owner scope.Owner, id string) int {
	for i, t := range r.d.tasks {
		if t.ID == id && t.UserID == owner.UserID() {
			return i
		}
	}
	return -1
}

func (r *Tasks) Get(ctx context.Context, owner scope.Owner, id string) (*taskdomain.Task, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	i := r.find(owner, id)
	if i < 0 {
		return nil, nil
	}
	c := *r.d.tasks[i]
	return &c, nil
}

func (r *Tasks) Create(ctx context.Context, owner scope.Owner, t *taskdomain.Task) (*taskdomain.Task, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	c := *t
	c.UserID = owner.UserID()
	c.CategoryName = ""
	r.d.tasks = append(r.d.tasks, &c)
	out := c
	return &out, nil
}

func (r *Tasks) Update(ctx context.Context, owner scope.Owner, t *taskdomain.Task) (*taskdomain.Task, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	i := r.find(owner, t.ID)
	if i < 0 {
		return nil, nil
	}
	c := *t
	c.UserID = owner.UserID()
	c.CreatedAt = r.d.tasks[i].CreatedAt
	c.CategoryName = ""
	r.d.tasks[i] = &c
	out := c
	return &out, nil
}

func (r *Tasks) Delete(ctx context.Context, owner scope.Owner, id string) (bool, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return false, err
	}
	defer unlock()
	i := r.find(owner, id)
	if i < 0 {
		return false, nil
	}
	r.d.tasks = slices.Delete(r.d.tasks, i, i+1)
	return true, nil
}

func (r *Tasks) Count(ctx context.Context, owner scope.Owner) (int64, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for _, t := range r.d.tasks {
		if t.UserID == owner.UserID() {
			n++
		}
	}
	return n, nil
}

// Audit is the audit log view.
func (d *DB) Audit() *Audit { return &Audit{d} }

type Audit struct{ d *DB }

func (r *Audit) Create(ctx context.Context, a *auditdomain.AuditLog) error {
	unlock, err := r.d.begin()
	if err != nil {
		return err
	}
	defer unlock()
	c := *a
	r.d.audit = append(r.d.audit, &c)
	return nil
}

func (r *Audit) ListByUser(ctx context.Context, owner scope.Owner, limit int32) ([]*auditdomain.AuditLog, error) {
	unlock, err := r.d.beginScoped(owner)
	if err != nil {
		return nil, err
	}
	defer unlock()
	var out []*auditdomain.AuditLog
	for i := len(r.d.audit) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		if a := r.d.audit[i]; a.UserID == owner.UserID() {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}
