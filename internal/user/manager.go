package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-oems/internal/exam"
)

// Registration is what a new user supplies. Nothing but the role is checked.
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Manager is the user registry. Emails are not unique: Login resolves to the
// first registered account whose email and password both match.
type Manager struct {
	store  Store
	hasher PasswordHasher
}

func NewManager(store Store, hasher PasswordHasher) *Manager {
	if store == nil {
		store = NewInMemoryStore()
	}
	if hasher == nil {
		hasher = PlainHasher{}
	}
	return &Manager{store: store, hasher: hasher}
}

func (m *Manager) Register(ctx context.Context, reg Registration) (Account, error) {
	users, err := m.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	n := 1
	for _, u := range users {
		if u.Role() == reg.Role {
			n++
		}
	}
	cred, err := m.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	p := Profile{ID: uuid.NewString(), Name: reg.Name, Email: reg.Email, credential: cred}
	a, err := newAccount(reg.Role, p, fmt.Sprintf("%s%03d", roleIDPrefix(reg.Role), n))
	if err != nil {
		return nil, err
	}
	if err := m.store.PutUser(ctx, a); err != nil {
		return nil, fmt.Errorf("put user: %w", err)
	}
	log.Printf("user registered: id=%s role=%s role_id=%s", p.ID, a.Role(), a.RoleID())
	return a, nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (Account, error) {
	users, err := m.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		p := u.Info()
		if p.Email == email && m.hasher.Compare(p.credential, password) {
			log.Printf("login ok: id=%s role=%s", p.ID, u.Role())
			return u, nil
		}
	}
	log.Printf("login failed for %q", email)
	return nil, ErrInvalidCredentials
}

func (m *Manager) GetUser(ctx context.Context, id string) (Account, error) {
	return m.store.GetUser(ctx, id)
}

func (m *Manager) Users(ctx context.Context) ([]Account, error) {
	return m.store.ListUsers(ctx)
}

// RecordResult appends r to the student's history.
func (m *Manager) RecordResult(ctx context.Context, s *Student, r exam.Result) error {
	if s == nil {
		return ErrUserNotFound
	}
	if r.StudentID != s.ID {
		return errors.New("result belongs to a different student")
	}
	if err := m.store.AppendResult(ctx, r); err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	log.Printf("result recorded: student=%s exam=%s score=%d", s.ID, r.ExamID, r.Score)
	return nil
}

// Results returns the student's history, oldest first.
func (m *Manager) Results(ctx context.Context, s *Student) ([]exam.Result, error) {
	if s == nil {
		return nil, ErrUserNotFound
	}
	return m.store.ListResults(ctx, s.ID)
}
