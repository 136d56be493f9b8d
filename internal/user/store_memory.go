package user

import (
	"context"
	"slices"
	"sync"

	"github.com/mind-engage/mindengage-oems/internal/exam"
)

type memoryStore struct {
	mu      sync.RWMutex
	users   map[string]Account
	order   []string
	results map[string][]exam.Result // student user id -> history
}

func NewInMemoryStore() Store {
	return &memoryStore{
		users:   map[string]Account{},
		results: map[string][]exam.Result{},
	}
}

func (m *memoryStore) PutUser(_ context.Context, a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := a.Info().ID
	if _, ok := m.users[id]; !ok {
		m.order = append(m.order, id)
	}
	m.users[id] = cloneAccount(a)
	return nil
}

func (m *memoryStore) GetUser(_ context.Context, id string) (Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneAccount(a), nil
}

func (m *memoryStore) ListUsers(_ context.Context) ([]Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Account, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, cloneAccount(m.users[id]))
	}
	return out, nil
}

func (m *memoryStore) AppendResult(_ context.Context, r exam.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[r.StudentID].(*Student); !ok {
		return ErrUserNotFound
	}
	m.results[r.StudentID] = append(m.results[r.StudentID], r)
	return nil
}

func (m *memoryStore) ListResults(_ context.Context, studentID string) ([]exam.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.results[studentID]), nil
}
