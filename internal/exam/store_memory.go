package exam

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	exams map[string]Exam
	order []string
}

func NewInMemoryStore() Store {
	return &memoryStore{exams: map[string]Exam{}}
}

func (m *memoryStore) PutExam(_ context.Context, e Exam) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.exams[e.id]; !ok {
		m.order = append(m.order, e.id)
	}
	m.exams[e.id] = e.clone()
	return nil
}

func (m *memoryStore) GetExam(_ context.Context, id string) (Exam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.exams[id]
	if !ok {
		return Exam{}, ErrExamNotFound
	}
	return e.clone(), nil
}

func (m *memoryStore) ListExams(_ context.Context) ([]Exam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Exam, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.exams[id].clone())
	}
	return out, nil
}
