package exam

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Manager is the exam registry. Titles are not unique: FindByTitle returns
// the first exam added under a title, so later duplicates are unreachable by
// title.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	if store == nil {
		store = NewInMemoryStore()
	}
	return &Manager{store: store}
}

// AddExam stores a copy of e, assigning an id if it has none.
func (m *Manager) AddExam(ctx context.Context, e Exam) (Exam, error) {
	if e.id == "" {
		e.id = uuid.NewString()
	}
	if err := m.store.PutExam(ctx, e); err != nil {
		return Exam{}, fmt.Errorf("put exam %q: %w", e.title, err)
	}
	log.Printf("exam added: id=%s title=%q questions=%d", e.id, e.title, e.QuestionCount())
	return e.clone(), nil
}

func (m *Manager) GetExam(ctx context.Context, id string) (Exam, error) {
	return m.store.GetExam(ctx, id)
}

func (m *Manager) FindByTitle(ctx context.Context, title string) (Exam, bool, error) {
	exams, err := m.store.ListExams(ctx)
	if err != nil {
		return Exam{}, false, err
	}
	for _, e := range exams {
		if e.title == title {
			return e, true, nil
		}
	}
	return Exam{}, false, nil
}

func (m *Manager) ListExams(ctx context.Context) ([]Exam, error) {
	return m.store.ListExams(ctx)
}
