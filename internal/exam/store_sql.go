package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

type examRow struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	DurationMinutes int    `db:"duration_minutes"`
	QuestionsJSON   string `db:"questions_json"`
}

type questionJSON struct {
	Text   string `json:"text"`
	Answer Answer `json:"answer"`
}

func (s *SQLStore) PutExam(ctx context.Context, e Exam) error {
	qs := make([]questionJSON, 0, len(e.questions))
	for _, q := range e.questions {
		qs = append(qs, questionJSON{Text: q.text, Answer: q.correct})
	}
	qj, err := json.Marshal(qs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO exams (id,title,duration_minutes,questions_json,created_at)
		VALUES (?,?,?,?,?)
		ON CONFLICT (id) DO UPDATE SET title=excluded.title, duration_minutes=excluded.duration_minutes, questions_json=excluded.questions_json`),
		e.id, e.title, e.durationMinutes, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetExam(ctx context.Context, id string) (Exam, error) {
	var row examRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT id,title,duration_minutes,questions_json FROM exams WHERE id=?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Exam{}, ErrExamNotFound
		}
		return Exam{}, err
	}
	return row.toExam()
}

func (s *SQLStore) ListExams(ctx context.Context) ([]Exam, error) {
	var rows []examRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`SELECT id,title,duration_minutes,questions_json FROM exams ORDER BY seq`)); err != nil {
		return nil, err
	}
	out := make([]Exam, 0, len(rows))
	for _, r := range rows {
		e, err := r.toExam()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r examRow) toExam() (Exam, error) {
	var qs []questionJSON
	if err := json.Unmarshal([]byte(r.QuestionsJSON), &qs); err != nil {
		return Exam{}, err
	}
	e := Exam{id: r.ID, title: r.Title, durationMinutes: r.DurationMinutes}
	for _, q := range qs {
		question, err := NewQuestion(q.Text, q.Answer)
		if err != nil {
			return Exam{}, err
		}
		e.AddQuestion(question)
	}
	return e, nil
}
