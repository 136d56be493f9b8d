package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mind-engage/mindengage-oems/internal/exam"
)

type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

type userRow struct {
	ID         string `db:"id"`
	Role       string `db:"role"`
	RoleID     string `db:"role_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Credential string `db:"credential"`
}

type resultRow struct {
	ID        string `db:"id"`
	StudentID string `db:"student_id"`
	ExamID    string `db:"exam_id"`
	Score     int    `db:"score"`
	TakenAt   int64  `db:"taken_at"` // unix nanoseconds
}

func (s *SQLStore) PutUser(ctx context.Context, a Account) error {
	p := a.Info()
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO users (id,role,role_id,name,email,credential,created_at)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT (id) DO UPDATE SET name=excluded.name, email=excluded.email, credential=excluded.credential`),
		p.ID, string(a.Role()), a.RoleID(), p.Name, p.Email, p.credential, time.Now().Unix())
	return err
}

func (s *SQLStore) GetUser(ctx context.Context, id string) (Account, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT id,role,role_id,name,email,credential FROM users WHERE id=?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return row.toAccount()
}

func (s *SQLStore) ListUsers(ctx context.Context) ([]Account, error) {
	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`SELECT id,role,role_id,name,email,credential FROM users ORDER BY seq`)); err != nil {
		return nil, err
	}
	out := make([]Account, 0, len(rows))
	for _, r := range rows {
		a, err := r.toAccount()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *SQLStore) AppendResult(ctx context.Context, r exam.Result) error {
	var role string
	err := s.db.GetContext(ctx, &role, s.db.Rebind(`SELECT role FROM users WHERE id=?`), r.StudentID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && Role(role) != RoleStudent) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO results (id,student_id,exam_id,score,taken_at) VALUES (?,?,?,?,?)`),
		r.ID, r.StudentID, r.ExamID, r.Score, r.TakenAt.UnixNano())
	return err
}

func (s *SQLStore) ListResults(ctx context.Context, studentID string) ([]exam.Result, error) {
	var rows []resultRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`SELECT id,student_id,exam_id,score,taken_at FROM results WHERE student_id=? ORDER BY seq`), studentID); err != nil {
		return nil, err
	}
	out := make([]exam.Result, 0, len(rows))
	for _, r := range rows {
		out = append(out, exam.Result{
			ID:        r.ID,
			StudentID: r.StudentID,
			ExamID:    r.ExamID,
			Score:     r.Score,
			TakenAt:   time.Unix(0, r.TakenAt).UTC(),
		})
	}
	return out, nil
}

func (r userRow) toAccount() (Account, error) {
	p := Profile{ID: r.ID, Name: r.Name, Email: r.Email, credential: r.Credential}
	return newAccount(Role(r.Role), p, r.RoleID)
}
