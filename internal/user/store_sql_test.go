package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mind-engage/mindengage-oems/internal/db"
	"github.com/mind-engage/mindengage-oems/internal/exam"
	"github.com/mind-engage/mindengage-oems/internal/user"
)

func TestSQLStore(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "")
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	defer dbh.Close()

	exams := exam.NewManager(exam.NewSQLStore(dbh))
	m := user.NewManager(user.NewSQLStore(dbh), nil)

	bob := register(t, m, "Bob", "bob@x.com", "pw", user.RoleStudent)
	alice := register(t, m, "Alice", "alice@x.com", "pw", user.RoleTeacher)

	got, err := m.Login(ctx, "alice@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	tc, ok := got.(*user.Teacher)
	if !ok || tc.ID != alice.Info().ID || tc.TeacherID != "T001" || tc.Name != "Alice" {
		t.Fatalf("teacher did not round-trip: %#v", got)
	}
	if _, err := m.Login(ctx, "bob@x.com", "bad"); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	e, err := exams.AddExam(ctx, exam.New("Quiz1", 10))
	if err != nil {
		t.Fatal(err)
	}
	st := bob.(*user.Student)
	r1 := exam.NewResult(st.ID, e.ID(), 1)
	r2 := exam.NewResult(st.ID, e.ID(), 0)
	for _, r := range []exam.Result{r1, r2} {
		if err := m.RecordResult(ctx, st, r); err != nil {
			t.Fatal(err)
		}
	}
	rs, err := m.Results(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 2 || rs[0].ID != r1.ID || rs[1].Score != 0 || rs[0].ExamID != e.ID() {
		t.Fatalf("results did not round-trip: %+v", rs)
	}
	if !rs[0].TakenAt.Equal(r1.TakenAt) {
		t.Fatalf("TakenAt lost precision: got %v, want %v", rs[0].TakenAt, r1.TakenAt)
	}

	store := user.NewSQLStore(dbh)
	if err := store.AppendResult(ctx, exam.NewResult(alice.Info().ID, e.ID(), 1)); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("teacher result: %v", err)
	}
	if _, err := store.GetUser(ctx, "missing"); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("missing user: %v", err)
	}
	users, err := m.Users(ctx)
	if err != nil || len(users) != 2 || users[0].Info().ID != bob.Info().ID {
		t.Fatalf("Users() = %v, %v", users, err)
	}
}
