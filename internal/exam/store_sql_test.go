package exam_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mind-engage/mindengage-oems/internal/db"
	"github.com/mind-engage/mindengage-oems/internal/exam"
)

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "")
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	defer dbh.Close()

	m := exam.NewManager(exam.NewSQLStore(dbh))

	a := exam.New("Quiz1", 10)
	a.AddQuestion(mustQuestion(t, "Sky is blue", exam.True))
	a.AddQuestion(mustQuestion(t, "Grass is red", exam.False))
	savedA, err := m.AddExam(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	savedB, err := m.AddExam(ctx, exam.New("Empty", 0))
	if err != nil {
		t.Fatal(err)
	}

	got, err := m.GetExam(ctx, savedA.ID())
	if err != nil {
		t.Fatal(err)
	}
	if got.Title() != "Quiz1" || got.DurationMinutes() != 10 || got.QuestionCount() != 2 {
		t.Fatalf("unexpected exam: %+v", got)
	}
	qs := got.Questions()
	if qs[0].Text() != "Sky is blue" || qs[0].Correct() != exam.True || qs[1].Correct() != exam.False {
		t.Fatalf("questions not preserved: %+v", qs)
	}

	list, err := m.ListExams(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID() != savedA.ID() || list[1].ID() != savedB.ID() {
		t.Fatalf("ListExams order wrong: %+v", list)
	}

	found, ok, err := m.FindByTitle(ctx, "Empty")
	if err != nil || !ok || found.QuestionCount() != 0 {
		t.Fatalf("FindByTitle(Empty) = %+v, %v, %v", found, ok, err)
	}

	if _, err := m.GetExam(ctx, "missing"); !errors.Is(err, exam.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}
}
