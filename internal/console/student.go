package console

import (
	"context"
	"errors"
	"log"

	"github.com/mind-engage/mindengage-oems/internal/exam"
	"github.com/mind-engage/mindengage-oems/internal/grading"
	"github.com/mind-engage/mindengage-oems/internal/rbac"
	"github.com/mind-engage/mindengage-oems/internal/user"
)

func (s *Session) studentMenu(ctx context.Context, st *user.Student) error {
	for {
		s.println("")
		s.println("Student Menu:")
		s.println("1. Take Exam")
		s.println("2. View Results")
		s.println("3. Logout")
		choice, err := s.readChoice(ctx, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if !s.allowed(st, rbac.PermExamTake) {
				continue
			}
			title, err := s.prompt(ctx, "Enter exam title to take: ")
			if err != nil {
				return err
			}
			e, ok, err := s.exams.FindByTitle(ctx, title)
			if err != nil {
				s.fail("find exam", err)
				continue
			}
			if !ok {
				s.println("Exam not found!")
				continue
			}
			if err := s.takeExam(ctx, st, e); err != nil {
				return err
			}
		case 2:
			if !s.allowed(st, rbac.PermResultViewOwn) {
				continue
			}
			s.viewResults(ctx, st)
		case 3:
			s.println("Logged out successfully!")
			return nil
		default:
			s.println("Invalid choice!")
		}
	}
}

// takeExam runs one attempt to completion. The only error it returns is an
// input error; an attempt cut short records nothing.
func (s *Session) takeExam(ctx context.Context, st *user.Student, e exam.Exam) error {
	s.printf("Starting Exam: %s\n", e.Title())

	var sheet grading.Sheet
	for _, q := range e.Questions() {
		s.printf("Question: %s\n", q.Text())
		s.println("1. True (t)")
		s.println("2. False (f)")
		tok, err := s.prompt(ctx, "Enter your answer (t for True, f for False): ")
		if err != nil {
			return err
		}

		outcome := s.grader.Grade(ctx, q, exam.ParseAnswerToken(tok))
		switch outcome {
		case grading.Correct:
			s.println("Correct!")
		case grading.Incorrect:
			s.println("Incorrect.")
		default:
			s.println("Invalid answer, skipping question.")
		}
		sheet.Record(outcome)
	}

	r := exam.NewResult(st.ID, e.ID(), sheet.Score())
	if err := s.users.RecordResult(ctx, st, r); err != nil {
		s.fail("record result", err)
		return nil
	}

	total := e.QuestionCount()
	if cur, err := s.exams.GetExam(ctx, e.ID()); err == nil {
		total = cur.QuestionCount()
	}
	log.Printf("attempt finished: student=%s exam=%s answered=%d/%d correct=%d incorrect=%d invalid=%d",
		st.StudentID, e.ID(), sheet.Answered(), total, sheet.Correct, sheet.Incorrect, sheet.Invalid)
	s.printf("Exam completed! Your score: %d/%d\n", r.Score, total)
	return nil
}

func (s *Session) viewResults(ctx context.Context, st *user.Student) {
	results, err := s.users.Results(ctx, st)
	if err != nil {
		s.fail("list results", err)
		return
	}
	s.println("Exam Results:")
	if len(results) == 0 {
		s.println("No results yet.")
		return
	}
	for _, r := range results {
		s.printf("Student: %s\n", s.studentName(ctx, r, st))
		s.printf("Exam: %s\n", s.examTitle(ctx, r))
		s.printf("Score: %d\n", r.Score)
		s.println(divider)
	}
}

func (s *Session) studentName(ctx context.Context, r exam.Result, fallback *user.Student) string {
	a, err := s.users.GetUser(ctx, r.StudentID)
	if err != nil {
		return fallback.Name
	}
	return a.Info().Name
}

func (s *Session) examTitle(ctx context.Context, r exam.Result) string {
	e, err := s.exams.GetExam(ctx, r.ExamID)
	if err != nil {
		if !errors.Is(err, exam.ErrExamNotFound) {
			log.Printf("get exam %s: %v", r.ExamID, err)
		}
		return "(unknown exam)"
	}
	return e.Title()
}
