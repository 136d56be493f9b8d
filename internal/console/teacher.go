package console

import (
	"context"
	"strconv"

	"github.com/mind-engage/mindengage-oems/internal/exam"
	"github.com/mind-engage/mindengage-oems/internal/rbac"
	"github.com/mind-engage/mindengage-oems/internal/user"
)

func (s *Session) teacherMenu(ctx context.Context, t *user.Teacher) error {
	for {
		s.println("")
		s.println("Teacher Menu:")
		s.println("1. Create Exam")
		s.println("2. Logout")
		choice, err := s.readChoice(ctx, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if !s.allowed(t, rbac.PermExamCreate) {
				continue
			}
			if err := s.createExam(ctx); err != nil {
				return err
			}
		case 2:
			s.println("Logged out successfully!")
			return nil
		default:
			s.println("Invalid choice!")
		}
	}
}

// createExam authors an exam question by question and submits it once the
// teacher declines to add another. Duration is not range-checked.
func (s *Session) createExam(ctx context.Context) error {
	title, err := s.prompt(ctx, "Enter the exam title: ")
	if err != nil {
		return err
	}
	duration, err := s.promptInt(ctx, "Enter the exam duration (in minutes): ")
	if err != nil {
		return err
	}

	e := exam.New(title, duration)
	for {
		text, err := s.prompt(ctx, "Enter question text: ")
		if err != nil {
			return err
		}
		correct, err := s.promptAnswerCode(ctx, "Enter the correct answer (1 for True, 2 for False): ")
		if err != nil {
			return err
		}
		q, err := exam.NewQuestion(text, correct)
		if err != nil {
			return err
		}
		e.AddQuestion(q)

		more, err := s.prompt(ctx, "Add another question? (y/n): ")
		if err != nil {
			return err
		}
		if more != "y" && more != "Y" {
			break
		}
	}

	if _, err := s.exams.AddExam(ctx, e); err != nil {
		s.fail("add exam", err)
		return nil
	}
	s.println("Exam created successfully!")
	return nil
}

func (s *Session) promptInt(ctx context.Context, label string) (int, error) {
	for {
		line, err := s.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.println("Please enter a whole number.")
	}
}

func (s *Session) promptAnswerCode(ctx context.Context, label string) (exam.Answer, error) {
	for {
		code, err := s.promptInt(ctx, label)
		if err != nil {
			return exam.Invalid, err
		}
		if a, ok := exam.AnswerFromCode(code); ok {
			return a, nil
		}
		s.println("Please enter 1 for True or 2 for False.")
	}
}
