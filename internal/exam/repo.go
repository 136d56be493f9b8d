package exam

import "context"

// Store persists exams for the lifetime of the process. ListExams returns
// exams in the order they were first put.
type Store interface {
	PutExam(ctx context.Context, e Exam) error
	GetExam(ctx context.Context, id string) (Exam, error)
	ListExams(ctx context.Context) ([]Exam, error)
}
