package exam

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExamNotFound  = errors.New("exam not found")
	ErrInvalidAnswer = errors.New("correct answer must be True or False")
)

// QuestionType is the only kind of question the system supports.
const QuestionType = "true_false"

// Question is an immutable true/false prompt.
type Question struct {
	text    string
	correct Answer
}

// NewQuestion builds a question. The text is not validated.
func NewQuestion(text string, correct Answer) (Question, error) {
	if !correct.Valid() {
		return Question{}, ErrInvalidAnswer
	}
	return Question{text: text, correct: correct}, nil
}

func (q Question) Text() string           { return q.text }
func (q Question) Correct() Answer        { return q.correct }
func (q Question) Type() string           { return QuestionType }
func (q Question) Evaluate(a Answer) bool { return a.Valid() && a == q.correct }

// Exam is a titled, timed sequence of questions. Title and duration are fixed
// at construction; questions are only appended while authoring. The id is
// assigned when the exam is registered.
type Exam struct {
	id              string
	title           string
	durationMinutes int

	questions []Question
}

func New(title string, durationMinutes int) Exam {
	return Exam{title: title, durationMinutes: durationMinutes}
}

func (e Exam) ID() string           { return e.id }
func (e Exam) Title() string        { return e.title }
func (e Exam) DurationMinutes() int { return e.durationMinutes }

func (e *Exam) AddQuestion(q Question) {
	e.questions = append(e.questions, q)
}

// Questions returns a copy of the ordered question list.
func (e Exam) Questions() []Question {
	return slices.Clone(e.questions)
}

func (e Exam) QuestionCount() int { return len(e.questions) }

func (e Exam) clone() Exam {
	e.questions = slices.Clone(e.questions)
	return e
}

// Result records one student's score on one exam attempt. It refers to the
// student and the exam by id; both registries outlive it.
type Result struct {
	ID        string
	StudentID string
	ExamID    string
	Score     int
	TakenAt   time.Time
}

func NewResult(studentID, examID string, score int) Result {
	if score < 0 {
		score = 0
	}
	return Result{
		ID:        uuid.NewString(),
		StudentID: studentID,
		ExamID:    examID,
		Score:     score,
		TakenAt:   time.Now().UTC(),
	}
}
