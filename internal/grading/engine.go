package grading

import (
	"context"

	"github.com/mind-engage/mindengage-oems/internal/exam"
)

// Outcome is how a single response was judged.
type Outcome int

const (
	// Invalid responses are neither right nor wrong; they score nothing.
	Invalid Outcome = iota
	Correct
	Incorrect
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "invalid"
	}
}

// Strategy grades a single question of one type.
type Strategy interface {
	Grade(ctx context.Context, q exam.Question, response exam.Answer) Outcome
}

// Grader routes by question type to the correct Strategy.
type Grader interface {
	Grade(ctx context.Context, q exam.Question, response exam.Answer) Outcome
}

type defaultGrader struct {
	strategies map[string]Strategy
}

func (g *defaultGrader) Grade(ctx context.Context, q exam.Question, response exam.Answer) Outcome {
	s, ok := g.strategies[q.Type()]
	if !ok {
		return Invalid
	}
	return s.Grade(ctx, q, response)
}

// NewDefaultGrader installs the built-in strategies.
func NewDefaultGrader() Grader {
	return &defaultGrader{
		strategies: map[string]Strategy{
			exam.QuestionType: trueFalseStrategy{},
		},
	}
}

type trueFalseStrategy struct{}

func (trueFalseStrategy) Grade(_ context.Context, q exam.Question, response exam.Answer) Outcome {
	if !response.Valid() {
		return Invalid
	}
	if q.Evaluate(response) {
		return Correct
	}
	return Incorrect
}

// Sheet tallies outcomes over one attempt. Score counts correct answers only.
type Sheet struct {
	Correct   int
	Incorrect int
	Invalid   int
}

func (s *Sheet) Record(o Outcome) {
	switch o {
	case Correct:
		s.Correct++
	case Incorrect:
		s.Incorrect++
	default:
		s.Invalid++
	}
}

func (s Sheet) Score() int    { return s.Correct }
func (s Sheet) Answered() int { return s.Correct + s.Incorrect + s.Invalid }
