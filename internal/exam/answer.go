package exam

import "strings"

// Answer is a true/false response. The numeric values double as the codes
// teachers type when authoring (1 = True, 2 = False).
type Answer int

const (
	Invalid Answer = iota
	True
	False
)

func (a Answer) String() string {
	switch a {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Invalid"
	}
}

// Valid reports whether a is True or False.
func (a Answer) Valid() bool { return a == True || a == False }

// ParseAnswerToken normalizes a student's answer: t/T is True, f/F is False
// and anything else is Invalid.
func ParseAnswerToken(tok string) Answer {
	switch strings.TrimSpace(tok) {
	case "t", "T":
		return True
	case "f", "F":
		return False
	default:
		return Invalid
	}
}

// AnswerFromCode maps an authoring code to an Answer.
func AnswerFromCode(code int) (Answer, bool) {
	a := Answer(code)
	if !a.Valid() {
		return Invalid, false
	}
	return a, true
}
