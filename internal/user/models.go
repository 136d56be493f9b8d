package user

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("unknown user role")
	ErrUserNotFound       = errors.New("user not found")
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRoleToken maps the registration role token: "s" is a student and "t"
// a teacher. Anything else is rejected.
func ParseRoleToken(tok string) (Role, error) {
	switch tok {
	case "s":
		return RoleStudent, nil
	case "t":
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, tok)
	}
}

// Profile is the identity shared by every account. Email is the login key
// but is neither validated nor unique.
type Profile struct {
	ID    string
	Name  string
	Email string

	credential string
}

// Account is either a *Student or a *Teacher. The set is closed; switch on the
// concrete type to dispatch.
type Account interface {
	Info() Profile
	Role() Role
	RoleID() string
	account()
}

type Student struct {
	Profile
	StudentID string
}

type Teacher struct {
	Profile
	TeacherID string
}

func (s *Student) Info() Profile  { return s.Profile }
func (s *Student) Role() Role     { return RoleStudent }
func (s *Student) RoleID() string { return s.StudentID }
func (*Student) account()         {}

func (t *Teacher) Info() Profile  { return t.Profile }
func (t *Teacher) Role() Role     { return RoleTeacher }
func (t *Teacher) RoleID() string { return t.TeacherID }
func (*Teacher) account()         {}

func newAccount(role Role, p Profile, roleID string) (Account, error) {
	switch role {
	case RoleStudent:
		return &Student{Profile: p, StudentID: roleID}, nil
	case RoleTeacher:
		return &Teacher{Profile: p, TeacherID: roleID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

func cloneAccount(a Account) Account {
	switch v := a.(type) {
	case *Student:
		c := *v
		return &c
	case *Teacher:
		c := *v
		return &c
	}
	return a
}

func roleIDPrefix(role Role) string {
	if role == RoleTeacher {
		return "T"
	}
	return "S"
}
