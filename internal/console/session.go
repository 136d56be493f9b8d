// Package console is the interactive menu front end: registration, login and
// the role-specific student and teacher menus.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/mind-engage/mindengage-oems/internal/exam"
	"github.com/mind-engage/mindengage-oems/internal/grading"
	"github.com/mind-engage/mindengage-oems/internal/rbac"
	"github.com/mind-engage/mindengage-oems/internal/user"
)

const divider = "------------------------"

type Session struct {
	in  *bufio.Reader
	out io.Writer

	// lines is fed by a single reader goroutine so that a blocked read can
	// be abandoned when the context ends.
	lines     chan inputLine
	stop      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once

	users  *user.Manager
	exams  *exam.Manager
	grader grading.Grader
	perms  *rbac.Checker
}

type Option func(*Session)

func WithGrader(g grading.Grader) Option  { return func(s *Session) { s.grader = g } }
func WithChecker(c *rbac.Checker) Option { return func(s *Session) { s.perms = c } }

// NewSession wires a session over the given registries. Both are shared by
// every user who logs in during the process lifetime.
func NewSession(in io.Reader, out io.Writer, users *user.Manager, exams *exam.Manager, opts ...Option) *Session {
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		lines:  make(chan inputLine),
		stop:   make(chan struct{}),
		users:  users,
		exams:  exams,
		grader: grading.NewDefaultGrader(),
		perms:  rbac.NewChecker(nil),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run drives the main menu until the user picks Exit (nil), input ends
// (io.EOF) or ctx is done. A session is run once.
func (s *Session) Run(ctx context.Context) error {
	s.startOnce.Do(func() { go s.readInput() })
	defer s.stopOnce.Do(func() { close(s.stop) })
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println("1. Register")
		s.println("2. Login")
		s.println("3. Exit")
		choice, err := s.readChoice(ctx, "Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = s.register(ctx)
		case 2:
			err = s.login(ctx)
		case 3:
			s.println("Exiting...")
			return nil
		default:
			s.println("Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) register(ctx context.Context) error {
	name, err := s.prompt(ctx, "Enter name: ")
	if err != nil {
		return err
	}
	email, err := s.prompt(ctx, "Enter email: ")
	if err != nil {
		return err
	}
	password, err := s.prompt(ctx, "Enter password: ")
	if err != nil {
		return err
	}
	tok, err := s.prompt(ctx, "Enter user type ('s' for student, 't' for teacher): ")
	if err != nil {
		return err
	}

	role, err := user.ParseRoleToken(tok)
	if err != nil {
		s.println("Invalid user type. Registration failed.")
		return nil
	}
	if _, err := s.users.Register(ctx, user.Registration{Name: name, Email: email, Password: password, Role: role}); err != nil {
		s.fail("register", err)
		return nil
	}
	s.println("User registered successfully!")
	return nil
}

func (s *Session) login(ctx context.Context) error {
	email, err := s.prompt(ctx, "Enter email: ")
	if err != nil {
		return err
	}
	password, err := s.prompt(ctx, "Enter password: ")
	if err != nil {
		return err
	}

	acct, err := s.users.Login(ctx, email, password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		s.println("Login Failed! Invalid email or password.")
		return nil
	}
	if err != nil {
		s.fail("login", err)
		return nil
	}

	switch a := acct.(type) {
	case *user.Student:
		return s.studentMenu(ctx, a)
	case *user.Teacher:
		return s.teacherMenu(ctx, a)
	default:
		// registration only ever creates the two variants above
		log.Printf("login: unexpected account type %T", acct)
		return nil
	}
}

// allowed reports whether the account's role grants perm, telling the user
// when it does not.
func (s *Session) allowed(a user.Account, perm string) bool {
	if s.perms.Has(string(a.Role()), perm) {
		return true
	}
	s.println("Permission denied.")
	return false
}

func (s *Session) fail(op string, err error) {
	log.Printf("%s: %v", op, err)
	s.println("Something went wrong.")
}

// ---- input/output helpers ----

type inputLine struct {
	text string
	err  error
}

// readInput forwards input lines until the input ends or the session stops.
// Lines have no length limit.
func (s *Session) readInput() {
	defer close(s.lines)
	for {
		text, err := s.in.ReadString('\n')
		if text != "" && !s.send(inputLine{text: text}) {
			return
		}
		if err != nil {
			s.send(inputLine{err: err})
			return
		}
	}
}

func (s *Session) send(l inputLine) bool {
	select {
	case s.lines <- l:
		return true
	case <-s.stop:
		return false
	}
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	s.printf("%s", label)
	return s.readLine(ctx)
}

// readChoice returns 0 for anything that is not a whole number, which every
// menu treats as an invalid choice.
func (s *Session) readChoice(ctx context.Context, label string) (int, error) {
	line, err := s.prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
