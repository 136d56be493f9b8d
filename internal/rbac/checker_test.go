package rbac_test

import (
	"testing"

	"github.com/mind-engage/mindengage-oems/internal/rbac"
)

func TestDefaultPolicy(t *testing.T) {
	c := rbac.NewChecker(nil)
	tests := []struct {
		role, perm string
		want       bool
	}{
		{"student", rbac.PermExamTake, true},
		{"student", rbac.PermResultViewOwn, true},
		{"student", rbac.PermExamCreate, false},
		{"teacher", rbac.PermExamCreate, true},
		{"teacher", rbac.PermExamTake, false},
		{"guest", rbac.PermExamTake, false},
	}
	for _, tc := range tests {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%s, %s) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestWildcards(t *testing.T) {
	c := rbac.NewChecker(map[string][]string{
		"admin":  {"*"},
		"author": {"exam:*"},
	})
	if !c.Has("admin", "anything") {
		t.Fatal("admin should match *")
	}
	if !c.Has("author", rbac.PermExamCreate) || c.Has("author", rbac.PermResultViewOwn) {
		t.Fatal("prefix wildcard mismatch")
	}
	if !c.Has("author", rbac.PermExamTake) {
		t.Fatal("exam:* should cover exam:take")
	}
	if c.Has("author", "examiner:grade") || c.Has("author", "exam") {
		t.Fatal("exam:* must only cover the exam resource")
	}
}
