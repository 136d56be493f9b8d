package rbac

import (
	"slices"
	"strings"
)

// Checker answers whether a role may perform a menu action.
type Checker struct {
	RolePermissions map[string][]string
}

func NewChecker(rp map[string][]string) *Checker {
	if rp == nil {
		rp = RolePermissions
	}
	return &Checker{RolePermissions: rp}
}

// Has reports whether any grant of role covers perm. Unknown roles have no
// grants.
func (c *Checker) Has(role, perm string) bool {
	return slices.ContainsFunc(c.RolePermissions[role], func(grant string) bool {
		return covers(grant, perm)
	})
}

// covers matches a grant against a permission. A grant is an exact
// permission, "*", or a resource wildcard such as "exam:*".
func covers(grant, perm string) bool {
	switch {
	case grant == "*", grant == perm:
		return true
	case strings.HasSuffix(grant, ":*"):
		resource, _, ok := strings.Cut(perm, ":")
		return ok && resource+":*" == grant
	default:
		return false
	}
}
