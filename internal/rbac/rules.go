package rbac

const (
	PermExamTake      = "exam:take"
	PermExamCreate    = "exam:create"
	PermResultViewOwn = "result:view-own"
)

// Default policy: what each role may do from its menu.
var RolePermissions = map[string][]string{
	"student": {
		PermExamTake,
		PermResultViewOwn,
	},
	"teacher": {
		PermExamCreate,
	},
}
