package constants

const (
	Admin    = "admin"
	Manager  = "manager"
	Operator = "operator"
	Viewer   = "viewer"
)

// ValidRoles is the set of allowed DB enum values for user role.
var ValidRoles = []string{Viewer, Operator, Manager, Admin}

// IsValidRole returns true if role is one of the allowed enum values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
