package parley

// Role represents the role of a message sender.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAI
}
