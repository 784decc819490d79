package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RolePublisher indicates a user allowed to publish bootcamps.
	RolePublisher Role = "publisher"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RolePublisher:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns RoleUser for an empty role.
func RoleOrDefault(r Role) Role {
	if r == "" {
		return RoleUser
	}

	return r
}
