// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// The set is closed: unknown role strings are rejected at the boundary
// instead of being stored as free-form values.
type Role string

const (
	// RoleSubscriber is the default role assigned on self-registration.
	RoleSubscriber Role = "subscriber"
	// RoleAuthor can create and manage their own news entries.
	RoleAuthor Role = "author"
	// RoleSuperuser has unrestricted administrative access.
	RoleSuperuser Role = "superuser"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSubscriber, RoleAuthor, RoleSuperuser:
		return true
	default:
		return false
	}
}

// RolePredicate is a caller-supplied authorization predicate over a role.
type RolePredicate func(Role) bool

// IsSuperuser is the predicate for superuser-only operations.
func IsSuperuser(r Role) bool {
	return r == RoleSuperuser
}

// CanPublish reports whether the role is allowed to create news entries.
func CanPublish(r Role) bool {
	return r == RoleAuthor || r == RoleSuperuser
}
