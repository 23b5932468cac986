package models

// Role is the single role assigned to a user in user_roles.
type Role string

const (
	RoleLecturer        Role = "lecturer"
	RoleCoordinator     Role = "coordinator"
	RoleAcademicManager Role = "academic_manager"
	// RoleUnknown covers users with no role row or an unrecognized value.
	// Routing treats it as a configuration error, not a lecturer default.
	RoleUnknown Role = "unknown"
)

// ParseRole maps a stored role value to a known variant.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleLecturer, RoleCoordinator, RoleAcademicManager:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// IsApprover reports whether the role may review claims.
func (r Role) IsApprover() bool {
	return r == RoleCoordinator || r == RoleAcademicManager
}
