package domain

import "time"

// Role names are the enumerated permission levels of the hub. Authorization
// compares these by exact name; there is no hierarchy.
const (
	RoleAdmin        = "Admin"
	RoleOrganization = "Organization"
	RoleIndividual   = "Individual"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KnownRoleNames lists every role the system seeds, in display order.
func KnownRoleNames() []string {
	return []string{RoleAdmin, RoleOrganization, RoleIndividual}
}

// IsKnownRoleName reports whether name is one of the enumerated roles.
func IsKnownRoleName(name string) bool {
	switch name {
	case RoleAdmin, RoleOrganization, RoleIndividual:
		return true
	}
	return false
}
