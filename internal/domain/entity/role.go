// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleSFOS indicates a field-operations supervisor who manages promoters
	// and can itself be scheduled to stores.
	RoleSFOS Role = "SFOS"
	// RolePromoter indicates a field agent assigned to one store per date.
	RolePromoter Role = "PROMOTER"
	// RoleSupervisor indicates a back-office supervisor who reviews visits
	// but is never scheduled.
	RoleSupervisor Role = "SUPERVISOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSFOS, RolePromoter, RoleSupervisor:
		return true
	default:
		return false
	}
}

// IsSchedulable reports whether users with this role may hold store assignments.
func (r Role) IsSchedulable() bool {
	return r == RolePromoter || r == RoleSFOS
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
