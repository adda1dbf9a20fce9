// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the activation state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates the user can be scheduled and submit visits.
	UserStatusActive UserStatus = "ACTIVE"
	// UserStatusInactive indicates the user is disabled.
	UserStatusInactive UserStatus = "INACTIVE"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	default:
		return false
	}
}

// User is a member of the field force. The manager link forms the reporting
// hierarchy: a PROMOTER points to exactly one SFOS manager, an SFOS has zero
// or more promoter subordinates. The hierarchy is exposed through a
// by-manager-id lookup rather than embedded object graphs, so serialized
// users never contain cycles.
type User struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	FullName  string     // The user's display name.
	Email     string     // The user's contact email, unique across the system.
	Role      Role       // SFOS, PROMOTER or SUPERVISOR.
	Status    UserStatus // Account activation state.
	Region    string     // Geographic region the user operates in.
	ManagerID *uuid.UUID // The SFOS this promoter reports to. Nil for SFOS and SUPERVISOR users.
	CreatedAt time.Time  // Timestamp of when this user account was created.
	UpdatedAt time.Time  // Timestamp of the last modification to this user's data.
}
