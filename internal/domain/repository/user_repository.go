// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
// The reporting hierarchy is exposed through FindUsersByManager (the derived
// forward index) instead of embedded subordinate lists.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves all users ordered by full name.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// FindUsersByManager retrieves the subordinates reporting to a manager.
	FindUsersByManager(ctx context.Context, managerID uuid.UUID) ([]*entity.User, error)

	// UpdateUser updates an existing user record.
	UpdateUser(ctx context.Context, user *entity.User) error
}
