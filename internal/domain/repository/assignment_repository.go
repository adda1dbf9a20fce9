package repository

import (
	"context"
	"time"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for assignment persistence.
var (
	// ErrAssignmentNotFound is returned when an assignment is not found.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrDuplicateAssignment is returned when the (user, date) unique index
	// rejects a write. The storage constraint is the real enforcement point
	// of the one-assignment-per-user-per-day invariant; the scheduler's
	// read-then-write check is only a fast-path rejection.
	ErrDuplicateAssignment = errors.New("user already has an assignment on this date")
)

// AssignmentFilter narrows an assignment listing. Filters compose with the
// scheduler's precedence: (date, user), then (date, store), then date only,
// then unfiltered.
type AssignmentFilter struct {
	Date    *time.Time
	UserID  *uuid.UUID
	StoreID *uuid.UUID
}

// AssignmentRepository defines the interface for assignment-related database
// operations. Task items are owned by their assignment: every write replaces
// the task rows wholesale and deletion cascades to them.
type AssignmentRepository interface {
	// CreateAssignment persists a new assignment together with its tasks.
	// Returns ErrDuplicateAssignment when the (user, date) index rejects it.
	CreateAssignment(ctx context.Context, assignment *entity.Assignment) error

	// CreateAssignments persists a batch of assignments. Callers run it
	// inside a transaction so a mid-batch failure rolls back every member.
	CreateAssignments(ctx context.Context, assignments []*entity.Assignment) error

	// FindAssignmentByID retrieves an assignment with its ordered tasks.
	// Returns ErrAssignmentNotFound when no such assignment exists.
	FindAssignmentByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)

	// FindAssignmentsByUserAndDate retrieves the assignments held by a user
	// on a calendar date. Used by the scheduler's overlap check.
	FindAssignmentsByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Assignment, error)

	// ListAssignments retrieves one page of assignments matching the filter,
	// plus the total match count. Page numbering starts at zero.
	ListAssignments(ctx context.Context, filter AssignmentFilter, page, size int) ([]*entity.Assignment, int64, error)

	// UpdateAssignment saves the assignment row and replaces its task rows
	// with the entity's current task list.
	// Returns ErrDuplicateAssignment when a re-dating collides.
	UpdateAssignment(ctx context.Context, assignment *entity.Assignment) error

	// DeleteAssignment removes an assignment and cascades to its tasks.
	// Returns ErrAssignmentNotFound when no row was deleted.
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}
