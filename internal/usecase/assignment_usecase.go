// Package usecase defines the application's use case interfaces and their
// input/output records.
package usecase

import (
	"context"
	"time"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskDraftInput describes one requested checklist entry. Status is optional
// and defaults to TODO.
type TaskDraftInput struct {
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// TaskUpdateInput requests a status overwrite for one task of an assignment.
type TaskUpdateInput struct {
	TaskID uuid.UUID `json:"task_id"`
	Status string    `json:"status"`
}

// CreateAssignmentInput carries a scheduling request: one user, one store,
// one calendar date, plus the initial checklist.
type CreateAssignmentInput struct {
	Date    time.Time        `json:"date"`
	UserID  uuid.UUID        `json:"user_id"`
	StoreID uuid.UUID        `json:"store_id"`
	Tasks   []TaskDraftInput `json:"tasks,omitempty"`
}

// ListAssignmentsInput narrows and pages an assignment listing. Exactly one
// filter combination applies: (date, user), else (date, store), else date,
// else unfiltered.
type ListAssignmentsInput struct {
	Date    *time.Time
	UserID  *uuid.UUID
	StoreID *uuid.UUID
	Page    int
	Size    int
}

// AssignmentPage is one page of an assignment listing.
type AssignmentPage struct {
	Items      []*entity.Assignment `json:"items"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalItems int64                `json:"total_items"`
	TotalPages int                  `json:"total_pages"`
}

// AssignmentUsecase defines the interface for the assignment scheduler.
type AssignmentUsecase interface {
	// ListAssignments retrieves one page of assignments.
	ListAssignments(ctx context.Context, input *ListAssignmentsInput) (*AssignmentPage, error)

	// CreateAssignment validates eligibility and the one-per-day rule, then
	// persists a new PLANNED assignment with its checklist.
	CreateAssignment(ctx context.Context, input *CreateAssignmentInput) (*entity.Assignment, error)

	// CreateAssignmentsBulk validates every request before any persistence;
	// the first validation failure aborts the whole batch, and the batch is
	// persisted inside a single transaction.
	CreateAssignmentsBulk(ctx context.Context, inputs []*CreateAssignmentInput) ([]*entity.Assignment, error)

	// UpdateAssignment re-validates eligibility and overlap (excluding the
	// assignment itself), replaces user and store, and rebuilds the task
	// list wholesale.
	UpdateAssignment(ctx context.Context, id uuid.UUID, input *CreateAssignmentInput) (*entity.Assignment, error)

	// DeleteAssignment removes an assignment and its tasks. Deleting an
	// unknown id is a silent no-op.
	DeleteAssignment(ctx context.Context, id uuid.UUID) error

	// UpdateTaskStatuses applies task status overwrites and re-derives the
	// assignment status.
	UpdateTaskStatuses(ctx context.Context, id uuid.UUID, updates []TaskUpdateInput) (*entity.Assignment, error)
}
