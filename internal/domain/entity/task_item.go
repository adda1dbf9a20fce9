// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// TaskStatus represents the completion state of a single checklist task.
type TaskStatus string

const (
	// TaskStatusTodo indicates the task has not been started.
	TaskStatusTodo TaskStatus = "TODO"
	// TaskStatusInProgress indicates the task is being worked on.
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	// TaskStatusDone indicates the task is finished.
	TaskStatusDone TaskStatus = "DONE"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// TaskItem is one entry of an assignment's checklist. Task items are owned
// exclusively by their assignment: they are rebuilt wholesale on update and
// removed when the assignment is deleted, never shared or kept alive on
// their own.
type TaskItem struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the task.
	Description string     // Free-text description of the work to perform.
	Status      TaskStatus // TODO, IN_PROGRESS or DONE.
}

// TaskDraft describes one requested checklist entry. Status is optional and
// defaults to TODO; drafts with a blank description are skipped.
type TaskDraft struct {
	Description string
	Status      TaskStatus
}

// TaskUpdate requests a status overwrite for an existing task by id.
type TaskUpdate struct {
	TaskID uuid.UUID
	Status TaskStatus
}
