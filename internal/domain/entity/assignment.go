// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus is the derived lifecycle state of an assignment.
type AssignmentStatus string

const (
	// AssignmentStatusPlanned indicates no task has been started yet.
	AssignmentStatusPlanned AssignmentStatus = "PLANNED"
	// AssignmentStatusInProgress indicates at least one task has progressed.
	AssignmentStatusInProgress AssignmentStatus = "IN_PROGRESS"
	// AssignmentStatusDone indicates every task is finished.
	AssignmentStatusDone AssignmentStatus = "DONE"
)

// String returns the string representation of the AssignmentStatus.
func (s AssignmentStatus) String() string {
	return string(s)
}

// IsValid checks if the AssignmentStatus is a valid value.
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPlanned, AssignmentStatusInProgress, AssignmentStatusDone:
		return true
	default:
		return false
	}
}

// Assignment schedules one user to one store for one calendar date, carrying
// an ordered task checklist. At most one assignment exists per (user, date)
// pair; the scheduler rejects overlaps and a unique index on the assignments
// table enforces the invariant under concurrent writes.
type Assignment struct {
	ID           uuid.UUID        // The Global Unique Identifier (GUID) for the assignment.
	Date         time.Time        // The calendar date of the assignment. The time component is always midnight UTC.
	Status       AssignmentStatus // Derived from the task checklist, PLANNED on creation.
	CheckInTime  *time.Time       // When the user first checked in at the store. Set once by visit submission.
	CheckOutTime *time.Time       // When the user last checked out. Advanced by every linked visit submission.
	UserID       uuid.UUID        // The scheduled PROMOTER or SFOS user.
	StoreID      uuid.UUID        // The target store.
	Tasks        []TaskItem       // Ordered checklist, exclusively owned by this assignment.
	CreatedAt    time.Time        // Timestamp of when this assignment was created.
	UpdatedAt    time.Time        // Timestamp of the last modification.
}

// Day truncates a timestamp to its calendar date at midnight UTC, the
// granularity assignments are scheduled at.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RebuildTasks replaces the checklist wholesale with the given drafts. The
// old list is discarded, order is preserved as given, drafts with a blank
// description are silently skipped, and an unspecified status defaults to
// TODO. Wholesale replacement keeps ownership simple: tasks never outlive
// their assignment and are never diffed incrementally.
func (a *Assignment) RebuildTasks(drafts []TaskDraft) {
	a.Tasks = make([]TaskItem, 0, len(drafts))
	for _, draft := range drafts {
		if strings.TrimSpace(draft.Description) == "" {
			continue
		}

		status := draft.Status
		if status == "" {
			status = TaskStatusTodo
		}

		a.Tasks = append(a.Tasks, TaskItem{
			ID:          uuid.New(),
			Description: draft.Description,
			Status:      status,
		})
	}
}

// ApplyTaskUpdates overwrites the status of every task whose id matches an
// update. Updates referencing unknown task ids are ignored, unmatched tasks
// are untouched, and when the same task id appears twice the last update
// wins. Returns whether any task changed.
func (a *Assignment) ApplyTaskUpdates(updates []TaskUpdate) bool {
	if len(updates) == 0 {
		return false
	}

	statusByID := make(map[uuid.UUID]TaskStatus, len(updates))
	for _, update := range updates {
		if update.TaskID == uuid.Nil || update.Status == "" {
			continue
		}
		statusByID[update.TaskID] = update.Status
	}

	changed := false
	for i := range a.Tasks {
		if status, ok := statusByID[a.Tasks[i].ID]; ok {
			a.Tasks[i].Status = status
			changed = true
		}
	}

	return changed
}

// DeriveStatus computes the assignment status from its task checklist:
// no tasks or all TODO yields PLANNED, all DONE yields DONE, and any
// DONE or IN_PROGRESS task short of full completion yields IN_PROGRESS.
func (a *Assignment) DeriveStatus() AssignmentStatus {
	if len(a.Tasks) == 0 {
		return AssignmentStatusPlanned
	}

	done, started := 0, 0
	for _, task := range a.Tasks {
		switch task.Status {
		case TaskStatusDone:
			done++
		case TaskStatusInProgress:
			started++
		case TaskStatusTodo:
		}
	}

	switch {
	case done == len(a.Tasks):
		return AssignmentStatusDone
	case done > 0 || started > 0:
		return AssignmentStatusInProgress
	default:
		return AssignmentStatusPlanned
	}
}

// RecalculateStatus re-derives and stores the assignment status. Runs after
// every task mutation; never on initial creation, where PLANNED is forced.
func (a *Assignment) RecalculateStatus() {
	a.Status = a.DeriveStatus()
}
