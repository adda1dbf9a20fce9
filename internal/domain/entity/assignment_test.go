package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment_RebuildTasks(t *testing.T) {
	assignment := &Assignment{
		Tasks: []TaskItem{{ID: uuid.New(), Description: "old task", Status: TaskStatusDone}},
	}

	assignment.RebuildTasks([]TaskDraft{
		{Description: "Restock shelf"},
		{Description: "   "},
		{Description: ""},
		{Description: "Clean display", Status: TaskStatusInProgress},
	})

	require.Len(t, assignment.Tasks, 2)
	assert.Equal(t, "Restock shelf", assignment.Tasks[0].Description)
	assert.Equal(t, TaskStatusTodo, assignment.Tasks[0].Status)
	assert.Equal(t, "Clean display", assignment.Tasks[1].Description)
	assert.Equal(t, TaskStatusInProgress, assignment.Tasks[1].Status)
	assert.NotEqual(t, uuid.Nil, assignment.Tasks[0].ID)
}

func TestAssignment_RebuildTasks_EmptyInputClearsList(t *testing.T) {
	assignment := &Assignment{
		Tasks: []TaskItem{{ID: uuid.New(), Description: "old task", Status: TaskStatusDone}},
	}

	assignment.RebuildTasks(nil)

	assert.Empty(t, assignment.Tasks)
	assert.Equal(t, AssignmentStatusPlanned, assignment.DeriveStatus())
}

func TestAssignment_ApplyTaskUpdates(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	assignment := &Assignment{
		Tasks: []TaskItem{
			{ID: first, Description: "Restock shelf", Status: TaskStatusTodo},
			{ID: second, Description: "Clean display", Status: TaskStatusTodo},
		},
	}

	changed := assignment.ApplyTaskUpdates([]TaskUpdate{
		{TaskID: first, Status: TaskStatusDone},
		{TaskID: uuid.New(), Status: TaskStatusDone}, // unknown id, ignored
	})

	assert.True(t, changed)
	assert.Equal(t, TaskStatusDone, assignment.Tasks[0].Status)
	assert.Equal(t, TaskStatusTodo, assignment.Tasks[1].Status)
}

func TestAssignment_ApplyTaskUpdates_EmptySetIsNoop(t *testing.T) {
	assignment := &Assignment{
		Tasks: []TaskItem{{ID: uuid.New(), Description: "task", Status: TaskStatusTodo}},
	}

	assert.False(t, assignment.ApplyTaskUpdates(nil))
	assert.False(t, assignment.ApplyTaskUpdates([]TaskUpdate{}))
	assert.Equal(t, TaskStatusTodo, assignment.Tasks[0].Status)
}

func TestAssignment_ApplyTaskUpdates_LastUpdateWins(t *testing.T) {
	id := uuid.New()
	assignment := &Assignment{
		Tasks: []TaskItem{{ID: id, Description: "task", Status: TaskStatusTodo}},
	}

	assignment.ApplyTaskUpdates([]TaskUpdate{
		{TaskID: id, Status: TaskStatusInProgress},
		{TaskID: id, Status: TaskStatusDone},
	})

	assert.Equal(t, TaskStatusDone, assignment.Tasks[0].Status)
}

func TestAssignment_DeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []TaskStatus
		want     AssignmentStatus
	}{
		{name: "no tasks", statuses: nil, want: AssignmentStatusPlanned},
		{name: "all todo", statuses: []TaskStatus{TaskStatusTodo, TaskStatusTodo}, want: AssignmentStatusPlanned},
		{name: "all done", statuses: []TaskStatus{TaskStatusDone, TaskStatusDone}, want: AssignmentStatusDone},
		{name: "one done one todo", statuses: []TaskStatus{TaskStatusDone, TaskStatusTodo}, want: AssignmentStatusInProgress},
		{name: "one in progress", statuses: []TaskStatus{TaskStatusInProgress, TaskStatusTodo}, want: AssignmentStatusInProgress},
		{name: "single done", statuses: []TaskStatus{TaskStatusDone}, want: AssignmentStatusDone},
		{name: "mixed done and in progress", statuses: []TaskStatus{TaskStatusDone, TaskStatusInProgress}, want: AssignmentStatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := &Assignment{}
			for _, status := range tt.statuses {
				assignment.Tasks = append(assignment.Tasks, TaskItem{ID: uuid.New(), Description: "task", Status: status})
			}

			assert.Equal(t, tt.want, assignment.DeriveStatus())
		})
	}
}

func TestAssignment_ChecklistLifecycle(t *testing.T) {
	assignment := &Assignment{Status: AssignmentStatusPlanned}
	assignment.RebuildTasks([]TaskDraft{
		{Description: "Restock shelf"},
		{Description: "Clean display"},
	})

	require.Len(t, assignment.Tasks, 2)
	assert.Equal(t, AssignmentStatusPlanned, assignment.DeriveStatus())

	// Finishing the first task moves the assignment to IN_PROGRESS.
	assignment.ApplyTaskUpdates([]TaskUpdate{{TaskID: assignment.Tasks[0].ID, Status: TaskStatusDone}})
	assignment.RecalculateStatus()
	assert.Equal(t, AssignmentStatusInProgress, assignment.Status)

	// Finishing the second completes it.
	assignment.ApplyTaskUpdates([]TaskUpdate{{TaskID: assignment.Tasks[1].ID, Status: TaskStatusDone}})
	assignment.RecalculateStatus()
	assert.Equal(t, AssignmentStatusDone, assignment.Status)
}

func TestDay_TruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	stamp := time.Date(2024, 6, 1, 15, 30, 45, 123, loc)

	day := Day(stamp)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), day)
}
