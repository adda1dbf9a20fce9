package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel mirrors the 'assignments' table. The composite unique index
// on (user_id, date) enforces one assignment per user per day even under
// concurrent creates.
type AssignmentModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:idx_assignments_user_date"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PLANNED'"`
	CheckInTime  *time.Time `gorm:"type:timestamptz"`
	CheckOutTime *time.Time `gorm:"type:timestamptz"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_user_date"`
	StoreID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tasks []TaskItemModel `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AssignmentModel) TableName() string {
	return "assignments"
}

// TaskItemModel mirrors the 'task_items' table. Position preserves the
// checklist order the planner authored.
type TaskItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Description  string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'TODO'"`
	Position     int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskItemModel) TableName() string {
	return "task_items"
}
