package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel mirrors the 'visits' table. Reported metrics and check-in
// coordinates are nullable: the mobile client does not always capture them.
type VisitModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VisitDate        time.Time  `gorm:"type:timestamptz;not null;index"`
	Status           string     `gorm:"type:varchar(20);not null;default:'COMPLETED'"`
	SalesAmount      *float64   `gorm:"type:numeric(12,2)"`
	ShelfShare       *float64   `gorm:"type:double precision"`
	InteractionCount *int
	Comment          string     `gorm:"type:text"`
	CheckInLatitude  *float64   `gorm:"type:double precision"`
	CheckInLongitude *float64   `gorm:"type:double precision"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignmentID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
