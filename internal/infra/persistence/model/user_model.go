// Package model holds the GORM-specific table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName  string     `gorm:"type:varchar(150);not null"`
	Email     string     `gorm:"type:varchar(255);unique;not null"`
	Role      string     `gorm:"type:varchar(20);not null;index"`
	Status    string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Region    string     `gorm:"type:varchar(100)"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Manager *UserModel `gorm:"foreignKey:ManagerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
