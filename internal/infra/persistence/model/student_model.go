package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel mirrors the 'students' table. ID is the identity subject, not generated.
type StudentModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	StudentNumber       string    `gorm:"type:varchar(50);index"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	Name                string    `gorm:"type:varchar(255);not null"`
	EducationLevel      string    `gorm:"type:varchar(100);not null"`
	Gender              string    `gorm:"type:varchar(10)"`
	StudentType         string    `gorm:"type:varchar(10)"`
	TotalItemLimit      *int
	TotalItemLimitSetAt *time.Time
	OrderLockoutPeriod  int    `gorm:"not null;default:0"`
	OrderLockoutUnit    string `gorm:"type:varchar(20);not null;default:'months'"`
	UnclaimedVoidCount  int    `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
