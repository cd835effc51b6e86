package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentDeviceModel is the GORM-specific struct for the 'student_devices' table.
// It represents a student's device registered for push notifications.
type StudentDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_student_device"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_student_device"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StudentDeviceModel) TableName() string {
	return "student_devices"
}
