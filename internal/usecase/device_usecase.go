package usecase

import (
	"context"

	"uniform/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, studentID uuid.UUID, deviceInfo *DeviceInfo) (*entity.StudentDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, studentID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetStudentDevices retrieves all active devices for a student
	GetStudentDevices(ctx context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, studentID, deviceID uuid.UUID) error
}
