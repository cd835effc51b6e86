package repository

import (
	"context"

	"uniform/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a student.
	CreateDevice(ctx context.Context, device *entity.StudentDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.StudentDevice, error)

	// FindDevicesByStudent retrieves all devices for a student (including inactive).
	FindDevicesByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error)

	// FindActiveDevicesByStudent retrieves the devices that should receive notifications.
	FindActiveDevicesByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks devices holding any of the tokens as inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
