package impl

import (
	"context"
	"time"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, studentID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.StudentDevice, error) {
	if err := validateInput(deviceInfo); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindDevicesByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by student")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := time.Now()
	device := &entity.StudentDevice{
		ID:        uuid.New(),
		StudentID: studentID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a device the student owns
func (s *deviceService) UpdateFCMToken(ctx context.Context, studentID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, studentID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetStudentDevices retrieves all active devices for a student
func (s *deviceService) GetStudentDevices(ctx context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by student")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, studentID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, studentID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, studentID, deviceID uuid.UUID) (*entity.StudentDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.StudentID != studentID {
		return nil, domainerrors.ErrForbidden.WrapMessage("device belongs to another student")
	}

	return device, nil
}
