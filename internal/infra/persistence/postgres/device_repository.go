package postgres

import (
	"context"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"
	"uniform/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a student.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.StudentDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict.WrapMessage("device already registered"), "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.StudentDevice, error) {
	var deviceM model.StudentDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByStudent retrieves all devices for a student (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error) {
	return repo.findDevices(ctx, "failed to find devices by student", "student_id = ?", studentID)
}

// FindActiveDevicesByStudent retrieves the devices that should receive notifications.
func (repo *deviceRepository) FindActiveDevicesByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error) {
	return repo.findDevices(ctx, "failed to find active devices by student", "student_id = ? AND is_active = ?", studentID, true)
}

func (repo *deviceRepository) findDevices(ctx context.Context, failure string, where string, args ...any) ([]*entity.StudentDevice, error) {
	var deviceModels []*model.StudentDeviceModel

	if err := repo.db.WithContext(ctx).
		Where(where, args...).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	devices := make([]*entity.StudentDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("fcm token already registered")
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks devices holding any of the tokens as inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.StudentDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices")
	}

	return nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StudentDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM StudentDeviceModel to a domain StudentDevice entity.
func toDeviceDomain(data *model.StudentDeviceModel) *entity.StudentDevice {
	if data == nil {
		return nil
	}

	return &entity.StudentDevice{
		ID:        data.ID,
		StudentID: data.StudentID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain StudentDevice entity to a GORM StudentDeviceModel.
func fromDeviceDomain(data *entity.StudentDevice) *model.StudentDeviceModel {
	if data == nil {
		return nil
	}

	return &model.StudentDeviceModel{
		ID:        data.ID,
		StudentID: data.StudentID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
