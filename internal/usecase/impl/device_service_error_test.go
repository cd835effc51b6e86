package impl

import (
	"context"
	"testing"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, domainerrors.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, studentID, deviceID, "new-fcm-token")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdateFCMToken_Forbidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	existingDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: uuid.New(),
		FCMToken:  "old-token",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-fcm-token")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_UpdateFCMToken_UpdateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	existingDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: studentID,
		FCMToken:  "old-token",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, newToken).
		Return(errors.New("database error"))

	err := fx.service.UpdateFCMToken(ctx, studentID, deviceID, newToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update FCM token")
}

func TestDeviceService_DeactivateDevice_Forbidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	existingDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: uuid.New(),
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_DeactivateDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, errors.New("database error"))

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find device by ID")
}

func TestDeviceService_DeactivateDevice_DeleteError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.StudentDevice{ID: deviceID, StudentID: studentID, IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(errors.New("database error"))

	err := fx.service.DeactivateDevice(ctx, studentID, deviceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete device")
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByStudent(ctx, studentID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, studentID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by student")
}

func TestDeviceService_RegisterDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByStudent(ctx, studentID).
		Return(nil, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.StudentDevice")).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, studentID, &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to create device")
}
