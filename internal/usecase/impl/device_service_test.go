package impl

import (
	"context"
	"testing"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	mockRepo "uniform/internal/mocks/repository"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
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
		Return([]*entity.StudentDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.StudentDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, studentID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, studentID, device.StudentID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: studentID,
		FCMToken:  "old-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	updatedDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: studentID,
		FCMToken:  "new-fcm-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByStudent(ctx, studentID).
		Return([]*entity.StudentDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, studentID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device-123",
		Platform: "symbian",
	})
	require.Error(t, err)
	assert.Nil(t, device)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "oneof", validationErr.Fields["Platform"])
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	existingDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: studentID,
		FCMToken:  "old-token",
		DeviceID:  "device-123",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, newToken).
		Return(nil)

	err := fx.service.UpdateFCMToken(ctx, studentID, deviceID, newToken)
	require.NoError(t, err)
}

func TestDeviceService_GetStudentDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	expectedDevices := []*entity.StudentDevice{
		{ID: uuid.New(), StudentID: studentID, IsActive: true},
		{ID: uuid.New(), StudentID: studentID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByStudent(ctx, studentID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetStudentDevices(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	studentID := uuid.New()
	deviceID := uuid.New()

	existingDevice := &entity.StudentDevice{
		ID:        deviceID,
		StudentID: studentID,
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, studentID, deviceID)
	require.NoError(t, err)
}
