package memory

import (
	"context"
	"slices"
	"time"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	store *Store
}

// NewDeviceRepository creates a DeviceRepository over the store.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{store: store}
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.StudentDevice) error {
	r.store.deviceMu.Lock()
	defer r.store.deviceMu.Unlock()

	for _, existing := range r.store.devices {
		if existing.StudentID == device.StudentID && existing.DeviceID == device.DeviceID {
			return domainerrors.ErrConflict.WrapMessage("device already registered")
		}
	}
	r.store.devices[device.ID] = cloneDevice(device)

	return nil
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.StudentDevice, error) {
	r.store.deviceMu.RLock()
	defer r.store.deviceMu.RUnlock()

	device, ok := r.store.devices[id]
	if !ok {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return cloneDevice(device), nil
}

func (r *deviceRepository) FindDevicesByStudent(_ context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error) {
	return r.filter(func(d *entity.StudentDevice) bool { return d.StudentID == studentID }), nil
}

func (r *deviceRepository) FindActiveDevicesByStudent(_ context.Context, studentID uuid.UUID) ([]*entity.StudentDevice, error) {
	return r.filter(func(d *entity.StudentDevice) bool { return d.StudentID == studentID && d.IsActive }), nil
}

func (r *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) error {
	r.store.deviceMu.Lock()
	defer r.store.deviceMu.Unlock()

	device, ok := r.store.devices[deviceID]
	if !ok {
		return domainerrors.ErrDeviceNotFound
	}
	device.FCMToken = fcmToken
	device.IsActive = true
	device.UpdatedAt = time.Now()

	return nil
}

func (r *deviceRepository) DeactivateByTokens(_ context.Context, tokens []string) error {
	r.store.deviceMu.Lock()
	defer r.store.deviceMu.Unlock()

	for _, device := range r.store.devices {
		if slices.Contains(tokens, device.FCMToken) {
			device.IsActive = false
			device.UpdatedAt = time.Now()
		}
	}

	return nil
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) error {
	r.store.deviceMu.Lock()
	defer r.store.deviceMu.Unlock()

	if _, ok := r.store.devices[id]; !ok {
		return domainerrors.ErrDeviceNotFound
	}
	delete(r.store.devices, id)

	return nil
}

func (r *deviceRepository) filter(keep func(*entity.StudentDevice) bool) []*entity.StudentDevice {
	r.store.deviceMu.RLock()
	defer r.store.deviceMu.RUnlock()

	var found []*entity.StudentDevice
	for _, device := range r.store.devices {
		if keep(device) {
			found = append(found, cloneDevice(device))
		}
	}
	slices.SortFunc(found, func(a, b *entity.StudentDevice) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return found
}
