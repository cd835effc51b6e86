package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(level string, stock int) *entity.Item {
	item := &entity.Item{
		ID:             uuid.New(),
		Name:           "Jersey",
		EducationLevel: level,
		Variants:       []entity.SizeVariant{{Size: "M", Stock: stock}},
	}
	item.Refresh(entity.DefaultCriticalThreshold)

	return item
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)
	item := newItem("Grade 7", 5)

	require.NoError(t, tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewItemRepository().Create(ctx, item)
	}))

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items := repoFactory.NewItemRepository()
		found, err := items.FindByID(ctx, item.ID, true)
		require.NoError(t, err)
		found.Variants[0].Stock = 0
		found.Refresh(entity.DefaultCriticalThreshold)
		require.NoError(t, items.Update(ctx, found))

		require.NoError(t, repoFactory.NewStudentRepository().Create(ctx, &entity.Student{ID: uuid.New(), Email: "a@school.test"}))

		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().FindByID(ctx, item.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 5, found.Stock)
		assert.Equal(t, 5, found.Variants[0].Stock)

		return nil
	}))
	assert.Empty(t, store.students)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(NewStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	tm := NewTransactionManager(NewStore())
	item := newItem("Grade 7", 5)

	require.NoError(t, tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items := repoFactory.NewItemRepository()
		require.NoError(t, items.Create(ctx, item))
		item.Variants[0].Stock = 99

		found, err := items.FindByID(ctx, item.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 5, found.Variants[0].Stock)

		found.Variants[0].Stock = 42
		again, err := items.FindByID(ctx, item.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 5, again.Variants[0].Stock)

		_, err = items.FindByID(ctx, uuid.New(), false)
		assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

		return nil
	}))
}

func TestItemRepository_FindCandidates(t *testing.T) {
	ctx := context.Background()
	tm := NewTransactionManager(NewStore())
	scoped := newItem("Grade 7", 1)
	shared := newItem(entity.AllEducationLevels, 1)
	other := newItem("Grade 12", 1)

	require.NoError(t, tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items := repoFactory.NewItemRepository()
		for _, item := range []*entity.Item{scoped, shared, other} {
			require.NoError(t, items.Create(ctx, item))
		}

		found, err := items.FindCandidates(ctx, repository.ItemLookup{
			Name:            "JERSEY",
			EducationLevels: []string{"grade 7", entity.AllEducationLevels},
		})
		require.NoError(t, err)
		ids := []uuid.UUID{}
		for _, item := range found {
			ids = append(ids, item.ID)
		}
		assert.ElementsMatch(t, []uuid.UUID{scoped.ID, shared.ID}, ids)

		all, err := items.FindCandidates(ctx, repository.ItemLookup{Name: "jersey"})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		return nil
	}))
}

func TestOrderRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	tm := NewTransactionManager(NewStore())
	studentID := uuid.New()
	base := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	confirmedAt := base.Add(time.Minute)

	orders := []*entity.Order{
		{ID: uuid.New(), OrderNumber: "ORD-1", StudentID: studentID, OrderType: entity.OrderTypeRegular, Status: entity.OrderStatusPending, IsActive: true, CreatedAt: base},
		{ID: uuid.New(), OrderNumber: "ORD-2", StudentID: studentID, OrderType: entity.OrderTypeRegular, Status: entity.OrderStatusPending, IsActive: true, CreatedAt: base.Add(time.Hour), StudentConfirmedAt: &confirmedAt},
		{ID: uuid.New(), OrderNumber: "ORD-3", StudentID: studentID, OrderType: entity.OrderTypePreOrder, Status: entity.OrderStatusPending, IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.New(), OrderNumber: "ORD-4", StudentID: uuid.New(), OrderType: entity.OrderTypeRegular, Status: entity.OrderStatusCancelled, IsActive: true, CreatedAt: base},
		{ID: uuid.New(), OrderNumber: "ORD-5", StudentID: studentID, OrderType: entity.OrderTypeRegular, Status: entity.OrderStatusPending, IsActive: false, CreatedAt: base},
	}

	require.NoError(t, tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewOrderRepository()
		for _, order := range orders {
			require.NoError(t, repo.Create(ctx, order))
		}

		err := repo.Create(ctx, &entity.Order{ID: uuid.New(), OrderNumber: "ORD-1"})
		assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyExists)

		cutoff := base.Add(90 * time.Minute)
		tests := []struct {
			name   string
			filter entity.OrderFilter
			want   []string
		}{
			{name: "student active", filter: entity.OrderFilter{StudentID: &studentID, ActiveOnly: true}, want: []string{"ORD-3", "ORD-2", "ORD-1"}},
			{name: "pre-orders", filter: entity.OrderFilter{OrderType: entity.OrderTypePreOrder}, want: []string{"ORD-3"}},
			{name: "claim clock", filter: entity.OrderFilter{Statuses: entity.ClaimableStatuses, OrderType: entity.OrderTypeRegular, ActiveOnly: true, ClaimClockBefore: &cutoff}, want: []string{"ORD-2", "ORD-1"}},
			{name: "unconfirmed", filter: entity.OrderFilter{Statuses: entity.ClaimableStatuses, ActiveOnly: true, Unconfirmed: true, OrderType: entity.OrderTypeRegular}, want: []string{"ORD-1"}},
			{name: "limit", filter: entity.OrderFilter{StudentID: &studentID, ActiveOnly: true, Limit: 1}, want: []string{"ORD-3"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				found, err := repo.List(ctx, tt.filter)
				require.NoError(t, err)

				numbers := make([]string, 0, len(found))
				for _, order := range found {
					numbers = append(numbers, order.OrderNumber)
				}
				assert.Equal(t, tt.want, numbers)
			})
		}

		return nil
	}))
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(NewStore())
	studentID := uuid.New()
	now := time.Now()

	phone := &entity.StudentDevice{ID: uuid.New(), StudentID: studentID, DeviceID: "phone", FCMToken: "token-phone", IsActive: true, CreatedAt: now}
	tablet := &entity.StudentDevice{ID: uuid.New(), StudentID: studentID, DeviceID: "tablet", FCMToken: "token-tablet", IsActive: true, CreatedAt: now.Add(time.Minute)}
	require.NoError(t, repo.CreateDevice(ctx, phone))
	require.NoError(t, repo.CreateDevice(ctx, tablet))

	err := repo.CreateDevice(ctx, &entity.StudentDevice{ID: uuid.New(), StudentID: studentID, DeviceID: "phone"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	active, err := repo.FindActiveDevicesByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "tablet", active[0].DeviceID, "newest first")

	require.NoError(t, repo.DeactivateByTokens(ctx, []string{"token-phone"}))
	active, err = repo.FindActiveDevicesByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "tablet", active[0].DeviceID)

	all, err := repo.FindDevicesByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// a fresh token reactivates the device
	require.NoError(t, repo.UpdateFCMToken(ctx, phone.ID, "token-phone-2"))
	found, err := repo.FindDeviceByID(ctx, phone.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)
	assert.Equal(t, "token-phone-2", found.FCMToken)

	require.NoError(t, repo.DeleteDevice(ctx, tablet.ID))
	_, err = repo.FindDeviceByID(ctx, tablet.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, tablet.ID, "x"), domainerrors.ErrDeviceNotFound)
}
