package memory

import (
	"context"
	"slices"
	"strings"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	store *Store
}

// Verify interface compliance
var _ repository.OrderRepository = (*orderRepository)(nil)

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	if _, exists := r.store.orders[order.ID]; exists {
		return domainerrors.ErrOrderAlreadyExists
	}
	for _, existing := range r.store.orders {
		if existing.OrderNumber == order.OrderNumber {
			return domainerrors.ErrOrderAlreadyExists.WrapMessage(order.OrderNumber)
		}
	}
	r.store.orders[order.ID] = cloneOrder(order)

	return nil
}

func (r *orderRepository) FindByID(_ context.Context, id uuid.UUID, _ bool) (*entity.Order, error) {
	order, ok := r.store.orders[id]
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	return cloneOrder(order), nil
}

func (r *orderRepository) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	for _, order := range r.store.orders {
		if order.OrderNumber == orderNumber {
			return cloneOrder(order), nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

func (r *orderRepository) List(_ context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	var found []*entity.Order
	for _, order := range r.store.orders {
		if matchesOrderFilter(order, filter) {
			found = append(found, cloneOrder(order))
		}
	}

	slices.SortFunc(found, func(a, b *entity.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.OrderNumber, b.OrderNumber)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(found) {
			return nil, nil
		}
		found = found[filter.Offset:]
	}
	if filter.Limit > 0 && len(found) > filter.Limit {
		found = found[:filter.Limit]
	}

	return found, nil
}

func (r *orderRepository) Update(_ context.Context, order *entity.Order) error {
	if _, ok := r.store.orders[order.ID]; !ok {
		return domainerrors.ErrOrderNotFound
	}
	r.store.orders[order.ID] = cloneOrder(order)

	return nil
}

func matchesOrderFilter(order *entity.Order, filter entity.OrderFilter) bool {
	switch {
	case filter.StudentID != nil && order.StudentID != *filter.StudentID:
		return false
	case len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, order.Status):
		return false
	case filter.OrderType != "" && order.OrderType != filter.OrderType:
		return false
	case filter.EducationLevel != "" && !strings.EqualFold(order.EducationLevel, filter.EducationLevel):
		return false
	case filter.ActiveOnly && !order.IsActive:
		return false
	case filter.ClaimClockBefore != nil && !order.ClaimClockStart().Before(*filter.ClaimClockBefore):
		return false
	case filter.Unconfirmed && order.StudentConfirmedAt != nil:
		return false
	default:
		return true
	}
}
