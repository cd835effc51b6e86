package repository

import (
	"context"

	"uniform/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order. forUpdate locks the row until the transaction ends.
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Order, error)

	// FindByOrderNumber retrieves an order by its human-facing number.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// Update saves the order's mutable fields.
	Update(ctx context.Context, order *entity.Order) error
}
