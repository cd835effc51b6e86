// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"uniform/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemLookup selects candidate rows for a name and cohort.
type ItemLookup struct {
	Name            string
	EducationLevels []string
	// ForUpdate locks the returned rows until the transaction ends.
	ForUpdate bool
}

// ItemFilter narrows catalog listings. Zero values are ignored.
type ItemFilter struct {
	EducationLevel string
	Category       string
	Statuses       []entity.StockStatus
}

// ItemRepository defines the persistence operations for catalog items and their stock.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item. forUpdate locks the row until the transaction ends.
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Item, error)

	// FindCandidates returns the active items whose name matches and whose cohort is one of the given levels.
	FindCandidates(ctx context.Context, lookup ItemLookup) ([]*entity.Item, error)

	// List returns active items matching the filter.
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)

	// Update saves the item's stock, variants, inventory counters and status.
	Update(ctx context.Context, item *entity.Item) error
}
