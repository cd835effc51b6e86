package usecase

import (
	"context"

	"uniform/internal/domain/entity"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantInput describes one size when creating an item.
type VariantInput struct {
	Size  string           `json:"size"`
	Stock int              `json:"stock" validate:"gte=0"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// CreateItemInput is a catalog import of one item.
type CreateItemInput struct {
	Name           string          `json:"name" validate:"required"`
	EducationLevel string          `json:"education_level" validate:"required"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	ReorderPoint   *int            `json:"reorder_point,omitempty" validate:"omitempty,gte=0"`
	Variants       []VariantInput  `json:"variants" validate:"required,min=1,dive"`
}

// AddPurchaseInput records stock bought for an item.
type AddPurchaseInput struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"gt=0"`
	Size     string    `json:"size"`
}

// InventoryUsecase exposes the variant store to the delivery layer.
type InventoryUsecase interface {
	// CreateItem imports a catalog item with its variants.
	CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error)

	// GetItem returns an item, rolling its beginning inventory over when a cycle has elapsed.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// ListItems returns active items matching the filter.
	ListItems(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error)

	// LowStock returns the items that are not Above Threshold.
	LowStock(ctx context.Context, educationLevel string) ([]*entity.Item, error)

	// AddPurchase adds stock to an item or one of its sizes.
	AddPurchase(ctx context.Context, input *AddPurchaseInput) (*entity.StockChange, error)

	// UpdateReorderPoint changes the threshold used for the item's status.
	UpdateReorderPoint(ctx context.Context, id uuid.UUID, reorderPoint int) (*entity.Item, error)
}
