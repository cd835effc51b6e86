package impl

import (
	"context"
	"log/slog"
	"time"

	"uniform/config"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/matching"
	"uniform/internal/domain/repository"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReorderPoint = 20

// inventoryService implements the InventoryUsecase interface on top of the VariantStore.
type inventoryService struct {
	txManager           repository.TransactionManager
	store               *VariantStore
	defaultReorderPoint int
	logger              *slog.Logger
	now                 func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Store     *VariantStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	reorderPoint := defaultReorderPoint
	if params.Config != nil && params.Config.Inventory != nil && params.Config.Inventory.DefaultReorderPoint > 0 {
		reorderPoint = params.Config.Inventory.DefaultReorderPoint
	}

	return &inventoryService{
		txManager:           params.TxManager,
		store:               params.Store,
		defaultReorderPoint: reorderPoint,
		logger:              params.Logger,
		now:                 time.Now,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem imports a catalog item. Variant sizes must be unique within the item.
func (srv *inventoryService) CreateItem(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	item := &entity.Item{
		ID:                     uuid.New(),
		Name:                   input.Name,
		EducationLevel:         input.EducationLevel,
		Category:               input.Category,
		Price:                  input.Price,
		ReorderPoint:           srv.defaultReorderPoint,
		Variants:               make([]entity.SizeVariant, 0, len(input.Variants)),
		BeginningInventoryDate: now,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if input.ReorderPoint != nil {
		item.ReorderPoint = *input.ReorderPoint
	}

	seen := make(map[string]struct{}, len(input.Variants))
	for _, variant := range input.Variants {
		key := matching.NormalizeSize(variant.Size)
		if _, dup := seen[key]; dup {
			return nil, domainerrors.NewValidationError(map[string]string{"Variants": "duplicate size " + variant.Size})
		}
		seen[key] = struct{}{}

		price := input.Price
		if variant.Price != nil {
			price = *variant.Price
		}
		item.Variants = append(item.Variants, entity.SizeVariant{
			Size:  variant.Size,
			Stock: variant.Stock,
			Price: price,
		})
	}
	item.Refresh(srv.store.CriticalThreshold())
	item.BeginningInventory = item.Stock
	item.EndingInventory = item.Stock

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewItemRepository().Create(ctx, item)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Info("Item created",
		slog.String("itemID", item.ID.String()),
		slog.String("name", item.Name),
		slog.String("educationLevel", item.EducationLevel),
		slog.Int("stock", item.Stock),
	)

	return item, nil
}

// GetItem reads an item and rolls its beginning inventory over when a cycle has elapsed.
func (srv *inventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		found, err := itemRepo.FindByID(ctx, id, false)
		if err != nil {
			return err
		}

		reset, err := srv.store.ResetBeginningInventoryIfExpired(ctx, itemRepo, found, srv.now())
		if err != nil {
			return err
		}
		if reset {
			srv.log(ctx).Info("Beginning inventory rolled over", slog.String("itemID", found.ID.String()), slog.Int("beginningInventory", found.BeginningInventory))
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}

	return item, nil
}

// ListItems returns active items matching the filter.
func (srv *inventoryService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	var items []*entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		items, err = repoFactory.NewItemRepository().List(ctx, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// LowStock returns the items at or below their reorder point, critical, or out of stock.
func (srv *inventoryService) LowStock(ctx context.Context, educationLevel string) ([]*entity.Item, error) {
	return srv.ListItems(ctx, repository.ItemFilter{
		EducationLevel: educationLevel,
		Statuses: []entity.StockStatus{
			entity.StockStatusAtReorderPoint,
			entity.StockStatusCritical,
			entity.StockStatusOutOfStock,
		},
	})
}

// AddPurchase adds stock. The returned change feeds the restock notifier.
func (srv *inventoryService) AddPurchase(ctx context.Context, input *usecase.AddPurchaseInput) (*entity.StockChange, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var change entity.StockChange
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		change, err = srv.store.AddPurchase(ctx, repoFactory.NewItemRepository(), input.ItemID, input.Quantity, input.Size)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add purchase")
	}

	srv.log(ctx).Info("Purchase recorded",
		slog.String("itemID", change.ItemID.String()),
		slog.String("size", change.Size),
		slog.Int("quantity", input.Quantity),
		slog.Int("previousStock", change.PreviousStock),
		slog.Int("newStock", change.NewStock),
	)

	return &change, nil
}

// UpdateReorderPoint changes the threshold and recomputes the status.
func (srv *inventoryService) UpdateReorderPoint(ctx context.Context, id uuid.UUID, reorderPoint int) (*entity.Item, error) {
	if reorderPoint < 0 {
		return nil, domainerrors.NewValidationError(map[string]string{"ReorderPoint": "gte"})
	}

	var item *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		item, err = srv.store.UpdateReorderPoint(ctx, repoFactory.NewItemRepository(), id, reorderPoint)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update reorder point")
	}

	return item, nil
}
