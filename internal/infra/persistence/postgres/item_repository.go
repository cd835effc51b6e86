package postgres

import (
	"context"
	"strings"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/matching"
	"uniform/internal/domain/repository"
	"uniform/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create persists a new item in the embedded variant shape.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrItemAlreadyExists, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves an item, optionally holding a row lock until the transaction ends.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := lockFor(repo.db.WithContext(ctx), forUpdate).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindCandidates narrows rows by a case-insensitive name prefix in SQL and applies the
// parenthetical-insensitive comparison in Go.
func (repo *itemRepository) FindCandidates(ctx context.Context, lookup repository.ItemLookup) ([]*entity.Item, error) {
	key := matching.ItemKey(lookup.Name)
	if key == "" {
		return nil, nil
	}

	query := lockFor(repo.db.WithContext(ctx), lookup.ForUpdate).
		Where("LOWER(name) LIKE ?", escapeLike(key)+"%")
	if len(lookup.EducationLevels) > 0 {
		query = query.Where("LOWER(education_level) IN ?", lowerAll(lookup.EducationLevels))
	}

	var itemModels []*model.ItemModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		if matching.SameItem(itemM.Name, lookup.Name) {
			items = append(items, toItemDomain(itemM))
		}
	}

	return items, nil
}

// List returns items matching the filter. A level filter includes all-level rows.
func (repo *itemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).Model(&model.ItemModel{})
	if filter.EducationLevel != "" {
		query = query.Where("LOWER(education_level) IN ?", lowerAll([]string{filter.EducationLevel, entity.AllEducationLevels}))
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = string(status)
		}
		query = query.Where("status IN ?", statuses)
	}

	var itemModels []*model.ItemModel
	if err := query.Order("name ASC").Order("education_level ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// Update writes the item back in the embedded variant shape.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(itemM)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrItemAlreadyExists, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}

	return nil
}

func lockFor(db *gorm.DB, forUpdate bool) *gorm.DB {
	if !forUpdate {
		return db
	}

	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(strings.TrimSpace(v))
	}

	return lowered
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --- Mapper Functions ---

// toItemDomain converts an ItemModel to a domain Item. A legacy row without an embedded
// variant list becomes a single variant carrying the row's size, stock and price.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	item := &entity.Item{
		ID:                     data.ID,
		Name:                   data.Name,
		EducationLevel:         data.EducationLevel,
		Category:               data.Category,
		Price:                  data.Price,
		Stock:                  data.Stock,
		ReorderPoint:           data.ReorderPoint,
		BeginningInventory:     data.BeginningInventory,
		BeginningInventoryDate: data.BeginningInventoryDate,
		Purchases:              data.Purchases,
		EndingInventory:        data.EndingInventory,
		Status:                 entity.StockStatus(data.Status),
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}

	if len(data.Variants) == 0 {
		item.Variants = []entity.SizeVariant{{
			Size:      data.Size,
			Stock:     data.Stock,
			Price:     data.Price,
			Purchases: data.Purchases,
		}}

		return item
	}

	item.Variants = make([]entity.SizeVariant, 0, len(data.Variants))
	stock := 0
	for _, v := range data.Variants {
		item.Variants = append(item.Variants, entity.SizeVariant{
			Size:      v.Size,
			Stock:     v.Stock,
			Price:     v.Price,
			Purchases: v.Purchases,
		})
		stock += v.Stock
	}
	item.Stock = stock

	return item
}

// fromItemDomain converts a domain Item to an ItemModel. Single-variant items keep the size
// column filled so legacy readers still see it.
func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.ItemModel{
		ID:                     data.ID,
		Name:                   data.Name,
		EducationLevel:         data.EducationLevel,
		Category:               data.Category,
		Price:                  data.Price,
		Stock:                  data.Stock,
		ReorderPoint:           data.ReorderPoint,
		Variants:               make([]model.VariantModel, 0, len(data.Variants)),
		BeginningInventory:     data.BeginningInventory,
		BeginningInventoryDate: data.BeginningInventoryDate,
		Purchases:              data.Purchases,
		EndingInventory:        data.EndingInventory,
		Status:                 string(data.Status),
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
	for _, v := range data.Variants {
		itemM.Variants = append(itemM.Variants, model.VariantModel{
			Size:      v.Size,
			Stock:     v.Stock,
			Price:     v.Price,
			Purchases: v.Purchases,
		})
	}
	if len(data.Variants) == 1 {
		itemM.Size = data.Variants[0].Size
	}

	return itemM
}
