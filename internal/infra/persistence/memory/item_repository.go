package memory

import (
	"context"
	"slices"
	"strings"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/matching"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
)

type itemRepository struct {
	store *Store
}

// Verify interface compliance
var _ repository.ItemRepository = (*itemRepository)(nil)

func (r *itemRepository) Create(_ context.Context, item *entity.Item) error {
	if _, exists := r.store.items[item.ID]; exists {
		return domainerrors.ErrItemAlreadyExists
	}
	r.store.items[item.ID] = cloneItem(item)

	return nil
}

func (r *itemRepository) FindByID(_ context.Context, id uuid.UUID, _ bool) (*entity.Item, error) {
	item, ok := r.store.items[id]
	if !ok {
		return nil, domainerrors.ErrItemNotFound
	}

	return cloneItem(item), nil
}

func (r *itemRepository) FindCandidates(_ context.Context, lookup repository.ItemLookup) ([]*entity.Item, error) {
	var found []*entity.Item
	for _, item := range r.store.items {
		if !matching.SameItem(item.Name, lookup.Name) {
			continue
		}
		if len(lookup.EducationLevels) > 0 && !containsFold(lookup.EducationLevels, item.EducationLevel) {
			continue
		}
		found = append(found, cloneItem(item))
	}
	sortItems(found)

	return found, nil
}

func (r *itemRepository) List(_ context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	var found []*entity.Item
	for _, item := range r.store.items {
		if filter.EducationLevel != "" && !containsFold([]string{filter.EducationLevel, entity.AllEducationLevels}, item.EducationLevel) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(filter.Category, item.Category) {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, item.Status) {
			continue
		}
		found = append(found, cloneItem(item))
	}
	sortItems(found)

	return found, nil
}

func (r *itemRepository) Update(_ context.Context, item *entity.Item) error {
	if _, ok := r.store.items[item.ID]; !ok {
		return domainerrors.ErrItemNotFound
	}
	r.store.items[item.ID] = cloneItem(item)

	return nil
}

func sortItems(items []*entity.Item) {
	slices.SortFunc(items, func(a, b *entity.Item) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if c := strings.Compare(a.EducationLevel, b.EducationLevel); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func containsFold(values []string, target string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, target)
	})
}
