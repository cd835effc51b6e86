package impl

import (
	"context"
	"strings"
	"sync"
	"time"

	"uniform/config"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/matching"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// VariantStore owns every stock mutation. Callers pass the repository bound to
// their transaction so that reservations commit or roll back with the order write.
type VariantStore struct {
	criticalThreshold int
	cycle             time.Duration
	purchases         *purchaseGuard
}

// NewVariantStore creates a VariantStore from inventory configuration.
func NewVariantStore(cfg *config.Config) *VariantStore {
	criticalThreshold, cycleDays := entity.DefaultCriticalThreshold, 365
	if cfg != nil && cfg.Inventory != nil {
		if cfg.Inventory.CriticalThreshold > 0 {
			criticalThreshold = cfg.Inventory.CriticalThreshold
		}
		if cfg.Inventory.CycleDays > 0 {
			cycleDays = cfg.Inventory.CycleDays
		}
	}

	return &VariantStore{
		criticalThreshold: criticalThreshold,
		cycle:             time.Duration(cycleDays) * 24 * time.Hour,
		purchases:         newPurchaseGuard(),
	}
}

// CriticalThreshold is the stock level at or below which an item is Critical.
func (v *VariantStore) CriticalThreshold() int {
	return v.criticalThreshold
}

// FindSizeRow resolves the row and variant index for a name, cohort and size.
// Rows named exactly as requested are searched before rows that only share the item key.
// Within a tier, rows scoped to the cohort win over all-level rows, and a stronger size match wins over row order.
func (v *VariantStore) FindSizeRow(ctx context.Context, items repository.ItemRepository, itemName, educationLevel, size string, forUpdate bool) (*entity.Item, int, error) {
	candidates, err := items.FindCandidates(ctx, repository.ItemLookup{
		Name:            itemName,
		EducationLevels: cohortLevels(educationLevel),
		ForUpdate:       forUpdate,
	})
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to find candidate items")
	}

	exact, related := splitByName(filterSameItem(candidates, itemName), itemName)
	if len(exact) == 0 && len(related) == 0 {
		return nil, -1, domainerrors.ErrItemNotFound.WrapMessage(itemName)
	}

	for _, tier := range [][]*entity.Item{exact, related} {
		if item, idx := bestSizeMatch(orderByCohort(tier, educationLevel), size); item != nil {
			return item, idx, nil
		}
	}

	return nil, -1, domainerrors.ErrSizeNotFound.WrapMessage(itemName + " " + size)
}

func bestSizeMatch(rows []*entity.Item, size string) (*entity.Item, int) {
	var (
		bestItem *entity.Item
		bestIdx  = -1
		bestPass = matching.PassNone
	)
	for _, item := range rows {
		idx, pass := matching.FindSize(variantSizes(item), size)
		if pass == matching.PassNone {
			continue
		}
		if bestPass == matching.PassNone || pass < bestPass {
			bestItem, bestIdx, bestPass = item, idx, pass
		}
		if pass == matching.PassExact {
			break
		}
	}

	return bestItem, bestIdx
}

// Reserve takes quantity from the matching variant, floored at zero. Insufficient stock is not an error.
func (v *VariantStore) Reserve(ctx context.Context, items repository.ItemRepository, itemName, educationLevel, size string, quantity int) (entity.StockChange, error) {
	item, idx, err := v.FindSizeRow(ctx, items, itemName, educationLevel, size, true)
	if err != nil {
		return entity.StockChange{}, err
	}

	change := item.Reserve(idx, quantity, v.criticalThreshold)
	if err := items.Update(ctx, item); err != nil {
		return entity.StockChange{}, errors.Wrap(err, "failed to save reserved stock")
	}

	return change, nil
}

// Release returns quantity to the matching variant.
func (v *VariantStore) Release(ctx context.Context, items repository.ItemRepository, itemName, educationLevel, size string, quantity int) (entity.StockChange, error) {
	item, idx, err := v.FindSizeRow(ctx, items, itemName, educationLevel, size, true)
	if err != nil {
		return entity.StockChange{}, err
	}

	change := item.Release(idx, quantity, v.criticalThreshold)
	if err := items.Update(ctx, item); err != nil {
		return entity.StockChange{}, errors.Wrap(err, "failed to save released stock")
	}

	return change, nil
}

// AddPurchase adds bought stock to an item. size may be empty for single-variant items.
func (v *VariantStore) AddPurchase(ctx context.Context, items repository.ItemRepository, itemID uuid.UUID, quantity int, size string) (entity.StockChange, error) {
	v.purchases.begin(itemID)
	defer v.purchases.end(itemID)

	item, err := items.FindByID(ctx, itemID, true)
	if err != nil {
		return entity.StockChange{}, err
	}

	idx, pass := matching.FindSize(variantSizes(item), size)
	if pass == matching.PassNone {
		return entity.StockChange{}, domainerrors.ErrSizeNotFound.WrapMessage(item.Name + " " + size)
	}

	change := item.AddPurchase(idx, quantity, v.criticalThreshold)
	if err := items.Update(ctx, item); err != nil {
		return entity.StockChange{}, errors.Wrap(err, "failed to save purchase")
	}

	return change, nil
}

// UpdateReorderPoint changes the threshold and recomputes the status.
func (v *VariantStore) UpdateReorderPoint(ctx context.Context, items repository.ItemRepository, itemID uuid.UUID, reorderPoint int) (*entity.Item, error) {
	item, err := items.FindByID(ctx, itemID, true)
	if err != nil {
		return nil, err
	}

	item.ReorderPoint = reorderPoint
	item.Refresh(v.criticalThreshold)

	if err := items.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to save reorder point")
	}

	return item, nil
}

// ResetBeginningInventoryIfExpired rolls the beginning inventory over once a cycle has elapsed.
// It does nothing while a purchase for the same item is being recorded. The item may come from
// an unlocked read, so the rollover is applied to a row re-read under lock and copied back.
func (v *VariantStore) ResetBeginningInventoryIfExpired(ctx context.Context, items repository.ItemRepository, item *entity.Item, now time.Time) (bool, error) {
	if v.purchases.busy(item.ID) || !item.BeginningInventoryExpired(now, v.cycle) {
		return false, nil
	}

	locked, err := items.FindByID(ctx, item.ID, true)
	if err != nil {
		return false, errors.Wrap(err, "failed to lock item for rollover")
	}
	if !locked.BeginningInventoryExpired(now, v.cycle) {
		*item = *locked

		return false, nil
	}

	locked.RollOverBeginningInventory(now, v.criticalThreshold)
	if err := items.Update(ctx, locked); err != nil {
		return false, errors.Wrap(err, "failed to save beginning inventory")
	}
	*item = *locked

	return true, nil
}

// cohortLevels lists the education levels whose rows can serve a cohort.
func cohortLevels(educationLevel string) []string {
	if educationLevel == "" || strings.EqualFold(educationLevel, entity.AllEducationLevels) {
		return nil
	}

	return []string{educationLevel, entity.AllEducationLevels}
}

func filterSameItem(items []*entity.Item, name string) []*entity.Item {
	matched := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if matching.SameItem(item.Name, name) {
			matched = append(matched, item)
		}
	}

	return matched
}

// splitByName separates rows named exactly as requested from rows that only share the item key.
func splitByName(items []*entity.Item, name string) (exact, related []*entity.Item) {
	for _, item := range items {
		if matching.SameName(item.Name, name) {
			exact = append(exact, item)
		} else {
			related = append(related, item)
		}
	}

	return exact, related
}

// orderByCohort moves rows scoped to the requested level ahead of all-level rows, keeping relative order.
func orderByCohort(items []*entity.Item, educationLevel string) []*entity.Item {
	ordered := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.EducationLevel, educationLevel) {
			ordered = append(ordered, item)
		}
	}
	for _, item := range items {
		if !strings.EqualFold(item.EducationLevel, educationLevel) {
			ordered = append(ordered, item)
		}
	}

	return ordered
}

func variantSizes(item *entity.Item) []string {
	sizes := make([]string, len(item.Variants))
	for i, variant := range item.Variants {
		sizes[i] = variant.Size
	}

	return sizes
}

// purchaseGuard tracks items with a purchase being recorded.
type purchaseGuard struct {
	mu       sync.Mutex
	inflight map[uuid.UUID]int
}

func newPurchaseGuard() *purchaseGuard {
	return &purchaseGuard{inflight: make(map[uuid.UUID]int)}
}

func (g *purchaseGuard) begin(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inflight[id]++
}

func (g *purchaseGuard) end(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[id] <= 1 {
		delete(g.inflight, id)

		return
	}
	g.inflight[id]--
}

func (g *purchaseGuard) busy(id uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inflight[id] > 0
}
