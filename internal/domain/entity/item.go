// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockStatus is derived from current stock and the item's reorder point.
type StockStatus string

const (
	StockStatusAboveThreshold StockStatus = "Above Threshold"
	StockStatusAtReorderPoint StockStatus = "At Reorder Point"
	StockStatusCritical       StockStatus = "Critical"
	StockStatusOutOfStock     StockStatus = "Out of Stock"
)

// DefaultCriticalThreshold is the stock level at or below which an item is Critical.
const DefaultCriticalThreshold = 10

// StockStatusOf computes the status for a stock level.
func StockStatusOf(stock, reorderPoint, criticalThreshold int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOutOfStock
	case stock <= reorderPoint:
		return StockStatusAtReorderPoint
	case stock <= criticalThreshold:
		return StockStatusCritical
	default:
		return StockStatusAboveThreshold
	}
}

// SizeVariant is one sellable size of an item. Unsized items carry a single variant with an empty Size.
type SizeVariant struct {
	Size      string          `json:"size"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	Purchases int             `json:"purchases"`
}

// Item is a catalog entry with its stock split across size variants.
type Item struct {
	ID                     uuid.UUID       `json:"id"`                       // The Global Unique Identifier (GUID) for the item.
	Name                   string          `json:"name"`                     // Display name, matched case-insensitively.
	EducationLevel         string          `json:"education_level"`          // Cohort scope or AllEducationLevels.
	Category               string          `json:"category"`                 // Free-form grouping.
	Price                  decimal.Decimal `json:"price"`                    // Default unit price.
	Stock                  int             `json:"stock"`                    // Sum of variant stock.
	ReorderPoint           int             `json:"reorder_point"`            // Threshold for At Reorder Point.
	Variants               []SizeVariant   `json:"variants"`                 // Always one or more.
	BeginningInventory     int             `json:"beginning_inventory"`      // Stock at the start of the cycle.
	BeginningInventoryDate time.Time       `json:"beginning_inventory_date"` // Start of the current cycle.
	Purchases              int             `json:"purchases"`                // Stock added since the cycle started.
	EndingInventory        int             `json:"ending_inventory"`         // BeginningInventory + Purchases.
	Status                 StockStatus     `json:"status"`                   // Derived from Stock and ReorderPoint.
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// Refresh recomputes the aggregate stock, ending inventory and status.
func (i *Item) Refresh(criticalThreshold int) {
	total := 0
	for _, v := range i.Variants {
		total += v.Stock
	}
	i.Stock = total
	i.EndingInventory = i.BeginningInventory + i.Purchases
	i.Status = StockStatusOf(i.Stock, i.ReorderPoint, criticalThreshold)
}

// Reserve takes qty from the variant at idx, never going below zero.
func (i *Item) Reserve(idx, qty, criticalThreshold int) StockChange {
	change := i.changeFor(idx)
	v := &i.Variants[idx]
	v.Stock = max(v.Stock-qty, 0)
	i.Refresh(criticalThreshold)

	return i.completeChange(change, idx)
}

// Release returns qty to the variant at idx.
func (i *Item) Release(idx, qty, criticalThreshold int) StockChange {
	change := i.changeFor(idx)
	i.Variants[idx].Stock += qty
	i.Refresh(criticalThreshold)

	return i.completeChange(change, idx)
}

// AddPurchase records newly bought stock for the variant at idx without touching the beginning inventory.
func (i *Item) AddPurchase(idx, qty, criticalThreshold int) StockChange {
	change := i.changeFor(idx)
	v := &i.Variants[idx]
	v.Stock += qty
	v.Purchases += qty
	i.Purchases += qty
	i.Refresh(criticalThreshold)

	return i.completeChange(change, idx)
}

func (i *Item) changeFor(idx int) StockChange {
	return StockChange{
		ItemID:          i.ID,
		ItemName:        i.Name,
		EducationLevel:  i.EducationLevel,
		Size:            i.Variants[idx].Size,
		PreviousStock:   i.Stock,
		PreviousVariant: i.Variants[idx].Stock,
	}
}

func (i *Item) completeChange(change StockChange, idx int) StockChange {
	change.NewStock = i.Stock
	change.NewVariant = i.Variants[idx].Stock

	return change
}

// BeginningInventoryExpired reports whether a full cycle has elapsed since the beginning inventory was stamped.
func (i *Item) BeginningInventoryExpired(now time.Time, cycle time.Duration) bool {
	if i.BeginningInventoryDate.IsZero() {
		return false
	}

	return now.Sub(i.BeginningInventoryDate) > cycle
}

// RollOverBeginningInventory starts a new cycle from the current ending inventory.
func (i *Item) RollOverBeginningInventory(now time.Time, criticalThreshold int) {
	i.BeginningInventory = i.BeginningInventory + i.Purchases
	i.Purchases = 0
	for idx := range i.Variants {
		i.Variants[idx].Purchases = 0
	}
	i.BeginningInventoryDate = now
	i.Refresh(criticalThreshold)
}

// StockChange describes how a single stock mutation moved an item and one of its variants.
type StockChange struct {
	ItemID          uuid.UUID `json:"item_id"`
	ItemName        string    `json:"item_name"`
	EducationLevel  string    `json:"education_level"`
	Size            string    `json:"size"`
	PreviousStock   int       `json:"previous_stock"`
	NewStock        int       `json:"new_stock"`
	PreviousVariant int       `json:"previous_variant_stock"`
	NewVariant      int       `json:"new_variant_stock"`
}

// Replenished reports whether the change lifted the variant out of stock.
func (c StockChange) Replenished() bool {
	return c.PreviousVariant <= 0 && c.NewVariant > 0
}

// InventoryUpdate is the outcome of reserving or releasing one order line.
type InventoryUpdate struct {
	ItemName      string `json:"item_name"`
	Size          string `json:"size"`
	Quantity      int    `json:"quantity"`
	Success       bool   `json:"success"`
	PreviousStock int    `json:"previous_stock,omitempty"`
	NewStock      int    `json:"new_stock,omitempty"`
	Error         string `json:"error,omitempty"`
}
