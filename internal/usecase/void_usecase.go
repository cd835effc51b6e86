package usecase

import (
	"context"
	"time"

	"uniform/internal/domain/entity"
)

// VoidPolicy is one claim window.
type VoidPolicy struct {
	Name     string        `json:"name"`
	Window   time.Duration `json:"window"`
	Interval time.Duration `json:"interval"`
	// RequireUnconfirmed limits the sweep to orders the student never confirmed.
	RequireUnconfirmed bool `json:"require_unconfirmed"`
}

// SweepReport summarizes a single sweep.
type SweepReport struct {
	Policy      string               `json:"policy"`
	Cutoff      time.Time            `json:"cutoff"`
	Scanned     int                  `json:"scanned"`
	Voided      int                  `json:"voided"`
	Skipped     int                  `json:"skipped"`
	Failed      int                  `json:"failed"`
	Struck      int                  `json:"struck"`
	Blocked     int                  `json:"blocked"`
	Replenished []entity.StockChange `json:"replenished,omitempty"`
	Restocks    []*RestockReport     `json:"restocks,omitempty"`
}

// VoidUsecase reclaims stock and slots held by unclaimed orders.
type VoidUsecase interface {
	// Policies returns the configured claim windows.
	Policies() []VoidPolicy

	// Sweep cancels every claimable order whose window elapsed before now.
	Sweep(ctx context.Context, policy VoidPolicy, now time.Time) (*SweepReport, error)
}
