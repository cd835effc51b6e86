// Package limit decides whether a student may place an order. It only reads the
// profile and order history it is given and never mutates anything.
package limit

import (
	"slices"
	"time"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/matching"
)

// Config holds the cohort defaults and the per-item table.
type Config struct {
	NewStudentDefault     int
	OldStudentDefault     int
	MonthsPerAcademicYear int
	ItemLimits            *ItemLimitTable
}

// Engine evaluates admission rules.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine.
func NewEngine(cfg Config) *Engine {
	if cfg.MonthsPerAcademicYear <= 0 {
		cfg.MonthsPerAcademicYear = 10
	}

	return &Engine{cfg: cfg}
}

// ItemAllowance is the per-item quantity picture for one item key.
type ItemAllowance struct {
	Item      string `json:"item"`
	Ordered   int    `json:"ordered"`
	Requested int    `json:"requested"`
	Max       *int   `json:"max,omitempty"`
}

// Decision is the accepted outcome of a check, or the current picture for a preview.
type Decision struct {
	Limit                     int             `json:"limit"`
	SlotsUsedFromPlacedOrders int             `json:"slots_used_from_placed_orders"`
	SlotsLeftForThisOrder     int             `json:"slots_left_for_this_order"`
	SlotsRequested            int             `json:"slots_requested"`
	ProfileIncomplete         bool            `json:"profile_incomplete"`
	LockedUntil               *time.Time      `json:"locked_until,omitempty"`
	Items                     []ItemAllowance `json:"items"`
}

// EffectiveLimit returns the explicit limit, or the cohort default when none is set.
func (e *Engine) EffectiveLimit(student *entity.Student) (int, error) {
	if student.TotalItemLimit != nil {
		if *student.TotalItemLimit <= 0 {
			return 0, domainerrors.NewNotEligibleError(true, "total item limit is set to zero")
		}

		return *student.TotalItemLimit, nil
	}

	var limit int
	switch student.StudentType {
	case entity.StudentTypeNew:
		limit = e.cfg.NewStudentDefault
	case entity.StudentTypeOld:
		limit = e.cfg.OldStudentDefault
	default:
		return 0, domainerrors.NewNotEligibleError(false, "total item limit is not set and student type is unknown")
	}

	if limit <= 0 {
		return 0, domainerrors.NewNotEligibleError(false, "no default item limit for student type "+string(student.StudentType))
	}

	return limit, nil
}

// LockoutMonths converts the student's lockout period to months.
func (e *Engine) LockoutMonths(student *entity.Student) int {
	if student.OrderLockoutPeriod <= 0 {
		return 0
	}
	if student.OrderLockoutUnit == entity.LockoutUnitAcademicYears {
		return student.OrderLockoutPeriod * e.cfg.MonthsPerAcademicYear
	}

	return student.OrderLockoutPeriod
}

// Check runs eligibility, lockout, slot and per-item rules against a candidate order.
// placed is the student's order history; only placed statuses are considered.
func (e *Engine) Check(student *entity.Student, candidate []entity.OrderItem, placed []*entity.Order, now time.Time) (*Decision, error) {
	limit, err := e.EffectiveLimit(student)
	if err != nil {
		return nil, err
	}

	placed = placedOnly(placed)

	// Lockout goes first so an exhausted allowance reports its unlock date, not a slot error.
	if lockErr := e.lockout(student, limit, placed, now); lockErr != nil {
		return nil, lockErr
	}

	counted := countedOrders(placed, student.TotalItemLimitSetAt)
	used := len(distinctKeys(counted))
	requested := len(keysOf(candidate))
	left := max(limit-used, 0)

	if requested > limit-used {
		return nil, &domainerrors.SlotLimitExceededError{
			Limit:     limit,
			Used:      used,
			Remaining: left,
			Requested: requested,
		}
	}

	cohort := cohortOf(student)
	ordered := quantitiesByKey(placed)
	allowances := make([]ItemAllowance, 0, requested)

	for _, key := range keysOf(candidate) {
		display, want := candidateQuantity(candidate, key)
		allowance := ItemAllowance{Item: display, Ordered: ordered[key], Requested: want}

		if maxQty, capped := e.cfg.ItemLimits.MaxFor(key, cohort); capped {
			allowance.Max = &maxQty
			if ordered[key]+want > maxQty {
				return nil, &domainerrors.PerItemLimitExceededError{
					Item:      display,
					Current:   ordered[key],
					Requested: want,
					Max:       maxQty,
				}
			}
		}

		allowances = append(allowances, allowance)
	}

	return &Decision{
		Limit:                     limit,
		SlotsUsedFromPlacedOrders: used,
		SlotsLeftForThisOrder:     left,
		SlotsRequested:            requested,
		ProfileIncomplete:         student.Gender == entity.GenderUnset,
		Items:                     allowances,
	}, nil
}

// Preview reports the student's current allowance without a candidate order.
// A lockout is reported in LockedUntil instead of as an error.
func (e *Engine) Preview(student *entity.Student, placed []*entity.Order, now time.Time) (*Decision, error) {
	limit, err := e.EffectiveLimit(student)
	if err != nil {
		return nil, err
	}

	placed = placedOnly(placed)
	counted := countedOrders(placed, student.TotalItemLimitSetAt)
	used := len(distinctKeys(counted))

	decision := &Decision{
		Limit:                     limit,
		SlotsUsedFromPlacedOrders: used,
		SlotsLeftForThisOrder:     max(limit-used, 0),
		ProfileIncomplete:         student.Gender == entity.GenderUnset,
	}

	if lockErr := e.lockout(student, limit, placed, now); lockErr != nil {
		decision.LockedUntil = &lockErr.UnlockAt
	}

	ordered := quantitiesByKey(placed)
	capped := e.cfg.ItemLimits.ItemsFor(cohortOf(student))
	keys := make([]string, 0, len(capped))
	for key := range capped {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		allowance := capped[key]
		allowance.Ordered = ordered[key]
		decision.Items = append(decision.Items, allowance)
	}

	return decision, nil
}

// lockout returns an error when the most recent placed order used the full allowance
// it was admitted under and the cooldown has not elapsed. Orders admitted before the
// limit was recorded on them are compared with the current limit.
func (e *Engine) lockout(student *entity.Student, limit int, placed []*entity.Order, now time.Time) *domainerrors.LockedOutError {
	months := e.LockoutMonths(student)
	if months == 0 || len(placed) == 0 {
		return nil
	}

	latest := placed[0]
	for _, order := range placed[1:] {
		if order.CreatedAt.After(latest.CreatedAt) {
			latest = order
		}
	}

	allowance := latest.SlotLimit
	if allowance <= 0 {
		allowance = limit
	}
	if len(keysOf(latest.Items)) < allowance {
		return nil
	}

	unlockAt := latest.CreatedAt.AddDate(0, months, 0)
	if !now.Before(unlockAt) {
		return nil
	}

	return &domainerrors.LockedOutError{
		UnlockAt:        unlockAt,
		LockoutMonths:   months,
		LastOrderNumber: latest.OrderNumber,
	}
}

func placedOnly(orders []*entity.Order) []*entity.Order {
	placed := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if order != nil && order.IsActive && order.Status.IsPlaced() {
			placed = append(placed, order)
		}
	}

	return placed
}

// countedOrders keeps the orders created at or after the limit was last set.
func countedOrders(orders []*entity.Order, setAt *time.Time) []*entity.Order {
	if setAt == nil {
		return orders
	}

	counted := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if !order.CreatedAt.Before(*setAt) {
			counted = append(counted, order)
		}
	}

	return counted
}

func distinctKeys(orders []*entity.Order) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, order := range orders {
		for _, key := range keysOf(order.Items) {
			keys[key] = struct{}{}
		}
	}

	return keys
}

// keysOf returns the distinct item keys of the lines in first-seen order.
func keysOf(items []entity.OrderItem) []string {
	seen := make(map[string]struct{}, len(items))
	keys := make([]string, 0, len(items))
	for _, item := range items {
		key := matching.ItemKey(item.Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

func quantitiesByKey(orders []*entity.Order) map[string]int {
	quantities := make(map[string]int)
	for _, order := range orders {
		for _, item := range order.Items {
			quantities[matching.ItemKey(item.Name)] += item.Quantity
		}
	}

	return quantities
}

func candidateQuantity(candidate []entity.OrderItem, key string) (string, int) {
	display, total := "", 0
	for _, item := range candidate {
		if matching.ItemKey(item.Name) != key {
			continue
		}
		if display == "" {
			display = item.Name
		}
		total += item.Quantity
	}

	return display, total
}

func cohortOf(student *entity.Student) Cohort {
	return Cohort{
		EducationLevel: student.EducationLevel,
		StudentType:    student.StudentType,
		Gender:         student.Gender,
	}
}
