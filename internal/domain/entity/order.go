// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderType distinguishes stock-backed orders from pre-orders.
type OrderType string

const (
	OrderTypeRegular  OrderType = "regular"
	OrderTypePreOrder OrderType = "pre-order"
)

// IsValid checks if the OrderType is a known value.
func (t OrderType) IsValid() bool {
	return t == OrderTypeRegular || t == OrderTypePreOrder
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusClaimed        OrderStatus = "claimed"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// PlacedStatuses are the statuses whose items consume a student's slots.
var PlacedStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusClaimed,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusPaymentPending,
	OrderStatusCompleted,
}

// ClaimableStatuses are the statuses an unclaimed order can be auto-voided from.
var ClaimableStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaymentPending,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusPaid,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPaymentPending, OrderStatusProcessing, OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaymentPending: {OrderStatusPaid, OrderStatusProcessing, OrderStatusReady, OrderStatusCancelled},
	OrderStatusProcessing:     {OrderStatusPaid, OrderStatusReady, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusProcessing, OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusClaimed, OrderStatusCancelled},
	OrderStatusClaimed:        {OrderStatusCompleted},
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaymentPending, OrderStatusProcessing, OrderStatusReady,
		OrderStatusPaid, OrderStatusClaimed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsPlaced reports whether orders in this status count against slot limits.
func (s OrderStatus) IsPlaced() bool {
	return slices.Contains(PlacedStatuses, s)
}

// IsClaimable reports whether orders in this status are still waiting to be claimed.
func (s OrderStatus) IsClaimable() bool {
	return slices.Contains(ClaimableStatuses, s)
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// StatusChangeSource records who asked for a status change.
type StatusChangeSource string

const (
	StatusChangeSourceManual   StatusChangeSource = "manual"
	StatusChangeSourceAutoVoid StatusChangeSource = "auto_void"
	StatusChangeSourceSystem   StatusChangeSource = "system"
)

// OrderItem is a snapshot of one ordered line, decoupled from the live catalog.
type OrderItem struct {
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is the line amount.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a student's request for uniform items.
type Order struct {
	ID                 uuid.UUID       `json:"id"`                   // The Global Unique Identifier (GUID) for the order.
	OrderNumber        string          `json:"order_number"`         // Human-facing unique number.
	StudentID          uuid.UUID       `json:"student_id"`           // Requester.
	StudentNumber      string          `json:"student_number"`       // Requester's school number.
	StudentEmail       string          `json:"student_email"`        // Requester's email.
	StudentName        string          `json:"student_name"`         // Requester's display name.
	EducationLevel     string          `json:"education_level"`      // Requester's cohort.
	OrderType          OrderType       `json:"order_type"`           // regular or pre-order.
	Items              []OrderItem     `json:"items"`                // Snapshot of ordered lines.
	TotalAmount        decimal.Decimal `json:"total_amount"`         // Sum of line subtotals.
	Status             OrderStatus     `json:"status"`               // Lifecycle state.
	SlotLimit          int             `json:"slot_limit"`           // Student's slot limit when admitted, 0 when not checked.
	Notes              string          `json:"notes"`                // Accumulated status notes.
	ReceiptData        string          `json:"receipt_data"`         // Encoded receipt payload for the QR code.
	StudentConfirmedAt *time.Time      `json:"student_confirmed_at"` // Set when the student confirms within the claim window.
	PaymentDate        *time.Time      `json:"payment_date"`         // Stamped on transition to paid.
	ClaimedDate        *time.Time      `json:"claimed_date"`         // Stamped on transition to claimed.
	ConvertedAt        *time.Time      `json:"converted_at"`         // Set when a pre-order became regular.
	IsActive           bool            `json:"is_active"`            // False once soft-deactivated.
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// IsPreOrder reports whether the order has not reserved stock yet.
func (o *Order) IsPreOrder() bool {
	return o.OrderType == OrderTypePreOrder
}

// TotalItems is the total quantity across lines.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}

// RecalculateTotal sums the line subtotals into TotalAmount.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	o.TotalAmount = total
}

// ClaimClockStart is when the claim window began: creation, or conversion for former pre-orders.
func (o *Order) ClaimClockStart() time.Time {
	if o.ConvertedAt != nil && o.ConvertedAt.After(o.CreatedAt) {
		return *o.ConvertedAt
	}

	return o.CreatedAt
}

// AppendNote adds a status note on its own line.
func (o *Order) AppendNote(note string) {
	if note == "" {
		return
	}
	if o.Notes == "" {
		o.Notes = note

		return
	}
	o.Notes += "\n" + note
}

// OrderFilter narrows order listings. Zero values are ignored.
type OrderFilter struct {
	StudentID      *uuid.UUID
	Statuses       []OrderStatus
	OrderType      OrderType
	EducationLevel string
	ActiveOnly     bool

	// ClaimClockBefore keeps orders whose claim window started before the instant.
	ClaimClockBefore *time.Time
	Unconfirmed      bool

	Limit  int
	Offset int
}
