package usecase

import (
	"context"

	"uniform/internal/domain/entity"
	"uniform/internal/domain/limit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line.
type OrderItemInput struct {
	Name      string           `json:"name" validate:"required"`
	Size      string           `json:"size"`
	Quantity  int              `json:"quantity" validate:"gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateOrderInput is a student's order request.
type CreateOrderInput struct {
	StudentID uuid.UUID        `json:"student_id" validate:"required"`
	OrderType entity.OrderType `json:"order_type" validate:"required,oneof=regular pre-order"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Notes     string           `json:"notes"`
}

// CreateOrderResult is the created order with the admission figures and per-line stock outcomes.
type CreateOrderResult struct {
	Order            *entity.Order            `json:"order"`
	Decision         *limit.Decision          `json:"decision,omitempty"`
	InventoryUpdates []entity.InventoryUpdate `json:"inventory_updates"`
}

// StatusChange requests a transition.
type StatusChange struct {
	OrderID uuid.UUID                 `json:"order_id" validate:"required"`
	Status  entity.OrderStatus        `json:"status" validate:"required"`
	Note    string                    `json:"note"`
	Source  entity.StatusChangeSource `json:"source"`
}

// StrikeResult reports the strike ledger after an auto-void.
type StrikeResult struct {
	StudentID uuid.UUID `json:"student_id"`
	Count     int       `json:"count"`
	Blocked   bool      `json:"blocked"`
}

// StatusChangeResult is the updated order with any stock released and strike applied.
type StatusChangeResult struct {
	Order            *entity.Order            `json:"order"`
	InventoryUpdates []entity.InventoryUpdate `json:"inventory_updates,omitempty"`
	Replenished      []entity.StockChange     `json:"replenished,omitempty"`
	Strike           *StrikeResult            `json:"strike,omitempty"`
}

// Conversion mismatch reasons
const (
	ConversionReasonNotPreOrder = "order is not a pre-order"
	ConversionReasonInactive    = "order is not active"
	ConversionReasonNotPending  = "pre-order is no longer pending"
	ConversionReasonNoMatch     = "pre-order has no line for the restocked item"
)

// ConversionResult reports a pre-order conversion attempt. A mismatch is not an error.
type ConversionResult struct {
	Converted        bool                     `json:"converted"`
	Reason           string                   `json:"reason,omitempty"`
	Order            *entity.Order            `json:"order"`
	InventoryUpdates []entity.InventoryUpdate `json:"inventory_updates,omitempty"`
}

// PreOrderConverter turns matching pre-orders into regular orders.
type PreOrderConverter interface {
	ConvertPreOrderToRegular(ctx context.Context, orderID uuid.UUID, itemName, size string) (*ConversionResult, error)
}

// OrderUsecase defines order admission and lifecycle use cases.
type OrderUsecase interface {
	PreOrderConverter

	// CreateOrder admits and persists an order, reserving stock for regular orders.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderResult, error)

	// GetOrder retrieves an order by ID.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// GetOrderByNumber retrieves an order by its number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListStudentOrders returns a student's active orders.
	ListStudentOrders(ctx context.Context, studentID uuid.UUID) ([]*entity.Order, error)

	// ListOrders returns orders matching the filter.
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// UpdateStatus moves an order through the state machine.
	UpdateStatus(ctx context.Context, change *StatusChange) (*StatusChangeResult, error)

	// ConfirmByStudent records that the owner confirmed a pending order.
	ConfirmByStudent(ctx context.Context, orderID, studentID uuid.UUID) (*entity.Order, error)

	// ClaimByReceipt marks the order printed on a scanned receipt as claimed.
	ClaimByReceipt(ctx context.Context, qrData string) (*StatusChangeResult, error)

	// ReceiptQRCode renders the order's receipt as a PNG QR code.
	ReceiptQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)

	// DeactivateOrder hides an order without deleting it.
	DeactivateOrder(ctx context.Context, orderID uuid.UUID) error
}
