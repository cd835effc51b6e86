// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptTypeOrder marks a receipt payload as an order receipt.
const ReceiptTypeOrder = "order_receipt"

// Receipt is the scannable payload printed on an order's QR code.
type Receipt struct {
	Type           string          `json:"type"`
	OrderNumber    string          `json:"orderNumber"`
	StudentID      uuid.UUID       `json:"studentId"`
	StudentName    string          `json:"studentName"`
	Items          []ReceiptItem   `json:"items"`
	TotalItems     int             `json:"totalItems"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	OrderDate      time.Time       `json:"orderDate"`
	EducationLevel string          `json:"educationLevel"`
	Status         OrderStatus     `json:"status"`
}

// ReceiptItem is one line on a receipt.
type ReceiptItem struct {
	Name     string          `json:"name"`
	Size     string          `json:"size,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// NewReceipt builds the receipt payload for the order's current contents and status.
func NewReceipt(order *Order) *Receipt {
	items := make([]ReceiptItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ReceiptItem{
			Name:     item.Name,
			Size:     item.Size,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	return &Receipt{
		Type:           ReceiptTypeOrder,
		OrderNumber:    order.OrderNumber,
		StudentID:      order.StudentID,
		StudentName:    order.StudentName,
		Items:          items,
		TotalItems:     order.TotalItems(),
		TotalAmount:    order.TotalAmount,
		OrderDate:      order.CreatedAt,
		EducationLevel: order.EducationLevel,
		Status:         order.Status,
	}
}
