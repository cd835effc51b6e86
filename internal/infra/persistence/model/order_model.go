package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items are stored as a JSON snapshot.
type OrderModel struct {
	ID                 uuid.UUID                           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber        string                              `gorm:"type:varchar(32);uniqueIndex;not null"`
	StudentID          uuid.UUID                           `gorm:"type:uuid;not null;index"`
	StudentNumber      string                              `gorm:"type:varchar(50)"`
	StudentEmail       string                              `gorm:"type:varchar(255)"`
	StudentName        string                              `gorm:"type:varchar(255)"`
	EducationLevel     string                              `gorm:"type:varchar(100);index"`
	OrderType          string                              `gorm:"type:varchar(20);not null;index"`
	Items              datatypes.JSONSlice[OrderItemModel] `gorm:"type:jsonb;not null"`
	TotalAmount        decimal.Decimal                     `gorm:"type:numeric(12,2);not null;default:0"`
	Status             string                              `gorm:"type:varchar(30);not null;index"`
	SlotLimit          int                                 `gorm:"not null;default:0"`
	Notes              string                              `gorm:"type:text"`
	ReceiptData        string                              `gorm:"type:text"`
	StudentConfirmedAt *time.Time
	PaymentDate        *time.Time
	ClaimedDate        *time.Time
	ConvertedAt        *time.Time
	IsActive           bool      `gorm:"not null;default:true;index"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

// OrderItemModel is one element of the order item snapshot.
type OrderItemModel struct {
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
