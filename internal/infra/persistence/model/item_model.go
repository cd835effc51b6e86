package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItemModel mirrors the 'items' table. Older catalog imports stored one row per size with
// Size and Stock set and no Variants; newer rows embed the variant list as JSON.
type ItemModel struct {
	ID                     uuid.UUID                         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                   string                            `gorm:"type:varchar(255);not null;index"`
	EducationLevel         string                            `gorm:"type:varchar(100);not null;index"`
	Category               string                            `gorm:"type:varchar(100)"`
	Size                   string                            `gorm:"type:varchar(50)"`
	Price                  decimal.Decimal                   `gorm:"type:numeric(12,2);not null;default:0"`
	Stock                  int                               `gorm:"not null;default:0"`
	ReorderPoint           int                               `gorm:"not null;default:0"`
	Variants               datatypes.JSONSlice[VariantModel] `gorm:"type:jsonb"`
	BeginningInventory     int                               `gorm:"not null;default:0"`
	BeginningInventoryDate time.Time
	Purchases              int    `gorm:"not null;default:0"`
	EndingInventory        int    `gorm:"not null;default:0"`
	Status                 string `gorm:"type:varchar(50);not null;index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

// VariantModel is one element of the embedded variant list.
type VariantModel struct {
	Size      string          `json:"size"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	Purchases int             `json:"purchases"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
