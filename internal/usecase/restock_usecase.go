package usecase

import (
	"context"

	"uniform/internal/domain/entity"

	"github.com/google/uuid"
)

// RestockInput identifies what came back into stock.
type RestockInput struct {
	ItemName       string `json:"item_name" validate:"required"`
	EducationLevel string `json:"education_level"`
	Size           string `json:"size"`
}

// RestockOutcome is the result for one matching pre-order.
type RestockOutcome struct {
	OrderID     uuid.UUID           `json:"order_id"`
	OrderNumber string              `json:"order_number"`
	StudentID   uuid.UUID           `json:"student_id"`
	Event       entity.StudentEvent `json:"event"`
	Converted   bool                `json:"converted"`
	Reason      string              `json:"reason,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// RestockReport summarizes one restock fan-out.
type RestockReport struct {
	ItemName       string           `json:"item_name"`
	EducationLevel string           `json:"education_level"`
	Size           string           `json:"size"`
	Matched        int              `json:"matched"`
	Converted      int              `json:"converted"`
	Failed         int              `json:"failed"`
	Outcomes       []RestockOutcome `json:"outcomes"`
}

// RestockUsecase converts pre-orders when their item comes back into stock.
type RestockUsecase interface {
	// HandleRestock converts every pending pre-order matching the restocked line and notifies the students.
	HandleRestock(ctx context.Context, input *RestockInput) (*RestockReport, error)

	// HandleStockChanges runs HandleRestock for every change that lifted a size out of stock.
	HandleStockChanges(ctx context.Context, changes []entity.StockChange) []*RestockReport
}
