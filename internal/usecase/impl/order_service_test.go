package impl

import (
	"testing"
	"time"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	mockService "uniform/internal/mocks/service"
	"uniform/internal/usecase"
	"uniform/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder_ReservesStock(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	jersey := sc.item(t, "Jersey", "S", 5, "M", 3)

	result := sc.order(t, student.ID, entity.OrderTypeRegular,
		line("jersey", "Medium", 2),
		usecase.OrderItemInput{Name: "Cap", Quantity: 1, UnitPrice: util.Ptr(decimal.RequireFromString("250"))},
	)

	require.NotNil(t, result.Decision)
	assert.Equal(t, 8, result.Decision.Limit)
	assert.Equal(t, 8, result.Order.SlotLimit)
	assert.Equal(t, entity.OrderStatusPending, result.Order.Status)
	assert.Regexp(t, `^ORD-20250303-[0-9A-F]{6}$`, result.Order.OrderNumber)
	assert.True(t, decimal.RequireFromString("750").Equal(result.Order.TotalAmount))
	assert.Contains(t, result.Order.ReceiptData, result.Order.OrderNumber)

	require.Len(t, result.InventoryUpdates, 2)
	assert.True(t, result.InventoryUpdates[0].Success)
	assert.Equal(t, 3, result.InventoryUpdates[0].PreviousStock)
	assert.Equal(t, 1, result.InventoryUpdates[0].NewStock)
	assert.False(t, result.InventoryUpdates[1].Success)
	assert.NotEmpty(t, result.InventoryUpdates[1].Error)

	reloaded := sc.reload(t, jersey.ID)
	assert.Equal(t, 1, variantStock(reloaded, "M"))
	assert.Equal(t, 5, variantStock(reloaded, "S"))
	assert.Equal(t, 6, reloaded.Stock)
	assert.Equal(t, entity.StockStatusCritical, reloaded.Status)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)

	_, err := sc.orders.CreateOrder(sc.ctx, &usecase.CreateOrderInput{
		StudentID: student.ID,
		OrderType: entity.OrderTypeRegular,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)

	_, err = sc.orders.CreateOrder(sc.ctx, &usecase.CreateOrderInput{
		StudentID: student.ID,
		OrderType: entity.OrderTypeRegular,
		Items:     []usecase.OrderItemInput{line("Jersey", "M", 0)},
	})
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "gt", validationErr.Fields["Items[0].Quantity"])

	_, err = sc.orders.CreateOrder(sc.ctx, &usecase.CreateOrderInput{
		StudentID: uuid.New(),
		OrderType: entity.OrderTypeRegular,
		Items:     []usecase.OrderItemInput{line("Jersey", "M", 1)},
	})
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestOrderService_CreateOrder_SlotLimit(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeOld, nil)
	sc.item(t, "Jersey", "M", 10)
	sc.item(t, "Skirt", "M", 10)
	sc.item(t, "Necktie", "", 10)

	_, err := sc.orders.CreateOrder(sc.ctx, &usecase.CreateOrderInput{
		StudentID: student.ID,
		OrderType: entity.OrderTypeRegular,
		Items:     []usecase.OrderItemInput{line("Jersey", "M", 1), line("Skirt", "M", 1), line("Necktie", "", 1)},
	})
	var slotErr *domainerrors.SlotLimitExceededError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, 2, slotErr.Limit)
	assert.Equal(t, 3, slotErr.Requested)

	accepted := sc.order(t, student.ID, entity.OrderTypeRegular, line("Jersey", "M", 1), line("Skirt", "M", 1))
	assert.Equal(t, 0, accepted.Decision.SlotsUsedFromPlacedOrders)
	assert.Equal(t, 2, accepted.Decision.SlotsLeftForThisOrder)

	sc.clock.Advance(time.Hour)
	_, err = sc.orders.CreateOrder(sc.ctx, &usecase.CreateOrderInput{
		StudentID: student.ID,
		OrderType: entity.OrderTypeRegular,
		Items:     []usecase.OrderItemInput{line("Necktie", "", 1)},
	})
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, 2, slotErr.Used)
	assert.Equal(t, 0, slotErr.Remaining)

	decision, err := sc.students.GetLimits(sc.ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, decision.SlotsUsedFromPlacedOrders)
	assert.Equal(t, 0, decision.SlotsLeftForThisOrder)
}

func TestOrderService_CreateOrder_PreOrderSkipsReservation(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	jersey := sc.item(t, "Jersey", "M", 0)

	result := sc.order(t, student.ID, entity.OrderTypePreOrder, line("Jersey", "M", 2))

	assert.Nil(t, result.Decision)
	assert.Zero(t, result.Order.SlotLimit)
	assert.Empty(t, result.InventoryUpdates)
	assert.Equal(t, entity.OrderTypePreOrder, result.Order.OrderType)
	assert.Equal(t, 0, sc.reload(t, jersey.ID).Stock)
}

func TestOrderService_UpdateStatus_CancelReleasesStock(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	jersey := sc.item(t, "Jersey", "M", 3)

	// Reserving more than is on hand floors the variant at zero.
	created := sc.order(t, student.ID, entity.OrderTypeRegular, line("Jersey", "M", 5))
	assert.Equal(t, 0, variantStock(sc.reload(t, jersey.ID), "M"))

	result, err := sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{
		OrderID: created.Order.ID,
		Status:  entity.OrderStatusCancelled,
		Note:    "changed my mind",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCancelled, result.Order.Status)
	assert.Contains(t, result.Order.Notes, "changed my mind")
	assert.Nil(t, result.Strike)
	require.Len(t, result.Replenished, 1)
	assert.Equal(t, 5, result.Replenished[0].NewVariant)
	assert.Equal(t, 5, variantStock(sc.reload(t, jersey.ID), "M"))

	stored, err := sc.students.GetStudent(sc.ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.UnclaimedVoidCount)
}

func TestOrderService_UpdateStatus_Transitions(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	sc.item(t, "Jersey", "M", 3)
	created := sc.order(t, student.ID, entity.OrderTypeRegular, line("Jersey", "M", 1))

	steps := []entity.OrderStatus{entity.OrderStatusPaid, entity.OrderStatusReady, entity.OrderStatusClaimed}
	var order *entity.Order
	for _, status := range steps {
		result, err := sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{OrderID: created.Order.ID, Status: status})
		require.NoError(t, err)
		order = result.Order
	}
	assert.NotNil(t, order.PaymentDate)
	assert.NotNil(t, order.ClaimedDate)
	assert.Contains(t, order.ReceiptData, `"status":"claimed"`)

	_, err := sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{OrderID: created.Order.ID, Status: entity.OrderStatusCancelled})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{OrderID: created.Order.ID, Status: "shipped"})
	var validationErr *domainerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestOrderService_ConfirmByStudent(t *testing.T) {
	sc := newScenario(t)
	owner := sc.student(t, entity.StudentTypeNew, nil)
	other := sc.student(t, entity.StudentTypeNew, nil)
	sc.item(t, "Jersey", "M", 3)
	created := sc.order(t, owner.ID, entity.OrderTypeRegular, line("Jersey", "M", 1))

	_, err := sc.orders.ConfirmByStudent(sc.ctx, created.Order.ID, other.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	confirmed, err := sc.orders.ConfirmByStudent(sc.ctx, created.Order.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, confirmed.StudentConfirmedAt)
	assert.Equal(t, sc.clock.Now(), *confirmed.StudentConfirmedAt)

	_, err = sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{OrderID: created.Order.ID, Status: entity.OrderStatusPaid})
	require.NoError(t, err)

	_, err = sc.orders.ConfirmByStudent(sc.ctx, created.Order.ID, owner.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotConfirmable)
}

func TestOrderService_ConvertPreOrderToRegular_Mismatch(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	sc.item(t, "Jersey", "M", 3, "L", 0)

	regular := sc.order(t, student.ID, entity.OrderTypeRegular, line("Jersey", "M", 1))
	preOrder := sc.order(t, student.ID, entity.OrderTypePreOrder, line("Jersey", "L", 1))

	tests := []struct {
		name    string
		orderID uuid.UUID
		item    string
		size    string
		reason  string
	}{
		{"regular order", regular.Order.ID, "Jersey", "M", usecase.ConversionReasonNotPreOrder},
		{"different size", preOrder.Order.ID, "Jersey", "M", usecase.ConversionReasonNoMatch},
		{"different item", preOrder.Order.ID, "Skirt", "L", usecase.ConversionReasonNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sc.orders.ConvertPreOrderToRegular(sc.ctx, tt.orderID, tt.item, tt.size)
			require.NoError(t, err)
			assert.False(t, result.Converted)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}

	result, err := sc.orders.ConvertPreOrderToRegular(sc.ctx, preOrder.Order.ID, "JERSEY", "Large")
	require.NoError(t, err)
	assert.True(t, result.Converted)
	assert.Equal(t, entity.OrderTypeRegular, result.Order.OrderType)
	assert.Equal(t, sc.clock.Now(), *result.Order.ConvertedAt)
}

func TestOrderService_ClaimByReceipt(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	sc.item(t, "Jersey", "M", 3)
	created := sc.order(t, student.ID, entity.OrderTypeRegular, line("Jersey", "M", 1))

	_, err := sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{OrderID: created.Order.ID, Status: entity.OrderStatusReady, Source: entity.StatusChangeSourceManual})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	for _, status := range []entity.OrderStatus{entity.OrderStatusPaid, entity.OrderStatusReady} {
		_, err := sc.orders.UpdateStatus(sc.ctx, &usecase.StatusChange{OrderID: created.Order.ID, Status: status})
		require.NoError(t, err)
	}

	order, err := sc.orders.GetOrder(sc.ctx, created.Order.ID)
	require.NoError(t, err)

	result, err := sc.orders.ClaimByReceipt(sc.ctx, order.ReceiptData)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusClaimed, result.Order.Status)
	assert.NotNil(t, result.Order.ClaimedDate)

	_, err = sc.orders.ClaimByReceipt(sc.ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReceipt)

	png, err := sc.orders.ReceiptQRCode(sc.ctx, created.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestOrderService_DeactivateOrder(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	created := sc.order(t, student.ID, entity.OrderTypePreOrder, line("Jersey", "M", 1))

	require.NoError(t, sc.orders.DeactivateOrder(sc.ctx, created.Order.ID))

	orders, err := sc.orders.ListStudentOrders(sc.ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	all, err := sc.orders.ListOrders(sc.ctx, entity.OrderFilter{StudentID: util.Ptr(student.ID)})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)
}

func TestOrderService_Receipt_RendererFailures(t *testing.T) {
	sc := newScenario(t)
	student := sc.student(t, entity.StudentTypeNew, nil)
	sc.item(t, "Jersey", "M", 3)
	created := sc.order(t, student.ID, entity.OrderTypeRegular, line("Jersey", "M", 1))

	qr := mockService.NewMockQRCodeService(t)
	sc.orders.qrCode = qr

	qr.EXPECT().ParseReceiptQR("forged").
		Return(&entity.Receipt{Type: entity.ReceiptTypeOrder, OrderNumber: created.Order.OrderNumber, StudentID: uuid.New()}, nil)
	_, err := sc.orders.ClaimByReceipt(sc.ctx, "forged")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReceipt)

	qr.EXPECT().GenerateReceiptQR(created.Order.ReceiptData).Return(nil, errors.New("data too long"))
	_, err = sc.orders.ReceiptQRCode(sc.ctx, created.Order.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render receipt QR code")

	order, err := sc.orders.GetOrder(sc.ctx, created.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}
