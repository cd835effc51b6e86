package handler

import (
	"context"
	"log/slog"
	"net/http"

	"uniform/internal/delivery/api/middleware"
	"uniform/internal/delivery/api/response"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultOrderPageSize = 50

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	RestockUC usecase.RestockUsecase
	Logger    *slog.Logger
}

// OrderHandler serves order placement for students and the order desk for admins.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	restockUC usecase.RestockUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		restockUC: params.RestockUC,
		logger:    params.Logger,
	}
}

// CreateOrderRequest is the body of POST /orders. Admins may order on behalf of a student.
type CreateOrderRequest struct {
	StudentID *uuid.UUID               `json:"student_id,omitempty"`
	OrderType entity.OrderType         `json:"order_type" validate:"required,oneof=regular pre-order"`
	Items     []usecase.OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Notes     string                   `json:"notes"`
}

// UpdateStatusRequest is the body of PATCH /admin/orders/:id/status.
type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=pending payment_pending processing ready paid claimed completed cancelled"`
	Note   string             `json:"note"`
}

// ClaimRequest carries the scanned receipt QR content.
type ClaimRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ConvertRequest names the restocked line a pre-order is converted for.
type ConvertRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Size     string `json:"size"`
}

// CreateOrder admits an order for the caller
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.StudentID != nil && *req.StudentID != studentID {
		if !middleware.IsAdmin(c) {
			return domainerrors.ErrForbidden.WrapMessage("students can only order for themselves")
		}
		studentID = *req.StudentID
	}

	result, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		StudentID: studentID,
		OrderType: req.OrderType,
		Items:     req.Items,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListMyOrders returns the caller's active orders
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListStudentOrders(c.Request().Context(), studentID)
	if err != nil {
		return err
	}

	return response.List(c, orders)
}

// GetOrder returns one order visible to the caller
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.visibleOrder(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}

// ConfirmOrder records the owner's confirmation of a pending order
func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.ConfirmByStudent(c.Request().Context(), orderID, studentID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}

// ReceiptQRCode renders the receipt of an order visible to the caller
func (h *OrderHandler) ReceiptQRCode(c echo.Context) error {
	order, err := h.visibleOrder(c)
	if err != nil {
		return err
	}

	image, err := h.orderUC.ReceiptQRCode(c.Request().Context(), order.ID)
	if err != nil {
		return err
	}

	return response.PNG(c, image)
}

// ListOrders is the admin order search
func (h *OrderHandler) ListOrders(c echo.Context) error {
	limit, err := queryInt(c, "limit", defaultOrderPageSize)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	filter := entity.OrderFilter{
		OrderType:      entity.OrderType(c.QueryParam("type")),
		EducationLevel: c.QueryParam("education_level"),
		ActiveOnly:     c.QueryParam("include_inactive") != "true",
		Limit:          limit,
		Offset:         offset,
	}
	if filter.OrderType != "" && !filter.OrderType.IsValid() {
		return domainerrors.NewValidationError(map[string]string{"type": "oneof"})
	}
	for _, raw := range queryList(c, "status") {
		status := entity.OrderStatus(raw)
		if !status.IsValid() {
			return domainerrors.NewValidationError(map[string]string{"status": "oneof"})
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if raw := c.QueryParam("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.NewValidationError(map[string]string{"student_id": "uuid"})
		}
		filter.StudentID = &id
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.List(c, orders)
}

// UpdateStatus moves an order through the lifecycle. Cancelling can bring sizes back in stock,
// which converts waiting pre-orders.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	result, err := h.orderUC.UpdateStatus(ctx, &usecase.StatusChange{
		OrderID: orderID,
		Status:  req.Status,
		Note:    req.Note,
		Source:  entity.StatusChangeSourceManual,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, statusChangeResponse{
		StatusChangeResult: result,
		Restocks:           h.restock(ctx, result.Replenished),
	})
}

// ClaimByReceipt marks the scanned order as claimed
func (h *OrderHandler) ClaimByReceipt(c echo.Context) error {
	var req ClaimRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.orderUC.ClaimByReceipt(c.Request().Context(), req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// ConvertPreOrder converts a single pre-order by hand
func (h *OrderHandler) ConvertPreOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ConvertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.orderUC.ConvertPreOrderToRegular(c.Request().Context(), orderID, req.ItemName, req.Size)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// DeactivateOrder hides an order
func (h *OrderHandler) DeactivateOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeactivateOrder(c.Request().Context(), orderID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

type statusChangeResponse struct {
	*usecase.StatusChangeResult
	Restocks []*usecase.RestockReport `json:"restocks,omitempty"`
}

// visibleOrder loads the :id order, hiding other students' orders from non-admins.
func (h *OrderHandler) visibleOrder(c echo.Context) (*entity.Order, error) {
	studentID, err := callerID(c)
	if err != nil {
		return nil, err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return nil, err
	}
	if order.StudentID != studentID && !middleware.IsAdmin(c) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (h *OrderHandler) restock(ctx context.Context, changes []entity.StockChange) []*usecase.RestockReport {
	if len(changes) == 0 {
		return nil
	}

	reports := h.restockUC.HandleStockChanges(ctx, changes)
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Restock triggered by cancellation",
		slog.Int("replenished", len(changes)),
		slog.Int("reports", len(reports)),
	)

	return reports
}
