package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"uniform/config"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/limit"
	"uniform/internal/domain/matching"
	"uniform/internal/domain/repository"
	"uniform/internal/domain/service"
	"uniform/internal/usecase"
	"uniform/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	store     *VariantStore
	engine    *limit.Engine
	ledger    *StrikeLedger
	qrCode    service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Store     *VariantStore
	Engine    *limit.Engine
	Ledger    *StrikeLedger
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		store:     params.Store,
		engine:    params.Engine,
		ledger:    params.Ledger,
		qrCode:    params.QRCode,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder admits the order and, for regular orders, reserves each line in the same transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
	if input != nil && len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	result := &usecase.CreateOrderResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.NewStudentRepository()
		orderRepo := repoFactory.NewOrderRepository()
		itemRepo := repoFactory.NewItemRepository()

		// Locking the profile serializes admission for one student.
		student, err := studentRepo.FindByID(ctx, input.StudentID, true)
		if err != nil {
			return err
		}

		lines, err := srv.buildLines(ctx, itemRepo, student.EducationLevel, input.Items)
		if err != nil {
			return err
		}

		if input.OrderType == entity.OrderTypeRegular {
			placed, err := orderRepo.List(ctx, entity.OrderFilter{
				StudentID:  &student.ID,
				Statuses:   entity.PlacedStatuses,
				ActiveOnly: true,
			})
			if err != nil {
				return errors.Wrap(err, "failed to list placed orders")
			}

			decision, err := srv.engine.Check(student, lines, placed, now)
			if err != nil {
				srv.log(ctx).Info("Order rejected by limit engine", slog.String("studentID", student.ID.String()), slog.Any("error", err))

				return err
			}
			result.Decision = decision
		}

		order := &entity.Order{
			ID:             uuid.New(),
			OrderNumber:    util.NewOrderNumber(now),
			StudentID:      student.ID,
			StudentNumber:  student.StudentNumber,
			StudentEmail:   student.Email,
			StudentName:    student.Name,
			EducationLevel: student.EducationLevel,
			OrderType:      input.OrderType,
			Items:          lines,
			Status:         entity.OrderStatusPending,
			Notes:          input.Notes,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if result.Decision != nil {
			order.SlotLimit = result.Decision.Limit
		}
		order.RecalculateTotal()

		if err := srv.refreshReceipt(order); err != nil {
			return err
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if order.OrderType == entity.OrderTypeRegular {
			updates, err := srv.reserveLines(ctx, itemRepo, order)
			if err != nil {
				return err
			}
			result.InventoryUpdates = updates
		}
		result.Order = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", result.Order.ID.String()),
		slog.String("orderNumber", result.Order.OrderNumber),
		slog.String("orderType", string(result.Order.OrderType)),
		slog.Int("lines", len(result.Order.Items)),
	)

	return result, nil
}

// buildLines snapshots the requested lines with prices resolved from the catalog when possible.
func (srv *orderService) buildLines(ctx context.Context, items repository.ItemRepository, educationLevel string, inputs []usecase.OrderItemInput) ([]entity.OrderItem, error) {
	lines := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item, idx, err := srv.store.FindSizeRow(ctx, items, in.Name, educationLevel, in.Size, false)
		if err != nil && !isMissingStock(err) {
			return nil, err
		}

		lines = append(lines, entity.OrderItem{
			Name:      in.Name,
			Size:      in.Size,
			Quantity:  in.Quantity,
			UnitPrice: resolvePrice(item, idx, in.UnitPrice),
		})
	}

	return lines, nil
}

// reserveLines takes stock for every line. Lines without a matching row are recorded, not fatal.
func (srv *orderService) reserveLines(ctx context.Context, items repository.ItemRepository, order *entity.Order) ([]entity.InventoryUpdate, error) {
	updates := make([]entity.InventoryUpdate, 0, len(order.Items))
	for _, line := range order.Items {
		change, err := srv.store.Reserve(ctx, items, line.Name, order.EducationLevel, line.Size, line.Quantity)
		if isMissingStock(err) {
			srv.log(ctx).Warn("Stock not reserved for order line",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("item", line.Name),
				slog.String("size", line.Size),
				slog.Any("error", err),
			)
			updates = append(updates, failedUpdate(line, err))

			continue
		}
		if err != nil {
			return nil, err
		}

		updates = append(updates, succeededUpdate(line, change))
	}

	return updates, nil
}

// releaseLines returns the stock of every line and reports the sizes that came back into stock.
func (srv *orderService) releaseLines(ctx context.Context, items repository.ItemRepository, order *entity.Order) ([]entity.InventoryUpdate, []entity.StockChange, error) {
	updates := make([]entity.InventoryUpdate, 0, len(order.Items))
	var replenished []entity.StockChange
	for _, line := range order.Items {
		change, err := srv.store.Release(ctx, items, line.Name, order.EducationLevel, line.Size, line.Quantity)
		if isMissingStock(err) {
			srv.log(ctx).Warn("Stock not released for order line",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("item", line.Name),
				slog.String("size", line.Size),
				slog.Any("error", err),
			)
			updates = append(updates, failedUpdate(line, err))

			continue
		}
		if err != nil {
			return nil, nil, err
		}

		updates = append(updates, succeededUpdate(line, change))
		if change.Replenished() {
			replenished = append(replenished, change)
		}
	}

	return updates, replenished, nil
}

// GetOrder retrieves an order by ID.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.NewOrderRepository().FindByID(ctx, id, false)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// GetOrderByNumber retrieves an order by its number.
func (srv *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.NewOrderRepository().FindByOrderNumber(ctx, orderNumber)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order by number")
	}

	return order, nil
}

// ListStudentOrders returns a student's active orders, newest first.
func (srv *orderService) ListStudentOrders(ctx context.Context, studentID uuid.UUID) ([]*entity.Order, error) {
	return srv.ListOrders(ctx, entity.OrderFilter{StudentID: &studentID, ActiveOnly: true})
}

// ListOrders returns orders matching the filter.
func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.NewOrderRepository().List(ctx, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus validates the transition under the row lock. Cancelling a regular order releases its
// stock, and an auto-void cancellation also records a strike against the student.
func (srv *orderService) UpdateStatus(ctx context.Context, change *usecase.StatusChange) (*usecase.StatusChangeResult, error) {
	if err := validateInput(change); err != nil {
		return nil, err
	}
	if !change.Status.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"Status": "oneof"})
	}
	source := change.Source
	if source == "" {
		source = entity.StatusChangeSourceManual
	}

	now := srv.now()
	result := &usecase.StatusChangeResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, change.OrderID, true)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(change.Status) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage(fmt.Sprintf("%s -> %s", order.Status, change.Status))
		}

		previous := order.Status
		order.Status = change.Status
		order.UpdatedAt = now
		switch change.Status {
		case entity.OrderStatusPaid:
			order.PaymentDate = util.Ptr(now)
		case entity.OrderStatusClaimed:
			order.ClaimedDate = util.Ptr(now)
		}
		order.AppendNote(statusNote(now, previous, change.Status, source, change.Note))

		if change.Status == entity.OrderStatusCancelled && !order.IsPreOrder() {
			updates, replenished, err := srv.releaseLines(ctx, repoFactory.NewItemRepository(), order)
			if err != nil {
				return err
			}
			result.InventoryUpdates = updates
			result.Replenished = replenished
		}

		if err := srv.refreshReceipt(order); err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to save order status")
		}

		if change.Status == entity.OrderStatusCancelled && source == entity.StatusChangeSourceAutoVoid {
			strike, err := srv.ledger.IncrementStrike(ctx, repoFactory.NewStudentRepository(), order.StudentID, now)
			if err != nil {
				return err
			}
			result.Strike = strike
		}
		result.Order = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", result.Order.ID.String()),
		slog.String("status", string(result.Order.Status)),
		slog.String("source", string(source)),
	)

	return result, nil
}

// ConfirmByStudent records the owner's confirmation while the order is pending.
func (srv *orderService) ConfirmByStudent(ctx context.Context, orderID, studentID uuid.UUID) (*entity.Order, error) {
	now := srv.now()

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		found, err := orderRepo.FindByID(ctx, orderID, true)
		if err != nil {
			return err
		}
		if found.StudentID != studentID {
			return domainerrors.ErrForbidden.WrapMessage("order belongs to another student")
		}
		if found.Status != entity.OrderStatusPending || !found.IsActive {
			return domainerrors.ErrOrderNotConfirmable.WrapMessage(string(found.Status))
		}

		if found.StudentConfirmedAt == nil {
			found.StudentConfirmedAt = util.Ptr(now)
			found.UpdatedAt = now
			if err := orderRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to save confirmation")
			}
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm order")
	}

	return order, nil
}

// ConvertPreOrderToRegular turns a pending pre-order with a line for the restocked item into a
// regular order and reserves its stock. An order that does not qualify is reported, not an error.
func (srv *orderService) ConvertPreOrderToRegular(ctx context.Context, orderID uuid.UUID, itemName, size string) (*usecase.ConversionResult, error) {
	now := srv.now()
	result := &usecase.ConversionResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID, true)
		if err != nil {
			return err
		}
		result.Order = order

		if reason := conversionMismatch(order, itemName, size); reason != "" {
			result.Reason = reason

			return nil
		}

		order.OrderType = entity.OrderTypeRegular
		order.Status = entity.OrderStatusPending
		order.ConvertedAt = util.Ptr(now)
		order.UpdatedAt = now
		order.AppendNote(fmt.Sprintf("[%s] converted from pre-order after restock of %s", now.Format(time.RFC3339), restockLabel(itemName, size)))

		if err := srv.refreshReceipt(order); err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to save converted order")
		}

		updates, err := srv.reserveLines(ctx, repoFactory.NewItemRepository(), order)
		if err != nil {
			return err
		}
		result.InventoryUpdates = updates
		result.Converted = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert pre-order")
	}

	if result.Converted {
		srv.log(ctx).Info("Pre-order converted",
			slog.String("orderID", orderID.String()),
			slog.String("item", itemName),
			slog.String("size", size),
		)
	}

	return result, nil
}

// ClaimByReceipt marks the order on a scanned receipt as claimed.
func (srv *orderService) ClaimByReceipt(ctx context.Context, qrData string) (*usecase.StatusChangeResult, error) {
	receipt, err := srv.qrCode.ParseReceiptQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidReceipt, err.Error())
	}

	order, err := srv.GetOrderByNumber(ctx, receipt.OrderNumber)
	if err != nil {
		return nil, err
	}
	if order.StudentID != receipt.StudentID {
		return nil, domainerrors.ErrInvalidReceipt.WrapMessage("receipt student does not match order")
	}

	return srv.UpdateStatus(ctx, &usecase.StatusChange{
		OrderID: order.ID,
		Status:  entity.OrderStatusClaimed,
		Note:    "claimed by receipt scan",
		Source:  entity.StatusChangeSourceManual,
	})
}

// ReceiptQRCode renders the stored receipt payload as a PNG.
func (srv *orderService) ReceiptQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.ReceiptData == "" {
		if err := srv.refreshReceipt(order); err != nil {
			return nil, err
		}
	}

	png, err := srv.qrCode.GenerateReceiptQR(order.ReceiptData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt QR code")
	}

	return png, nil
}

// DeactivateOrder hides an order from listings and sweeps.
func (srv *orderService) DeactivateOrder(ctx context.Context, orderID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID, true)
		if err != nil {
			return err
		}
		if !order.IsActive {
			return nil
		}

		order.IsActive = false
		order.UpdatedAt = srv.now()

		return orderRepo.Update(ctx, order)
	})
	if err != nil {
		return errors.Wrap(err, "failed to deactivate order")
	}

	return nil
}

func (srv *orderService) refreshReceipt(order *entity.Order) error {
	data, err := srv.qrCode.EncodeReceipt(entity.NewReceipt(order))
	if err != nil {
		return errors.Wrap(err, "failed to encode receipt")
	}
	order.ReceiptData = data

	return nil
}

// conversionMismatch returns why an order cannot be converted for the restocked line, or "".
func conversionMismatch(order *entity.Order, itemName, size string) string {
	switch {
	case !order.IsPreOrder():
		return usecase.ConversionReasonNotPreOrder
	case !order.IsActive:
		return usecase.ConversionReasonInactive
	case order.Status != entity.OrderStatusPending:
		return usecase.ConversionReasonNotPending
	case !hasRestockedLine(order, itemName, size):
		return usecase.ConversionReasonNoMatch
	default:
		return ""
	}
}

// hasRestockedLine reports whether the order holds a line for the item in an alias-equivalent size.
// An empty size matches any line of the item.
func hasRestockedLine(order *entity.Order, itemName, size string) bool {
	for _, line := range order.Items {
		if !matching.SameItem(line.Name, itemName) {
			continue
		}
		if size == "" || matching.SameSizeAlias(line.Size, size) {
			return true
		}
	}

	return false
}

func restockLabel(itemName, size string) string {
	if size == "" {
		return itemName
	}

	return itemName + " (" + size + ")"
}

func statusNote(at time.Time, from, to entity.OrderStatus, source entity.StatusChangeSource, note string) string {
	line := fmt.Sprintf("[%s] %s -> %s (%s)", at.Format(time.RFC3339), from, to, source)
	if note != "" {
		line += ": " + note
	}

	return line
}

// isMissingStock reports whether a reservation failed because no row or size matched.
func isMissingStock(err error) bool {
	return errors.Is(err, domainerrors.ErrItemNotFound) || errors.Is(err, domainerrors.ErrSizeNotFound)
}

func succeededUpdate(line entity.OrderItem, change entity.StockChange) entity.InventoryUpdate {
	return entity.InventoryUpdate{
		ItemName:      line.Name,
		Size:          line.Size,
		Quantity:      line.Quantity,
		Success:       true,
		PreviousStock: change.PreviousVariant,
		NewStock:      change.NewVariant,
	}
}

func failedUpdate(line entity.OrderItem, err error) entity.InventoryUpdate {
	return entity.InventoryUpdate{
		ItemName: line.Name,
		Size:     line.Size,
		Quantity: line.Quantity,
		Error:    err.Error(),
	}
}

// resolvePrice picks the variant price, then the item price, then the requested price.
func resolvePrice(item *entity.Item, idx int, requested *decimal.Decimal) decimal.Decimal {
	if item != nil && idx >= 0 && idx < len(item.Variants) && !item.Variants[idx].Price.IsZero() {
		return item.Variants[idx].Price
	}
	if item != nil && !item.Price.IsZero() {
		return item.Price
	}
	if requested != nil {
		return *requested
	}

	return decimal.Zero
}
