package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/repository"
	"uniform/internal/domain/service"
	"uniform/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// restockService implements the RestockUsecase interface.
type restockService struct {
	txManager repository.TransactionManager
	converter usecase.PreOrderConverter
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// RestockServiceParams holds dependencies for RestockService, injected by Fx.
type RestockServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Converter usecase.PreOrderConverter
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRestockService is the constructor for restockService.
func NewRestockService(params RestockServiceParams) usecase.RestockUsecase {
	return &restockService{
		txManager: params.TxManager,
		converter: params.Converter,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *restockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleRestock converts matching pre-orders oldest first. Each order is converted in its own
// transaction so one failure leaves the others untouched.
func (srv *restockService) HandleRestock(ctx context.Context, input *usecase.RestockInput) (*usecase.RestockReport, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	candidates, err := srv.matchingPreOrders(ctx, input)
	if err != nil {
		return nil, err
	}

	report := &usecase.RestockReport{
		ItemName:       input.ItemName,
		EducationLevel: input.EducationLevel,
		Size:           input.Size,
		Matched:        len(candidates),
		Outcomes:       make([]usecase.RestockOutcome, 0, len(candidates)),
	}

	for _, order := range candidates {
		outcome := usecase.RestockOutcome{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			StudentID:   order.StudentID,
			Event:       entity.StudentEventRestocked,
		}

		result, err := srv.converter.ConvertPreOrderToRegular(ctx, order.ID, input.ItemName, input.Size)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Failed to convert pre-order", slog.String("orderID", order.ID.String()), slog.Any("error", err))
			outcome.Error = err.Error()
			report.Failed++
		case result.Converted:
			outcome.Converted = true
			outcome.Event = entity.StudentEventConverted
			report.Converted++
		default:
			outcome.Reason = result.Reason
		}

		srv.notify(ctx, order, outcome.Event, input)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	srv.log(ctx).Info("Restock handled",
		slog.String("item", input.ItemName),
		slog.String("educationLevel", input.EducationLevel),
		slog.String("size", input.Size),
		slog.Int("matched", report.Matched),
		slog.Int("converted", report.Converted),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// HandleStockChanges runs HandleRestock for every change that lifted a size out of stock.
func (srv *restockService) HandleStockChanges(ctx context.Context, changes []entity.StockChange) []*usecase.RestockReport {
	var reports []*usecase.RestockReport
	for _, change := range changes {
		if !change.Replenished() {
			continue
		}

		report, err := srv.HandleRestock(ctx, &usecase.RestockInput{
			ItemName:       change.ItemName,
			EducationLevel: change.EducationLevel,
			Size:           change.Size,
		})
		if err != nil {
			srv.log(ctx).Error("Failed to handle restock", slog.String("item", change.ItemName), slog.String("size", change.Size), slog.Any("error", err))

			continue
		}
		reports = append(reports, report)
	}

	return reports
}

// matchingPreOrders lists active pending pre-orders for the item, cohort and size.
// An all-levels restock matches every cohort.
func (srv *restockService) matchingPreOrders(ctx context.Context, input *usecase.RestockInput) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.NewOrderRepository().List(ctx, entity.OrderFilter{
			Statuses:   []entity.OrderStatus{entity.OrderStatusPending},
			OrderType:  entity.OrderTypePreOrder,
			ActiveOnly: true,
		})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	allLevels := input.EducationLevel == "" || strings.EqualFold(input.EducationLevel, entity.AllEducationLevels)
	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if !allLevels && !strings.EqualFold(order.EducationLevel, input.EducationLevel) {
			continue
		}
		if hasRestockedLine(order, input.ItemName, input.Size) {
			matched = append(matched, order)
		}
	}

	slices.SortStableFunc(matched, func(a, b *entity.Order) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return matched, nil
}

// notify hands the event to the transport. Delivery failures are logged only.
func (srv *restockService) notify(ctx context.Context, order *entity.Order, event entity.StudentEvent, input *usecase.RestockInput) {
	if srv.publisher == nil {
		return
	}

	err := srv.publisher.PublishStudentNotification(ctx, &service.StudentNotificationEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		StudentNotification: entity.StudentNotification{
			StudentID:   order.StudentID,
			Event:       event,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Item:        input.ItemName,
			Size:        input.Size,
			OccurredAt:  srv.now(),
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to publish student notification",
			slog.String("orderID", order.ID.String()),
			slog.String("event", string(event)),
			slog.Any("error", err),
		)
	}
}
