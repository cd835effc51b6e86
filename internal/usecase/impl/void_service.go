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
	"uniform/internal/domain/repository"
	"uniform/internal/usecase"
	"uniform/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Policy names
const (
	VoidPolicyLong  = "long"
	VoidPolicyShort = "short"
)

// voidService implements the VoidUsecase interface.
type voidService struct {
	txManager repository.TransactionManager
	orders    usecase.OrderUsecase
	restock   usecase.RestockUsecase
	policies  []usecase.VoidPolicy
	batchSize int
	logger    *slog.Logger
}

// VoidServiceParams holds dependencies for VoidService, injected by Fx.
type VoidServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Orders    usecase.OrderUsecase
	Restock   usecase.RestockUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVoidService is the constructor for voidService.
func NewVoidService(params VoidServiceParams) usecase.VoidUsecase {
	srv := &voidService{
		txManager: params.TxManager,
		orders:    params.Orders,
		restock:   params.Restock,
		logger:    params.Logger,
	}

	if params.Config == nil || params.Config.AutoVoid == nil {
		return srv
	}

	autoVoid := params.Config.AutoVoid
	srv.batchSize = autoVoid.BatchSize
	if !autoVoid.Enabled {
		return srv
	}
	if autoVoid.Long.Enabled {
		srv.policies = append(srv.policies, usecase.VoidPolicy{
			Name:     VoidPolicyLong,
			Window:   autoVoid.Long.Window,
			Interval: autoVoid.Long.Interval,
		})
	}
	if autoVoid.Short.Enabled {
		srv.policies = append(srv.policies, usecase.VoidPolicy{
			Name:               VoidPolicyShort,
			Window:             autoVoid.Short.Window,
			Interval:           autoVoid.Short.Interval,
			RequireUnconfirmed: true,
		})
	}

	return srv
}

func (srv *voidService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Policies returns the enabled claim windows.
func (srv *voidService) Policies() []usecase.VoidPolicy {
	return srv.policies
}

// Sweep cancels each overdue order on its own. A failure is counted and the sweep moves on.
func (srv *voidService) Sweep(ctx context.Context, policy usecase.VoidPolicy, now time.Time) (*usecase.SweepReport, error) {
	cutoff := now.Add(-policy.Window)
	report := &usecase.SweepReport{Policy: policy.Name, Cutoff: cutoff}

	overdue, err := srv.overdueOrders(ctx, policy, cutoff)
	if err != nil {
		return nil, err
	}
	report.Scanned = len(overdue)

	for _, order := range overdue {
		if !stillOverdue(order, policy, cutoff) {
			report.Skipped++

			continue
		}

		result, err := srv.orders.UpdateStatus(ctx, &usecase.StatusChange{
			OrderID: order.ID,
			Status:  entity.OrderStatusCancelled,
			Note:    fmt.Sprintf("not claimed within %s", util.FormatDuration(policy.Window)),
			Source:  entity.StatusChangeSourceAutoVoid,
		})
		if errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
			// Claimed or cancelled since it was listed.
			report.Skipped++

			continue
		}
		if err != nil {
			srv.log(ctx).Error("Failed to void order",
				slog.String("policy", policy.Name),
				slog.String("orderID", order.ID.String()),
				slog.Any("error", err),
			)
			report.Failed++

			continue
		}

		report.Voided++
		report.Replenished = append(report.Replenished, result.Replenished...)
		if result.Strike != nil {
			report.Struck++
			if result.Strike.Blocked {
				report.Blocked++
				srv.log(ctx).Warn("Student blocked after unclaimed orders",
					slog.String("studentID", result.Strike.StudentID.String()),
					slog.Int("strikes", result.Strike.Count),
				)
			}
		}
	}

	if srv.restock != nil && len(report.Replenished) > 0 {
		report.Restocks = srv.restock.HandleStockChanges(ctx, report.Replenished)
	}

	if report.Scanned > 0 {
		srv.log(ctx).Info("Void sweep finished",
			slog.String("policy", policy.Name),
			slog.Time("cutoff", cutoff),
			slog.Int("scanned", report.Scanned),
			slog.Int("voided", report.Voided),
			slog.Int("skipped", report.Skipped),
			slog.Int("failed", report.Failed),
			slog.Int("blocked", report.Blocked),
		)
	}

	return report, nil
}

func (srv *voidService) overdueOrders(ctx context.Context, policy usecase.VoidPolicy, cutoff time.Time) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.NewOrderRepository().List(ctx, entity.OrderFilter{
			Statuses:         entity.ClaimableStatuses,
			ActiveOnly:       true,
			ClaimClockBefore: &cutoff,
			Unconfirmed:      policy.RequireUnconfirmed,
			Limit:            srv.batchSize,
		})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list overdue orders")
	}

	return orders, nil
}

// stillOverdue re-checks the listing predicate against the loaded order.
// Pre-orders are included: cancelling one releases nothing but still strikes.
func stillOverdue(order *entity.Order, policy usecase.VoidPolicy, cutoff time.Time) bool {
	if !order.IsActive || !order.Status.IsClaimable() {
		return false
	}
	if policy.RequireUnconfirmed && order.StudentConfirmedAt != nil {
		return false
	}

	return order.ClaimClockStart().Before(cutoff)
}
