// Package scheduler runs the auto-void sweeps on their configured intervals.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"uniform/internal/delivery"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/lifecycle"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type voidScheduler struct {
	voidUC usecase.VoidUsecase
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// SchedulerParams holds dependencies for the sweep scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
	VoidUC usecase.VoidUsecase
}

// NewScheduler creates the delivery that ticks every void policy
func NewScheduler(params SchedulerParams) delivery.Delivery {
	s := newVoidScheduler(params.VoidUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newVoidScheduler(voidUC usecase.VoidUsecase, logger *slog.Logger) *voidScheduler {
	return &voidScheduler{
		voidUC: voidUC,
		logger: logger,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

// Serve starts one ticker per policy and blocks until they all stop
func (s *voidScheduler) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	policies := s.voidUC.Policies()
	if len(policies) == 0 {
		s.logger.Info("Auto-void is disabled, scheduler idle")
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil
	}
	for _, policy := range policies {
		if policy.Interval <= 0 {
			s.logger.Warn("Skipping void policy without interval", slog.String("policy", policy.Name))

			continue
		}

		s.wg.Add(1)
		go s.run(ctx, policy)
	}
	s.mu.Unlock()

	s.wg.Wait()

	return nil
}

func (s *voidScheduler) run(ctx context.Context, policy usecase.VoidPolicy) {
	defer s.wg.Done()

	s.logger.Info("Starting void sweep ticker",
		slog.String("policy", policy.Name),
		slog.Duration("window", policy.Window),
		slog.Duration("interval", policy.Interval),
	)

	ticker := time.NewTicker(policy.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx, policy)
		}
	}
}

// sweep runs one policy. Failures are logged and the next tick tries again.
func (s *voidScheduler) sweep(ctx context.Context, policy usecase.VoidPolicy) {
	requestID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("policy", policy.Name))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	report, err := s.voidUC.Sweep(ctx, policy, s.now())
	if err != nil {
		logger.Error("Void sweep failed", slog.Any("error", err))

		return
	}

	if report.Scanned == 0 {
		logger.Debug("Void sweep found nothing overdue")

		return
	}

	logger.Info("Void sweep finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("voided", report.Voided),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("struck", report.Struck),
		slog.Int("blocked", report.Blocked),
		slog.Int("restocks", len(report.Restocks)),
	)
}

// stop ends the tickers and waits for a running sweep to finish
func (s *voidScheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.done)
	}
	s.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-finished:
		s.logger.Info("Void scheduler stopped")
	case <-waitCtx.Done():
		s.logger.Warn("Void scheduler did not stop in time")
	}

	return nil
}
