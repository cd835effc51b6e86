package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "uniform/internal/delivery/context"
	mockusecase "uniform/internal/mocks/usecase"
	"uniform/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func serveAsync(s *voidScheduler) <-chan error {
	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	return served
}

func TestScheduler_SweepsEachPolicy(t *testing.T) {
	voidUC := mockusecase.NewMockVoidUsecase(t)
	short := usecase.VoidPolicy{Name: "short", Window: 10 * time.Second, Interval: 5 * time.Millisecond, RequireUnconfirmed: true}
	disabled := usecase.VoidPolicy{Name: "manual", Window: time.Hour}
	voidUC.EXPECT().Policies().Return([]usecase.VoidPolicy{short, disabled})

	swept := make(chan usecase.VoidPolicy, 8)
	fixedNow := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	voidUC.EXPECT().Sweep(mock.Anything, short, fixedNow).
		RunAndReturn(func(ctx context.Context, policy usecase.VoidPolicy, _ time.Time) (*usecase.SweepReport, error) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			select {
			case swept <- policy:
			default:
			}

			return &usecase.SweepReport{Policy: policy.Name, Scanned: 1, Voided: 1}, nil
		}).Maybe()

	s := newVoidScheduler(voidUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return fixedNow }
	served := serveAsync(s)

	select {
	case policy := <-swept:
		assert.Equal(t, "short", policy.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("short policy was never swept")
	}

	require.NoError(t, s.stop(context.Background()))
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not return after stop")
	}
}

func TestScheduler_SweepErrorKeepsTicking(t *testing.T) {
	voidUC := mockusecase.NewMockVoidUsecase(t)
	policy := usecase.VoidPolicy{Name: "long", Window: time.Hour, Interval: 5 * time.Millisecond}
	voidUC.EXPECT().Policies().Return([]usecase.VoidPolicy{policy})

	calls := make(chan struct{}, 8)
	voidUC.EXPECT().Sweep(mock.Anything, policy, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(context.Context, usecase.VoidPolicy, time.Time) (*usecase.SweepReport, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return nil, errors.New("database unavailable")
		}).Maybe()

	s := newVoidScheduler(voidUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	served := serveAsync(s)

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("sweep was not retried on the next tick")
		}
	}

	require.NoError(t, s.stop(context.Background()))
	require.NoError(t, <-served)
}

func TestScheduler_NoPolicies(t *testing.T) {
	voidUC := mockusecase.NewMockVoidUsecase(t)
	voidUC.EXPECT().Policies().Return(nil)

	s := newVoidScheduler(voidUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.Serve(context.Background()))
}

func TestScheduler_StopBeforeServe(t *testing.T) {
	voidUC := mockusecase.NewMockVoidUsecase(t)
	voidUC.EXPECT().Policies().Return([]usecase.VoidPolicy{{Name: "short", Interval: time.Millisecond}})

	lc := fxtest.NewLifecycle(t)
	s := NewScheduler(SchedulerParams{Lc: lc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), VoidUC: voidUC})
	lc.RequireStart().RequireStop()

	require.NoError(t, s.Serve(context.Background()))
}
