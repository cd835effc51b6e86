package main

import (
	"context"
	"log/slog"
	"os"

	"uniform/config"
	"uniform/internal/delivery"
	"uniform/internal/delivery/api"
	"uniform/internal/delivery/api/middleware"
	"uniform/internal/delivery/api/router/handler"
	"uniform/internal/delivery/scheduler"
	"uniform/internal/domain/repository"
	"uniform/internal/domain/service"
	"uniform/internal/errors"
	"uniform/internal/infra/auth"
	logs "uniform/internal/infra/log"
	"uniform/internal/infra/persistence/memory"
	"uniform/internal/infra/persistence/postgres"
	"uniform/internal/infra/pubsub"
	"uniform/internal/infra/qrcode"
	"uniform/internal/usecase"
	"uniform/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectStore(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		pubsub.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type storeParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storeResult struct {
	fx.Out

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
}

// newStore opens the backend selected by store.driver
func newStore(params storeParams) (storeResult, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return storeResult{
			TxManager:  memory.NewTransactionManager(store),
			DeviceRepo: memory.NewDeviceRepository(store),
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return storeResult{}, err
		}

		return storeResult{
			TxManager:  postgres.NewTransactionManager(db, params.Config),
			DeviceRepo: postgres.NewDeviceRepository(db),
		}, nil

	default:
		return storeResult{}, errors.Errorf("unknown store driver %q", params.Config.Store.Driver)
	}
}

func injectStore() fx.Option {
	return fx.Options(
		fx.Provide(
			newStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVariantStore,
			impl.NewLimitEngine,
			impl.NewStrikeLedger,
			impl.NewInventoryService,
			impl.NewOrderService,
			// Restock converts through the order service
			func(orders usecase.OrderUsecase) usecase.PreOrderConverter { return orders },
			impl.NewRestockService,
			impl.NewVoidService,
			impl.NewStudentService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewItemHandler,
			handler.NewStudentHandler,
			handler.NewVoidHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
