package main

import (
	"context"
	"log/slog"
	"os"

	"uniform/config"
	"uniform/internal/delivery"
	"uniform/internal/delivery/worker"
	"uniform/internal/delivery/worker/handler"
	"uniform/internal/domain/constants"
	"uniform/internal/domain/service"
	logs "uniform/internal/infra/log"
	"uniform/internal/infra/notification"
	"uniform/internal/infra/persistence/postgres"

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
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
		),
	)
}

// newFirebaseService creates the FCM sender from the firebase section
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	return notification.NewFirebaseService(ctx, cfg.Firebase)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

type deliveryParams struct {
	fx.In

	Config   *config.Config
	Server   worker.ServerParams
	Consumer worker.ConsumerParams
}

type deliveryResult struct {
	fx.Out

	Deliveries []delivery.Delivery `group:"deliveries,flatten"`
}

// newDeliveries always serves the push endpoint and adds the kafka consumer when events go through kafka
func newDeliveries(params deliveryParams) (deliveryResult, error) {
	server, err := worker.NewServer(params.Server)
	if err != nil {
		return deliveryResult{}, err
	}
	deliveries := []delivery.Delivery{server}

	if params.Config.PubSub != nil && params.Config.PubSub.Provider == constants.PubSubProviderKafka {
		consumer, err := worker.NewKafkaConsumer(params.Consumer)
		if err != nil {
			return deliveryResult{}, err
		}
		deliveries = append(deliveries, consumer)
	}

	return deliveryResult{Deliveries: deliveries}, nil
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			newDeliveries,
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
