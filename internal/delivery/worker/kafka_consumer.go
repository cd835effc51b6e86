package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"uniform/config"
	"uniform/internal/delivery"
	"uniform/internal/delivery/worker/handler"
	"uniform/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	maxDeliveryAttempts = 5
	retryBackoff        = 2 * time.Second
)

// messageReader is the part of kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// eventDeliverer sends one decoded student notification.
type eventDeliverer interface {
	Deliver(ctx context.Context, event *service.StudentNotificationEvent, attributes map[string]string) error
}

type kafkaConsumer struct {
	reader    messageReader
	deliverer eventDeliverer
	logger    *slog.Logger
	backoff   time.Duration
}

// ConsumerParams holds dependencies for the kafka consumer
type ConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewKafkaConsumer reads student notifications from the topic the kafka publisher writes to
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Kafka
	if cfg == nil || len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required for the kafka consumer")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	consumer := newKafkaConsumer(reader, params.PushHandler, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing kafka consumer")

			return errors.WithStack(consumer.reader.Close())
		},
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, deliverer eventDeliverer, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:    reader,
		deliverer: deliverer,
		logger:    logger,
		backoff:   retryBackoff,
	}
}

// Serve consumes until the context ends or the reader is closed
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}

			return errors.Wrap(err, "failed to fetch message")
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to commit message")
		}
	}
}

// handle delivers one message, retrying transient failures in place.
// Poison messages and exhausted retries are logged and committed.
func (c *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	logger := c.logger.With(
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
	)

	var event service.StudentNotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logger.Error("[Worker] Failed to parse student notification", slog.Any("error", err))

		return
	}

	attributes := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		attributes[header.Key] = string(header.Value)
	}

	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		err := c.deliverer.Deliver(ctx, &event, attributes)
		if err == nil || !handler.IsRetryableError(err) {
			return
		}

		if attempt == maxDeliveryAttempts {
			logger.Error("[Worker] Giving up on student notification",
				slog.String("order_number", event.OrderNumber),
				slog.Int("attempts", attempt),
			)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
}
