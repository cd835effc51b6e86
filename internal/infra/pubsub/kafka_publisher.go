package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"uniform/config"
	"uniform/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on top of a kafka-go writer
type kafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to the configured topic
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required for kafka provider")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required for kafka provider")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	return newKafkaPublisher(writer, cfg.WriteTimeout, logger), nil
}

func newKafkaPublisher(writer messageWriter, writeTimeout time.Duration, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// PublishStudentNotification writes the event keyed by student so a student's events share a partition
func (p *kafkaPublisher) PublishStudentNotification(ctx context.Context, event *service.StudentNotificationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, val := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(val)})
	}

	message := kafka.Message{
		Key:     []byte(event.StudentID.String()),
		Value:   value,
		Time:    event.OccurredAt,
		Headers: headers,
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return errors.Wrap(err, "failed to write student notification to kafka")
	}

	p.logger.Info("[Kafka] Event published successfully",
		slog.String("event", string(event.Event)),
		slog.String("order_id", event.OrderID.String()),
	)

	return nil
}

// Close flushes pending messages and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
