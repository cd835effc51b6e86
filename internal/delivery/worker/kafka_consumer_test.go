package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"uniform/config"
	"uniform/internal/delivery/worker/handler"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/service"
	mockrepository "uniform/internal/mocks/repository"
	mockservice "uniform/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	commitErr error
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.committed = append(r.committed, msgs...)

	return nil
}

func (r *fakeReader) Close() error { return nil }

type recordingDeliverer struct {
	events     []*service.StudentNotificationEvent
	attributes []map[string]string
}

func (d *recordingDeliverer) Deliver(_ context.Context, event *service.StudentNotificationEvent, attributes map[string]string) error {
	d.events = append(d.events, event)
	d.attributes = append(d.attributes, attributes)

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func kafkaMessage(t *testing.T, offset int64, studentID uuid.UUID) kafka.Message {
	t.Helper()

	value, err := json.Marshal(&service.StudentNotificationEvent{
		StudentNotification: entity.StudentNotification{
			StudentID:   studentID,
			Event:       entity.StudentEventConverted,
			OrderID:     uuid.New(),
			OrderNumber: "ORD-20260301-ABCDEF",
			Item:        "Jersey",
		},
	})
	require.NoError(t, err)

	return kafka.Message{
		Offset: offset,
		Key:    []byte(studentID.String()),
		Value:  value,
		Headers: []kafka.Header{
			{Key: "request_id", Value: []byte("req-kafka")},
			{Key: "event", Value: []byte("converted")},
		},
	}
}

func TestKafkaConsumer_DeliversAndCommits(t *testing.T) {
	studentID := uuid.New()
	reader := &fakeReader{messages: []kafka.Message{
		kafkaMessage(t, 1, studentID),
		{Offset: 2, Value: []byte("not json")},
		kafkaMessage(t, 3, studentID),
	}}
	deliverer := &recordingDeliverer{}

	err := newKafkaConsumer(reader, deliverer, discardLogger()).Serve(context.Background())
	require.NoError(t, err)

	require.Len(t, deliverer.events, 2)
	assert.Equal(t, studentID, deliverer.events[0].StudentID)
	assert.Equal(t, "req-kafka", deliverer.attributes[0]["request_id"])

	// the poison message is committed so it is not fetched again
	require.Len(t, reader.committed, 3)
	assert.Equal(t, int64(2), reader.committed[1].Offset)
}

func TestKafkaConsumer_RetriesTransientFailures(t *testing.T) {
	studentID := uuid.New()
	devices := mockrepository.NewMockDeviceRepository(t)
	devices.EXPECT().FindActiveDevicesByStudent(mock.Anything, studentID).
		Return(nil, errors.New("connection refused")).Times(maxDeliveryAttempts)

	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:          &config.Config{},
		Logger:          discardLogger(),
		NotificationSvc: mockservice.NewMockNotificationService(t),
		DeviceRepo:      devices,
	})

	reader := &fakeReader{messages: []kafka.Message{kafkaMessage(t, 7, studentID)}}
	consumer := newKafkaConsumer(reader, push, discardLogger())
	consumer.backoff = 0

	require.NoError(t, consumer.Serve(context.Background()))
	require.Len(t, reader.committed, 1)
}

func TestKafkaConsumer_CommitFailure(t *testing.T) {
	reader := &fakeReader{
		messages:  []kafka.Message{kafkaMessage(t, 1, uuid.New())},
		commitErr: errors.New("coordinator not available"),
	}

	err := newKafkaConsumer(reader, &recordingDeliverer{}, discardLogger()).Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit message")
}

func TestNewKafkaConsumer_RequiresBrokersAndTopic(t *testing.T) {
	tests := []struct {
		name  string
		kafka *config.KafkaConfig
	}{
		{name: "no kafka section"},
		{name: "no brokers", kafka: &config.KafkaConfig{Topic: "student-notifications"}},
		{name: "no topic", kafka: &config.KafkaConfig{Brokers: []string{"localhost:9092"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKafkaConsumer(ConsumerParams{
				Cfg:    &config.Config{Kafka: tt.kafka},
				Logger: discardLogger(),
			})
			require.Error(t, err)
		})
	}
}
