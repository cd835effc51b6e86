package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uniform/config"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.StudentNotificationEvent {
	return &service.StudentNotificationEvent{
		RequestID: "req-1",
		StudentNotification: entity.StudentNotification{
			StudentID:   uuid.New(),
			Event:       entity.StudentEventConverted,
			OrderID:     uuid.New(),
			OrderNumber: "ORD-20260101-ABC123",
			Item:        "Jersey",
			Size:        "M",
			OccurredAt:  time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := testEvent()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishStudentNotification(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "converted", received.Message.Attributes["event"])
	assert.Equal(t, event.StudentID.String(), received.Message.Attributes["student_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.StudentNotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, "Jersey", decoded.Item)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishStudentNotification(context.Background(), testEvent())
	assert.ErrorContains(t, err, "502")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByStudent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, time.Second, testLogger())
	event := testEvent()

	require.NoError(t, publisher.PublishStudentNotification(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.StudentID.String(), string(msg.Key))
	assert.Equal(t, event.OccurredAt, msg.Time)
	assert.True(t, writer.deadline)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "student_notification", headers["event_type"])
	assert.Equal(t, "req-1", headers["request_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := newKafkaPublisher(writer, 0, testLogger())

	err := publisher.PublishStudentNotification(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
	assert.False(t, writer.deadline)
}

func TestNewKafkaPublisher_RequiresBrokersAndTopic(t *testing.T) {
	_, err := NewKafkaPublisher(nil, testLogger())
	assert.Error(t, err)

	_, err = NewKafkaPublisher(&config.KafkaConfig{Brokers: []string{"localhost:9092"}}, testLogger())
	assert.Error(t, err)
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
		noop    bool
	}{
		{name: "unset", cfg: &config.Config{}, noop: true},
		{name: "noop", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "noop"}}, noop: true},
		{name: "local without endpoint", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}, wantErr: true},
		{name: "local", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}}},
		{name: "google without project", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}, wantErr: true},
		{name: "kafka without brokers", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}, wantErr: true},
		{
			name: "kafka",
			cfg: &config.Config{
				PubSub: &config.PubSubConfig{Provider: "kafka"},
				Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "student-notifications"},
			},
		},
		{name: "unknown", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "sqs"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}
