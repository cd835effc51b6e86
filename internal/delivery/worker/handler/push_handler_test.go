package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uniform/config"
	"uniform/internal/domain/constants"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/service"
	mockrepository "uniform/internal/mocks/repository"
	mockservice "uniform/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushFixture struct {
	handler  *PushHandler
	devices  *mockrepository.MockDeviceRepository
	notifier *mockservice.MockNotificationService
}

func newPushFixture(t *testing.T, cfg *config.Config) *pushFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	f := &pushFixture{
		devices:  mockrepository.NewMockDeviceRepository(t),
		notifier: mockservice.NewMockNotificationService(t),
	}
	f.handler = NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: f.notifier,
		DeviceRepo:      f.devices,
	})

	return f
}

func testEvent(studentID uuid.UUID, event entity.StudentEvent) *service.StudentNotificationEvent {
	return &service.StudentNotificationEvent{
		RequestID: "req-from-event",
		StudentNotification: entity.StudentNotification{
			StudentID:   studentID,
			Event:       event,
			OrderID:     uuid.New(),
			OrderNumber: "ORD-20260301-ABCDEF",
			Item:        "Jersey",
			Size:        "M",
			OccurredAt:  time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		},
	}
}

func pushBody(t *testing.T, event any, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/student-notification-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_DeliversAndRetiresInvalidTokens(t *testing.T) {
	f := newPushFixture(t, nil)
	studentID := uuid.New()
	event := testEvent(studentID, entity.StudentEventConverted)

	f.devices.EXPECT().FindActiveDevicesByStudent(mock.Anything, studentID).Return([]*entity.StudentDevice{
		{ID: uuid.New(), StudentID: studentID, FCMToken: "token-phone"},
		{ID: uuid.New(), StudentID: studentID, FCMToken: "token-tablet"},
		{ID: uuid.New(), StudentID: studentID, FCMToken: "token-phone"},
	}, nil)
	f.notifier.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-phone", "token-tablet"}, "預購商品已到貨",
			mock.MatchedBy(func(body string) bool {
				return strings.Contains(body, "ORD-20260301-ABCDEF") && strings.Contains(body, "Jersey（尺寸 M）")
			}),
			mock.MatchedBy(func(data map[string]string) bool {
				return data["event"] == "converted" && data["order_id"] == event.OrderID.String()
			})).
		Return(1, 1, []string{"token-tablet"}, nil)
	f.devices.EXPECT().DeactivateByTokens(mock.Anything, []string{"token-tablet"}).Return(nil)

	rec := servePush(f.handler, pushBody(t, event, map[string]string{"request_id": "req-1"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StatusCodes(t *testing.T) {
	studentID := uuid.New()

	tests := []struct {
		name       string
		body       func(t *testing.T) []byte
		setupMocks func(f *pushFixture)
		wantStatus int
	}{
		{
			name:       "not json",
			body:       func(t *testing.T) []byte { return []byte("{") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data not base64",
			body: func(t *testing.T) []byte {
				return []byte(`{"message":{"data":"%%%","messageId":"1"}}`)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data not an event",
			body: func(t *testing.T) []byte {
				return []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing student is acknowledged",
			body: func(t *testing.T) []byte {
				return pushBody(t, testEvent(uuid.Nil, entity.StudentEventRestocked), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "no devices",
			body: func(t *testing.T) []byte {
				return pushBody(t, testEvent(studentID, entity.StudentEventRestocked), nil)
			},
			setupMocks: func(f *pushFixture) {
				f.devices.EXPECT().FindActiveDevicesByStudent(mock.Anything, studentID).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "device lookup failure is retried",
			body: func(t *testing.T) []byte {
				return pushBody(t, testEvent(studentID, entity.StudentEventRestocked), nil)
			},
			setupMocks: func(f *pushFixture) {
				f.devices.EXPECT().FindActiveDevicesByStudent(mock.Anything, studentID).
					Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "send failure is retried",
			body: func(t *testing.T) []byte {
				return pushBody(t, testEvent(studentID, entity.StudentEventRestocked), nil)
			},
			setupMocks: func(f *pushFixture) {
				f.devices.EXPECT().FindActiveDevicesByStudent(mock.Anything, studentID).
					Return([]*entity.StudentDevice{{FCMToken: "token-phone"}}, nil)
				f.notifier.EXPECT().SendBatchNotification(mock.Anything, []string{"token-phone"}, "商品補貨通知", mock.Anything, mock.Anything).
					Return(0, 0, nil, errors.New("fcm unavailable"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "deactivation failure does not fail delivery",
			body: func(t *testing.T) []byte {
				return pushBody(t, testEvent(studentID, entity.StudentEventRestocked), nil)
			},
			setupMocks: func(f *pushFixture) {
				f.devices.EXPECT().FindActiveDevicesByStudent(mock.Anything, studentID).
					Return([]*entity.StudentDevice{{FCMToken: "token-phone"}}, nil)
				f.notifier.EXPECT().SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(0, 1, []string{"token-phone"}, nil)
				f.devices.EXPECT().DeactivateByTokens(mock.Anything, []string{"token-phone"}).Return(errors.New("timeout"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t, nil)
			if tt.setupMocks != nil {
				tt.setupMocks(f)
			}

			rec := servePush(f.handler, tt.body(t), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid signature", header: "Bearer abc", validErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{
			name:       "wrong issuer",
			header:     "Bearer abc",
			payload:    &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			header:     "Bearer abc",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "accepted",
			header:     "Bearer abc",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t, cfg)
			f.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "abc", token)
				assert.Equal(t, "https://notifier.example.com/push", audience)

				return tt.payload, tt.validErr
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := servePush(f.handler, pushBody(t, testEvent(uuid.Nil, entity.StudentEventRestocked), nil), header)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop
	assert.False(t, newPushFixture(t, cfg).handler.verifyPushAuth)

	cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvProduction
	assert.False(t, newPushFixture(t, cfg).handler.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	f := newPushFixture(t, nil)
	event := testEvent(uuid.New(), entity.StudentEventConverted)

	assert.Equal(t, "req-attr", f.handler.extractRequestID(context.Background(), map[string]string{"request_id": "req-attr"}, event))
	assert.Equal(t, "req-from-event", f.handler.extractRequestID(context.Background(), nil, event))

	event.RequestID = ""
	generated := f.handler.extractRequestID(context.Background(), nil, event)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestNotificationContent(t *testing.T) {
	event := testEvent(uuid.New(), entity.StudentEventRestocked)
	event.Size = ""

	title, body, data := notificationContent(event)
	assert.Equal(t, "商品補貨通知", title)
	assert.Equal(t, "Jersey 已補貨，您的預購單 ORD-20260301-ABCDEF 請至服務台確認", body)
	assert.Equal(t, "restocked", data["event"])
	assert.Equal(t, "", data["size"])
}
