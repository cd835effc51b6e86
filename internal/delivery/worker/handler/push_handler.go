package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"uniform/config"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/constants"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/repository"
	"uniform/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a redelivery
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error should be redelivered
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks a Google-signed ID token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers restock notifications to a student's registered devices
type PushHandler struct {
	verifyPushAuth  bool
	pushAudience    string
	validateToken   TokenValidator
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests, and not in local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var pushAudience string
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		pushAudience:    pushAudience,
		validateToken:   idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; any other status acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StudentNotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse student notification", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.Deliver(ctx, &event, pushMsg.Message.Attributes); err != nil {
		if IsRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// Deliver sends one student notification. Attributes come from the transport envelope and may be nil.
func (h *PushHandler) Deliver(ctx context.Context, event *service.StudentNotificationEvent, attributes map[string]string) error {
	// Priority: transport attributes > event field > existing context
	requestID := h.extractRequestID(ctx, attributes, event)

	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("student_id", event.StudentID.String()),
		slog.String("order_number", event.OrderNumber),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing student notification", slog.String("event", string(event.Event)))

	if err := h.processNotification(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to deliver student notification",
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryableError(err)),
		)

		return err
	}

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, attributes map[string]string, event *service.StudentNotificationEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processNotification looks up the student's devices, sends and retires dead tokens
func (h *PushHandler) processNotification(ctx context.Context, event *service.StudentNotificationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.StudentID == uuid.Nil {
		return errors.New("student notification without student ID")
	}

	devices, err := h.deviceRepo.FindActiveDevicesByStudent(ctx, event.StudentID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		logger.Info("[Worker] Student has no active devices")

		return nil
	}

	title, body, data := notificationContent(event)

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, collectTokens(devices), title, body, data)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to send student notification"))
	}

	if len(invalidTokens) > 0 {
		if err := h.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid devices",
				slog.Int("invalid_tokens", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("[Worker] Student notification sent",
		slog.Int("devices", len(devices)),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// collectTokens extracts FCM tokens from devices, skipping duplicates
func collectTokens(devices []*entity.StudentDevice) []string {
	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, ok := seen[device.FCMToken]; ok {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

// notificationContent creates the notification title, body, and data
func notificationContent(event *service.StudentNotificationEvent) (title, body string, data map[string]string) {
	item := event.Item
	if event.Size != "" {
		item = fmt.Sprintf("%s（尺寸 %s）", event.Item, event.Size)
	}

	switch event.Event {
	case entity.StudentEventConverted:
		title = "預購商品已到貨"
		body = fmt.Sprintf("您的預購單 %s 中的 %s 已到貨並轉為正式訂單，請於期限內領取", event.OrderNumber, item)
	default:
		title = "商品補貨通知"
		body = fmt.Sprintf("%s 已補貨，您的預購單 %s 請至服務台確認", item, event.OrderNumber)
	}

	data = map[string]string{
		"event":        string(event.Event),
		"student_id":   event.StudentID.String(),
		"order_id":     event.OrderID.String(),
		"order_number": event.OrderNumber,
		"item":         event.Item,
		"size":         event.Size,
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the push endpoint URL is expected
	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
