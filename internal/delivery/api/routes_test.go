package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uniform/config"
	apimiddleware "uniform/internal/delivery/api/middleware"
	"uniform/internal/delivery/api/router"
	"uniform/internal/delivery/api/router/handler"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/service"
	"uniform/internal/infra/auth"
	mockusecase "uniform/internal/mocks/usecase"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo      *echo.Echo
	tokens    service.TokenService
	orders    *mockusecase.MockOrderUsecase
	inventory *mockusecase.MockInventoryUsecase
	restock   *mockusecase.MockRestockUsecase
	students  *mockusecase.MockStudentUsecase
	voids     *mockusecase.MockVoidUsecase
	devices   *mockusecase.MockDeviceUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "route_test_secret_key_long_enough"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	ta := &testAPI{
		tokens:    tokens,
		orders:    mockusecase.NewMockOrderUsecase(t),
		inventory: mockusecase.NewMockInventoryUsecase(t),
		restock:   mockusecase.NewMockRestockUsecase(t),
		students:  mockusecase.NewMockStudentUsecase(t),
		voids:     mockusecase.NewMockVoidUsecase(t),
		devices:   mockusecase.NewMockDeviceUsecase(t),
	}

	ta.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: ta.orders, RestockUC: ta.restock, Logger: logger,
		}),
		ItemHandler: handler.NewItemHandler(handler.ItemHandlerParams{
			InventoryUC: ta.inventory, RestockUC: ta.restock, Logger: logger,
		}),
		StudentHandler: handler.NewStudentHandler(handler.StudentHandlerParams{StudentUC: ta.students, Logger: logger}),
		VoidHandler:    handler.NewVoidHandler(handler.VoidHandlerParams{VoidUC: ta.voids, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: ta.devices, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenSvc: tokens, Logger: logger}),
	}).RegisterRoutes(ta.echo)

	return ta
}

func (ta *testAPI) token(t *testing.T, subject uuid.UUID, roles ...entity.Role) string {
	t.Helper()

	token, err := ta.tokens.GenerateToken(subject, entity.Roles(roles).ToStrings(), time.Hour)
	require.NoError(t, err)

	return token
}

func (ta *testAPI) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ta.echo.ServeHTTP(rec, req)

	var env envelope
	if bytes.HasPrefix(rec.Body.Bytes(), []byte("{")) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	ta := newTestAPI(t)

	rec, env := ta.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAuthentication(t *testing.T) {
	ta := newTestAPI(t)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "UNAUTHORIZED"},
		{name: "not bearer", header: "Basic abc", code: "UNAUTHORIZED"},
		{name: "bad token", header: "Bearer not-a-token", code: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/mine", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			ta.echo.ServeHTTP(rec, req)

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestCreateOrder_UsesCaller(t *testing.T) {
	ta := newTestAPI(t)
	studentID := uuid.New()

	ta.orders.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
			return in.StudentID == studentID && in.OrderType == entity.OrderTypeRegular && len(in.Items) == 1
		})).
		Return(&usecase.CreateOrderResult{
			Order: &entity.Order{ID: uuid.New(), StudentID: studentID, OrderNumber: "ORD-20260101-AAAAAA"},
		}, nil)

	rec, env := ta.do(t, http.MethodPost, "/api/v1/orders", ta.token(t, studentID, entity.RoleStudent), map[string]any{
		"order_type": "regular",
		"items":      []map[string]any{{"name": "Jersey", "size": "M", "quantity": 1}},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), "ORD-20260101-AAAAAA")
}

func TestCreateOrder_Rejections(t *testing.T) {
	studentID := uuid.New()
	validBody := map[string]any{
		"order_type": "regular",
		"items": []map[string]any{
			{"name": "Jersey", "quantity": 1},
			{"name": "Necktie", "quantity": 1},
			{"name": "Skirt", "quantity": 1},
		},
	}

	tests := []struct {
		name       string
		body       map[string]any
		err        error
		wantStatus int
		wantCode   string
		details    map[string]any
	}{
		{
			name:       "slot limit",
			body:       validBody,
			err:        &domainerrors.SlotLimitExceededError{Limit: 2, Used: 0, Remaining: 2, Requested: 3},
			wantStatus: http.StatusConflict,
			wantCode:   "SLOT_LIMIT_EXCEEDED",
			details:    map[string]any{"limit": float64(2), "used": float64(0), "remaining": float64(2), "requested": float64(3)},
		},
		{
			name:       "blocked",
			body:       validBody,
			err:        domainerrors.NewNotEligibleError(true, "total item limit is set to zero"),
			wantStatus: http.StatusForbidden,
			wantCode:   "NOT_ELIGIBLE",
			details:    map[string]any{"blocked": true, "reason": "total item limit is set to zero"},
		},
		{
			name:       "infrastructure failure hides details",
			body:       validBody,
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "empty items never reach the use case",
			body:       map[string]any{"order_type": "regular", "items": []any{}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			details:    map[string]any{"Items": "min"},
		},
		{
			name:       "unknown order type",
			body:       map[string]any{"order_type": "rush", "items": []map[string]any{{"name": "Jersey", "quantity": 1}}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			details:    map[string]any{"OrderType": "oneof"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAPI(t)
			if tt.err != nil {
				ta.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec, env := ta.do(t, http.MethodPost, "/api/v1/orders", ta.token(t, studentID, entity.RoleStudent), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.details == nil {
				assert.Empty(t, env.Error.Details)

				return
			}
			var details map[string]any
			require.NoError(t, json.Unmarshal(env.Error.Details, &details))
			for key, want := range tt.details {
				assert.Equal(t, want, details[key], key)
			}
		})
	}
}

func TestCreateOrder_OnBehalfOfAnotherStudent(t *testing.T) {
	ta := newTestAPI(t)
	other := uuid.New()
	body := map[string]any{
		"student_id": other.String(),
		"order_type": "pre-order",
		"items":      []map[string]any{{"name": "Jersey", "size": "M", "quantity": 1}},
	}

	rec, env := ta.do(t, http.MethodPost, "/api/v1/orders", ta.token(t, uuid.New(), entity.RoleStudent), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	ta.orders.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool { return in.StudentID == other })).
		Return(&usecase.CreateOrderResult{Order: &entity.Order{ID: uuid.New(), StudentID: other}}, nil)

	rec, _ = ta.do(t, http.MethodPost, "/api/v1/orders", ta.token(t, uuid.New(), entity.RoleAdmin), body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetOrder_Visibility(t *testing.T) {
	ta := newTestAPI(t)
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), StudentID: owner, OrderNumber: "ORD-20260101-BBBBBB"}
	ta.orders.EXPECT().GetOrder(mock.Anything, order.ID).Return(order, nil)

	path := "/api/v1/orders/" + order.ID.String()

	rec, _ := ta.do(t, http.MethodGet, path, ta.token(t, owner, entity.RoleStudent), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := ta.do(t, http.MethodGet, path, ta.token(t, uuid.New(), entity.RoleStudent), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)

	rec, _ = ta.do(t, http.MethodGet, path, ta.token(t, uuid.New(), entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = ta.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", ta.token(t, owner, entity.RoleStudent), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestReceiptQRCode(t *testing.T) {
	ta := newTestAPI(t)
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), StudentID: owner}
	png := []byte{0x89, 'P', 'N', 'G'}

	ta.orders.EXPECT().GetOrder(mock.Anything, order.ID).Return(order, nil)
	ta.orders.EXPECT().ReceiptQRCode(mock.Anything, order.ID).Return(png, nil)

	rec, _ := ta.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String()+"/receipt.png", ta.token(t, owner, entity.RoleStudent), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	ta := newTestAPI(t)
	token := ta.token(t, uuid.New(), entity.RoleStudent)

	for _, path := range []string{"/api/v1/admin/orders", "/api/v1/admin/items/low-stock"} {
		rec, env := ta.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
		assert.Equal(t, "FORBIDDEN", env.Error.Code, path)
	}
}

func TestListOrders_Filter(t *testing.T) {
	ta := newTestAPI(t)
	studentID := uuid.New()

	ta.orders.EXPECT().
		ListOrders(mock.Anything, mock.MatchedBy(func(f entity.OrderFilter) bool {
			return len(f.Statuses) == 2 && f.Statuses[1] == entity.OrderStatusReady &&
				f.OrderType == entity.OrderTypePreOrder && f.StudentID != nil && *f.StudentID == studentID &&
				f.ActiveOnly && f.Limit == 10 && f.Offset == 20
		})).
		Return([]*entity.Order{{ID: uuid.New()}}, nil)

	path := "/api/v1/admin/orders?status=pending,ready&type=pre-order&limit=10&offset=20&student_id=" + studentID.String()
	rec, env := ta.do(t, http.MethodGet, path, ta.token(t, uuid.New(), entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 1, *env.Meta.Count)

	rec, env = ta.do(t, http.MethodGet, "/api/v1/admin/orders?status=lost", ta.token(t, uuid.New(), entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestUpdateStatus_CancellationTriggersRestock(t *testing.T) {
	ta := newTestAPI(t)
	orderID := uuid.New()
	replenished := []entity.StockChange{{ItemName: "Jersey", Size: "M", PreviousVariant: 0, NewVariant: 2}}

	ta.orders.EXPECT().
		UpdateStatus(mock.Anything, &usecase.StatusChange{
			OrderID: orderID,
			Status:  entity.OrderStatusCancelled,
			Note:    "student moved away",
			Source:  entity.StatusChangeSourceManual,
		}).
		Return(&usecase.StatusChangeResult{
			Order:       &entity.Order{ID: orderID, Status: entity.OrderStatusCancelled},
			Replenished: replenished,
		}, nil)
	ta.restock.EXPECT().HandleStockChanges(mock.Anything, replenished).
		Return([]*usecase.RestockReport{{ItemName: "Jersey", Size: "M", Matched: 1, Converted: 1}})

	rec, env := ta.do(t, http.MethodPatch, "/api/v1/admin/orders/"+orderID.String()+"/status",
		ta.token(t, uuid.New(), entity.RoleAdmin),
		map[string]any{"status": "cancelled", "note": "student moved away"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"restocks"`)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	ta := newTestAPI(t)
	orderID := uuid.New()

	ta.orders.EXPECT().UpdateStatus(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidStatusTransition.WrapMessage("claimed -> cancelled"))

	rec, env := ta.do(t, http.MethodPatch, "/api/v1/admin/orders/"+orderID.String()+"/status",
		ta.token(t, uuid.New(), entity.RoleAdmin), map[string]any{"status": "cancelled"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
}

func TestAddPurchase_RestocksOnlyWhenReplenished(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name        string
		change      *entity.StockChange
		wantRestock bool
	}{
		{
			name:        "from zero",
			change:      &entity.StockChange{ItemID: itemID, ItemName: "Jersey", Size: "M", PreviousVariant: 0, NewVariant: 20},
			wantRestock: true,
		},
		{
			name:   "already stocked",
			change: &entity.StockChange{ItemID: itemID, ItemName: "Jersey", Size: "M", PreviousVariant: 3, NewVariant: 23},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAPI(t)
			ta.inventory.EXPECT().
				AddPurchase(mock.Anything, &usecase.AddPurchaseInput{ItemID: itemID, Quantity: 20, Size: "M"}).
				Return(tt.change, nil)
			if tt.wantRestock {
				ta.restock.EXPECT().HandleStockChanges(mock.Anything, []entity.StockChange{*tt.change}).
					Return([]*usecase.RestockReport{{ItemName: "Jersey", Matched: 5, Converted: 5}})
			}

			rec, env := ta.do(t, http.MethodPost, "/api/v1/admin/items/"+itemID.String()+"/purchases",
				ta.token(t, uuid.New(), entity.RoleAdmin), map[string]any{"quantity": 20, "size": "M"})

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantRestock, bytes.Contains(env.Data, []byte(`"restocks"`)))
		})
	}
}

func TestVoidSweep_PolicySelection(t *testing.T) {
	ta := newTestAPI(t)
	policies := []usecase.VoidPolicy{
		{Name: "long", Window: 7 * 24 * time.Hour},
		{Name: "short", Window: 10 * time.Second, RequireUnconfirmed: true},
	}
	ta.voids.EXPECT().Policies().Return(policies)
	ta.voids.EXPECT().Sweep(mock.Anything, policies[1], mock.AnythingOfType("time.Time")).
		Return(&usecase.SweepReport{Policy: "short", Scanned: 2, Voided: 1}, nil).Once()

	token := ta.token(t, uuid.New(), entity.RoleAdmin)

	rec, env := ta.do(t, http.MethodPost, "/api/v1/admin/void/sweep", token, map[string]any{"policy": "short"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"voided":1`)

	rec, env = ta.do(t, http.MethodPost, "/api/v1/admin/void/sweep", token, map[string]any{"policy": "weekly"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestStudentLimits(t *testing.T) {
	ta := newTestAPI(t)
	studentID := uuid.New()
	admin := ta.token(t, uuid.New(), entity.RoleAdmin)

	rec, env := ta.do(t, http.MethodPut, "/api/v1/admin/students/"+studentID.String()+"/limit", admin, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	limit := 4
	ta.students.EXPECT().SetItemLimit(mock.Anything, studentID, 4).
		Return(&entity.Student{ID: studentID, TotalItemLimit: &limit}, nil)
	rec, _ = ta.do(t, http.MethodPut, "/api/v1/admin/students/"+studentID.String()+"/limit", admin, map[string]any{"limit": 4})
	assert.Equal(t, http.StatusOK, rec.Code)

	ta.students.EXPECT().GetLimits(mock.Anything, studentID).
		Return(nil, domainerrors.NewNotEligibleError(false, "student type is not set"))
	rec, env = ta.do(t, http.MethodGet, "/api/v1/limits/me", ta.token(t, studentID, entity.RoleStudent), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_ELIGIBLE", env.Error.Code)
}

func TestDevices(t *testing.T) {
	ta := newTestAPI(t)
	studentID := uuid.New()
	token := ta.token(t, studentID, entity.RoleStudent)

	ta.devices.EXPECT().
		RegisterDevice(mock.Anything, studentID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "phone-1", Platform: "ios"}).
		Return(&entity.StudentDevice{ID: uuid.New(), StudentID: studentID, FCMToken: "fcm-1"}, nil)
	rec, _ := ta.do(t, http.MethodPost, "/api/v1/devices", token,
		map[string]any{"fcm_token": "fcm-1", "device_id": "phone-1", "platform": "ios"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := ta.do(t, http.MethodPost, "/api/v1/devices", token,
		map[string]any{"fcm_token": "fcm-1", "device_id": "phone-1", "platform": "symbian"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	deviceID := uuid.New()
	ta.devices.EXPECT().DeactivateDevice(mock.Anything, studentID, deviceID).Return(nil)
	rec, _ = ta.do(t, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestContextCarriesStudent(t *testing.T) {
	ta := newTestAPI(t)
	studentID := uuid.New()

	ta.orders.EXPECT().ListStudentOrders(mock.Anything, studentID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) ([]*entity.Order, error) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))

			return nil, nil
		})

	rec, env := ta.do(t, http.MethodGet, "/api/v1/orders/mine", ta.token(t, studentID, entity.RoleStudent), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}
