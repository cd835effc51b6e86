package handler

import (
	"log/slog"
	"net/http"

	"uniform/internal/delivery/api/response"
	"uniform/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler registers the push targets used for restock notifications.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), studentID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices returns the caller's active devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetStudentDevices(c.Request().Context(), studentID)
	if err != nil {
		return err
	}

	return response.List(c, devices)
}

// UpdateFCMToken replaces the token of one of the caller's devices
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), studentID, deviceID, req.FCMToken); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice stops pushes to one of the caller's devices
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), studentID, deviceID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
