package handler

import (
	"log/slog"
	"net/http"

	"uniform/internal/delivery/api/response"
	"uniform/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudentHandlerParams holds dependencies for StudentHandler, injected by Fx.
type StudentHandlerParams struct {
	fx.In

	StudentUC usecase.StudentUsecase
	Logger    *slog.Logger
}

// StudentHandler serves limit profiles.
type StudentHandler struct {
	studentUC usecase.StudentUsecase
	logger    *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler
func NewStudentHandler(params StudentHandlerParams) *StudentHandler {
	return &StudentHandler{
		studentUC: params.StudentUC,
		logger:    params.Logger,
	}
}

// SetLimitRequest is the body of PUT /admin/students/:id/limit.
type SetLimitRequest struct {
	Limit *int `json:"limit" validate:"required,gte=0"`
}

// MyLimits previews the caller's remaining allowance
func (h *StudentHandler) MyLimits(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	decision, err := h.studentUC.GetLimits(c.Request().Context(), studentID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, decision)
}

// RegisterStudent creates a limit profile
func (h *StudentHandler) RegisterStudent(c echo.Context) error {
	var req usecase.RegisterStudentInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentUC.RegisterStudent(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, student)
}

// GetStudent returns a limit profile
func (h *StudentHandler) GetStudent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	student, err := h.studentUC.GetStudent(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, student)
}

// UpdateStudent changes cohort attributes
func (h *StudentHandler) UpdateStudent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateStudentInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentUC.UpdateStudent(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, student)
}

// SetItemLimit sets an explicit limit. This is also how a blocked student is let back in.
func (h *StudentHandler) SetItemLimit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SetLimitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentUC.SetItemLimit(c.Request().Context(), id, *req.Limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, student)
}

// ResetStrikes clears the unclaimed void counter
func (h *StudentHandler) ResetStrikes(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	student, err := h.studentUC.ResetStrikes(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, student)
}
