package handler

import (
	"log/slog"
	"net/http"
	"time"

	"uniform/internal/delivery/api/response"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VoidHandlerParams holds dependencies for VoidHandler, injected by Fx.
type VoidHandlerParams struct {
	fx.In

	VoidUC usecase.VoidUsecase
	Logger *slog.Logger
}

// VoidHandler lets an admin run a sweep without waiting for the scheduler.
type VoidHandler struct {
	voidUC usecase.VoidUsecase
	logger *slog.Logger
	now    func() time.Time
}

// NewVoidHandler is the constructor for VoidHandler
func NewVoidHandler(params VoidHandlerParams) *VoidHandler {
	return &VoidHandler{
		voidUC: params.VoidUC,
		logger: params.Logger,
		now:    time.Now,
	}
}

// SweepRequest selects the policies to run. Empty runs all of them.
type SweepRequest struct {
	Policy string `json:"policy"`
}

// Sweep runs the selected policies now
func (h *VoidHandler) Sweep(c echo.Context) error {
	var req SweepRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	policies := h.voidUC.Policies()
	if req.Policy != "" {
		selected := policies[:0:0]
		for _, policy := range policies {
			if policy.Name == req.Policy {
				selected = append(selected, policy)
			}
		}
		if len(selected) == 0 {
			return domainerrors.NewValidationError(map[string]string{"policy": "oneof"})
		}
		policies = selected
	}

	now := h.now()
	reports := make([]*usecase.SweepReport, 0, len(policies))
	for _, policy := range policies {
		report, err := h.voidUC.Sweep(c.Request().Context(), policy, now)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	return response.Success(c, http.StatusOK, reports)
}
