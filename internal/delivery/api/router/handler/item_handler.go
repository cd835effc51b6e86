package handler

import (
	"log/slog"
	"net/http"

	"uniform/internal/delivery/api/response"
	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/repository"
	"uniform/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	RestockUC   usecase.RestockUsecase
	Logger      *slog.Logger
}

// ItemHandler serves the catalog and the stock desk.
type ItemHandler struct {
	inventoryUC usecase.InventoryUsecase
	restockUC   usecase.RestockUsecase
	logger      *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		inventoryUC: params.InventoryUC,
		restockUC:   params.RestockUC,
		logger:      params.Logger,
	}
}

// PurchaseRequest is the body of POST /admin/items/:id/purchases.
type PurchaseRequest struct {
	Quantity int    `json:"quantity" validate:"gt=0"`
	Size     string `json:"size"`
}

// ReorderPointRequest is the body of PATCH /admin/items/:id/reorder-point.
type ReorderPointRequest struct {
	ReorderPoint *int `json:"reorder_point" validate:"required,gte=0"`
}

// PurchaseResponse is the stock change with the pre-order conversions it caused.
type PurchaseResponse struct {
	Change   *entity.StockChange      `json:"change"`
	Restocks []*usecase.RestockReport `json:"restocks,omitempty"`
}

// ListItems returns active items, filtered by education_level, category and comma separated status
func (h *ItemHandler) ListItems(c echo.Context) error {
	filter := repository.ItemFilter{
		EducationLevel: c.QueryParam("education_level"),
		Category:       c.QueryParam("category"),
	}
	for _, status := range queryList(c, "status") {
		filter.Statuses = append(filter.Statuses, entity.StockStatus(status))
	}

	items, err := h.inventoryUC.ListItems(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.List(c, items)
}

// GetItem returns one item
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.inventoryUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateItem imports a catalog item
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req usecase.CreateItemInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.inventoryUC.CreateItem(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, item)
}

// AddPurchase records bought stock and converts the pre-orders waiting on a size that was empty
func (h *ItemHandler) AddPurchase(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	change, err := h.inventoryUC.AddPurchase(ctx, &usecase.AddPurchaseInput{
		ItemID:   id,
		Quantity: req.Quantity,
		Size:     req.Size,
	})
	if err != nil {
		return err
	}

	resp := PurchaseResponse{Change: change}
	if change.Replenished() {
		resp.Restocks = h.restockUC.HandleStockChanges(ctx, []entity.StockChange{*change})
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Restock triggered by purchase",
			slog.String("item", change.ItemName),
			slog.String("size", change.Size),
		)
	}

	return response.Success(c, http.StatusOK, resp)
}

// UpdateReorderPoint changes an item's reorder threshold
func (h *ItemHandler) UpdateReorderPoint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReorderPointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.inventoryUC.UpdateReorderPoint(c.Request().Context(), id, *req.ReorderPoint)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item)
}

// LowStock lists the items that need reordering
func (h *ItemHandler) LowStock(c echo.Context) error {
	items, err := h.inventoryUC.LowStock(c.Request().Context(), c.QueryParam("education_level"))
	if err != nil {
		return err
	}

	return response.List(c, items)
}

// Restock runs the pre-order conversion for a line announced back in stock
func (h *ItemHandler) Restock(c echo.Context) error {
	var req usecase.RestockInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.restockUC.HandleRestock(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report)
}
