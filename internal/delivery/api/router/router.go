// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"uniform/internal/delivery/api/middleware"
	"uniform/internal/delivery/api/router/handler"
	"uniform/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	ItemHandler    *handler.ItemHandler
	StudentHandler *handler.StudentHandler
	VoidHandler    *handler.VoidHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	itemHandler    *handler.ItemHandler
	studentHandler *handler.StudentHandler
	voidHandler    *handler.VoidHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		itemHandler:    params.ItemHandler,
		studentHandler: params.StudentHandler,
		voidHandler:    params.VoidHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/mine", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/confirm", r.orderHandler.ConfirmOrder)
		ordersGroup.GET("/:id/receipt.png", r.orderHandler.ReceiptQRCode)
	}

	apiV1.GET("/limits/me", r.studentHandler.MyLimits)

	itemsGroup := apiV1.Group("/items")
	{
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
		adminGroup.POST("/orders/claim", r.orderHandler.ClaimByReceipt)
		adminGroup.POST("/orders/:id/convert", r.orderHandler.ConvertPreOrder)
		adminGroup.DELETE("/orders/:id", r.orderHandler.DeactivateOrder)

		adminGroup.POST("/items", r.itemHandler.CreateItem)
		adminGroup.GET("/items/low-stock", r.itemHandler.LowStock)
		adminGroup.POST("/items/:id/purchases", r.itemHandler.AddPurchase)
		adminGroup.PATCH("/items/:id/reorder-point", r.itemHandler.UpdateReorderPoint)
		adminGroup.POST("/restock", r.itemHandler.Restock)

		adminGroup.POST("/void/sweep", r.voidHandler.Sweep)

		adminGroup.POST("/students", r.studentHandler.RegisterStudent)
		adminGroup.GET("/students/:id", r.studentHandler.GetStudent)
		adminGroup.PATCH("/students/:id", r.studentHandler.UpdateStudent)
		adminGroup.PUT("/students/:id/limit", r.studentHandler.SetItemLimit)
		adminGroup.POST("/students/:id/strikes/reset", r.studentHandler.ResetStrikes)
	}
}
