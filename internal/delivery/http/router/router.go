// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fogon/internal/delivery/http/middleware"
	"fogon/internal/delivery/http/router/handler"
	"fogon/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	KitchenHandler *handler.KitchenHandler
	StoreHandler   *handler.StoreHandler
	ProfileHandler *handler.ProfileHandler
	PaymentHandler *handler.PaymentHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes: browsing needs no session.
	e.GET("/menu", r.params.CatalogHandler.ListMenu)
	e.GET("/menu/:id", r.params.CatalogHandler.GetProduct)
	e.POST("/menu/:id/customize", r.params.CatalogHandler.Customize)
	e.GET("/store", r.params.StoreHandler.Get)
	e.GET("/tables", r.params.StoreHandler.Tables)

	// Payment provider redirect, reached without a session.
	e.GET("/payments/wallet/callback", r.params.PaymentHandler.Callback)

	// Customer routes that require authentication
	api := e.Group("/api")
	api.Use(auth.Authenticate)
	{
		api.POST("/orders/quote", r.params.OrderHandler.Quote)
		api.POST("/orders", r.params.OrderHandler.Submit)
		api.GET("/orders", r.params.OrderHandler.ListMine)
		api.GET("/orders/:id", r.params.OrderHandler.Get)
		api.POST("/orders/:id/cancel", r.params.OrderHandler.Cancel)
		api.POST("/orders/proof", r.params.OrderHandler.UploadProof)

		api.POST("/payments/wallet/preference", r.params.PaymentHandler.CreatePreference)

		api.GET("/profile", r.params.ProfileHandler.Me)
		api.PUT("/profile/display", r.params.ProfileHandler.UpdateDisplay)
		api.POST("/profile/addresses", r.params.ProfileHandler.AddAddress)
		api.DELETE("/profile/addresses", r.params.ProfileHandler.RemoveAddress)
		api.POST("/profile/cards", r.params.ProfileHandler.AddCard)
		api.DELETE("/profile/cards", r.params.ProfileHandler.RemoveCard)
	}

	// Kitchen display routes for staff roles
	kitchen := e.Group("/kitchen")
	kitchen.Use(auth.Authenticate)
	kitchen.Use(auth.RequireStaff)
	{
		kitchen.GET("/board", r.params.KitchenHandler.Board)
		kitchen.GET("/board/stream", r.params.KitchenHandler.Stream)
		kitchen.POST("/orders/:id/advance", r.params.KitchenHandler.Advance)
	}

	// Dashboard routes that require the admin role
	admin := e.Group("/admin")
	admin.Use(auth.Authenticate)
	admin.Use(auth.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/products", r.params.CatalogHandler.CreateProduct)
		admin.PUT("/products/:id", r.params.CatalogHandler.UpdateProduct)
		admin.PATCH("/products/:id/stock", r.params.CatalogHandler.SetStock)
		admin.DELETE("/products/:id", r.params.CatalogHandler.DeleteProduct)
		admin.POST("/products/image", r.params.CatalogHandler.UploadImage)

		admin.PATCH("/store/open", r.params.StoreHandler.SetOpen)
		admin.PATCH("/store/tables", r.params.StoreHandler.SetTableCount)
		admin.POST("/store/accounts", r.params.StoreHandler.AddAccount)
		admin.DELETE("/store/accounts", r.params.StoreHandler.RemoveAccount)
		admin.GET("/store/tables/:table/qr", r.params.StoreHandler.TableQR)

		admin.GET("/reports/financial", r.params.ReportHandler.Financial)
	}
}
