// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ShopHandler       *handler.ShopHandler
	ProductHandler    *handler.ProductHandler
	AdminHandler      *handler.AdminHandler
	RequestIDMw       *middleware.RequestIDMiddleware
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	shopHandler    *handler.ShopHandler
	productHandler *handler.ProductHandler
	adminHandler   *handler.AdminHandler
	requestIDMw    *middleware.RequestIDMiddleware
	sessionMw      *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		shopHandler:    params.ShopHandler,
		productHandler: params.ProductHandler,
		adminHandler:   params.AdminHandler,
		requestIDMw:    params.RequestIDMw,
		sessionMw:      params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes of the console.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMw.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login is the only public view.
	e.GET("/login", r.authHandler.ShowLogin)
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout)

	// Everything else requires a stored session.
	app := e.Group("", r.sessionMw.Require)
	{
		app.GET("/", r.shopHandler.Dashboard)
		app.GET("/shops/register", r.shopHandler.ShowRegister)
		app.POST("/shops/register", r.shopHandler.Register)
		app.GET("/shops/delete", r.shopHandler.ShowDelete)
		app.POST("/shops/delete", r.shopHandler.Delete)
		app.GET("/shops/:id", r.shopHandler.Show)
		app.GET("/shops/:id/qr", r.shopHandler.QR)

		app.POST("/shops/:id/products", r.productHandler.Create)
		app.POST("/products/:id", r.productHandler.Update)
		app.POST("/products/delete", r.productHandler.Delete)
	}

	// Cross-tenant views require the administrator role on top.
	admin := e.Group("/admin", r.sessionMw.Require, r.sessionMw.RequireAdmin)
	{
		admin.GET("", r.adminHandler.Directory)
		admin.GET("/shops/delete", r.adminHandler.ShowDelete)
		admin.POST("/shops/delete", r.adminHandler.Delete)
	}
}
