// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	Config         *config.Config
	CartHandler    *handler.CartHandler
	PaymentHandler *handler.PaymentHandler
	ReviewHandler  *handler.ReviewHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AccountHandler *handler.AccountHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	cartHandler    *handler.CartHandler
	paymentHandler *handler.PaymentHandler
	reviewHandler  *handler.ReviewHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	accountHandler *handler.AccountHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		cartHandler:    params.CartHandler,
		paymentHandler: params.PaymentHandler,
		reviewHandler:  params.ReviewHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		accountHandler: params.AccountHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	api := e.Group("/api")
	{
		// Cart pricing
		api.POST("/cart/price", r.cartHandler.PriceCart)

		// Payment lifecycle
		paystackGroup := api.Group("/paystack")
		{
			paystackGroup.POST("/initialize", r.paymentHandler.Initialize)
			paystackGroup.GET("/verify", r.paymentHandler.Verify)
			paystackGroup.POST("/verify", r.paymentHandler.Verify)
			paystackGroup.POST("/webhook", r.paymentHandler.Webhook)
			paystackGroup.GET("/:reference/qr", r.paymentHandler.QRCode)
		}

		// Reviews
		reviewGroup := api.Group("/reviews")
		{
			reviewGroup.POST("", r.reviewHandler.Create)
			reviewGroup.GET("/product/:productId", r.reviewHandler.ListByProduct)
			reviewGroup.PATCH("/:id/helpful", r.reviewHandler.MarkHelpful)
			reviewGroup.DELETE("/:id",
				r.reviewHandler.Delete,
				r.authMiddleware.Authenticate,
				r.authMiddleware.RequireRole("admin"),
			)
		}

		// Catalog
		productGroup := api.Group("/products")
		{
			productGroup.GET("", r.productHandler.List)
			productGroup.GET("/:id", r.productHandler.Get)
			productGroup.POST("",
				r.productHandler.Create,
				r.authMiddleware.Authenticate,
				r.authMiddleware.RequireRole("admin"),
			)
		}

		// Orders
		orderGroup := api.Group("/orders")
		{
			orderGroup.POST("", r.orderHandler.Create)
			orderGroup.GET("/:reference", r.orderHandler.Get)
		}

		// Password reset flow
		api.POST("/forgot-password", r.accountHandler.ForgotPassword)
		api.POST("/reset-password", r.accountHandler.ResetPassword)
	}
}

// RegisterTestRoutes sets up testing endpoints when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.cfg.TestRoutes == nil || !r.cfg.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	{
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
