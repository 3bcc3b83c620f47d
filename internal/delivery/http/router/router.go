// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kasir/internal/delivery/http/middleware"
	"kasir/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	BusinessHandler     *handler.BusinessHandler
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	TransactionHandler  *handler.TransactionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	businessHandler     *handler.BusinessHandler
	productHandler      *handler.ProductHandler
	cartHandler         *handler.CartHandler
	transactionHandler  *handler.TransactionHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		businessHandler:     params.BusinessHandler,
		productHandler:      params.ProductHandler,
		cartHandler:         params.CartHandler,
		transactionHandler:  params.TransactionHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint, open for load balancer probes
	e.GET("/health", handler.HealthCheck)

	// User registry
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("/:userId", r.userHandler.GetUser)
	}

	// Business profile and everything scoped under it
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	{
		businessGroup.POST("", r.businessHandler.CreateBusiness)
		businessGroup.GET("/:businessId", r.businessHandler.GetBusiness)
		businessGroup.PUT("/:businessId", r.businessHandler.UpdateBusiness)

		// Product catalog
		businessGroup.POST("/:businessId/product", r.productHandler.CreateProduct)
		businessGroup.GET("/:businessId/product", r.productHandler.SearchProducts)
		businessGroup.POST("/:businessId/product/image", r.productHandler.UploadProductImage)
		businessGroup.GET("/:businessId/product/:productId", r.productHandler.GetProduct)
		businessGroup.PUT("/:businessId/product/:productId", r.productHandler.UpdateProduct)
		businessGroup.DELETE("/:businessId/product/:productId", r.productHandler.DeleteProduct)

		// Cart items, loose until a checkout claims them
		businessGroup.POST("/:businessId/transaction-item", r.cartHandler.AddCartItem)
		businessGroup.GET("/:businessId/transaction-item", r.cartHandler.ListUnassigned)
		businessGroup.GET("/:businessId/transaction-item/:itemId", r.cartHandler.GetCartItem)
		businessGroup.PUT("/:businessId/transaction-item/:itemId", r.cartHandler.EditCount)

		// Checkout and transaction reads
		businessGroup.POST("/:businessId/transaction", r.transactionHandler.AssembleTransaction)
		businessGroup.GET("/:businessId/transaction", r.transactionHandler.ListTransactions)
		businessGroup.GET("/:businessId/transaction/:transactionId", r.transactionHandler.GetTransaction)
	}
}
