// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"buyhive/internal/delivery/api/middleware"
	"buyhive/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Rate limit scopes
const (
	scopeShare    = "share"
	scopeFeedback = "feedback"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CartHandler     *handler.CartHandler
	ItemHandler     *handler.ItemHandler
	ShareHandler    *handler.ShareHandler
	FeedbackHandler *handler.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimit       *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	cartHandler     *handler.CartHandler
	itemHandler     *handler.ItemHandler
	shareHandler    *handler.ShareHandler
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimit       *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		cartHandler:     params.CartHandler,
		itemHandler:     params.ItemHandler,
		shareHandler:    params.ShareHandler,
		feedbackHandler: params.FeedbackHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimit:       params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.userHandler.GetMe)

	cartsGroup := apiV1.Group("/carts")
	{
		cartsGroup.GET("", r.cartHandler.ListCarts)
		cartsGroup.POST("", r.cartHandler.CreateCart)
		cartsGroup.PATCH("/:cartId", r.cartHandler.RenameCart)
		cartsGroup.DELETE("/:cartId", r.cartHandler.DeleteCart)
		cartsGroup.GET("/:cartId/items", r.cartHandler.GetCartItems)
		cartsGroup.DELETE("/:cartId/items/:itemId", r.cartHandler.RemoveItemFromCart)
		cartsGroup.GET("/:cartId/qrcode", r.shareHandler.CartQRCode)
		cartsGroup.POST("/:cartId/share", r.shareHandler.ShareCart, r.rateLimit.Limit(scopeShare))
	}

	itemsGroup := apiV1.Group("/items")
	{
		itemsGroup.POST("", r.itemHandler.CreateItem)
		itemsGroup.PUT("/:itemId/carts", r.itemHandler.MoveItem)
		itemsGroup.PUT("/:itemId/note", r.itemHandler.UpdateNote)
		itemsGroup.DELETE("/:itemId", r.itemHandler.NukeItem)
	}

	apiV1.POST("/feedback", r.feedbackHandler.SubmitFeedback, r.rateLimit.Limit(scopeFeedback))
	apiV1.POST("/extractions/failed", r.feedbackHandler.RecordFailedExtraction)
}
