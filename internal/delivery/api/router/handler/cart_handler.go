package handler

import (
	"log/slog"
	"net/http"

	"buyhive/internal/delivery/api/middleware"
	"buyhive/internal/delivery/api/response"
	"buyhive/internal/domain/entity"
	"buyhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// CartNameRequest is the body of create and rename requests
type CartNameRequest struct {
	CartName string `json:"cart_name" validate:"required"`
}

// DeleteCartResponse reports the cleanup that followed a cart delete
type DeleteCartResponse struct {
	CartID  string                `json:"cart_id"`
	Cleanup *entity.CleanupResult `json:"cleanup"`
}

// ListCarts returns the caller's carts
func (h *CartHandler) ListCarts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	carts, err := h.cartUC.ListCarts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, carts)
}

// CreateCart creates an empty cart
func (h *CartHandler) CreateCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CartNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.CreateCart(c.Request().Context(), userID, req.CartName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cart)
}

// RenameCart changes a cart's name
func (h *CartHandler) RenameCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CartNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.RenameCart(c.Request().Context(), userID, c.Param("cartId"), req.CartName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// DeleteCart deletes a cart and the items that were only in it
func (h *CartHandler) DeleteCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cartID := c.Param("cartId")
	result, err := h.cartUC.DeleteCart(c.Request().Context(), userID, cartID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteCartResponse{CartID: cartID, Cleanup: result})
}

// GetCartItems returns the items of a cart
func (h *CartHandler) GetCartItems(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.cartUC.GetCartItems(c.Request().Context(), userID, c.Param("cartId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// RemoveItemFromCart takes an item out of one cart
func (h *CartHandler) RemoveItemFromCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.itemUC.RemoveItemFromCart(c.Request().Context(), userID, c.Param("cartId"), c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
