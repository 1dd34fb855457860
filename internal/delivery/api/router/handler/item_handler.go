package handler

import (
	"log/slog"
	"net/http"

	"buyhive/internal/delivery/api/middleware"
	"buyhive/internal/delivery/api/response"
	"buyhive/internal/domain/entity"
	"buyhive/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ItemHandler holds dependencies for item-related handlers
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(itemUC usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		itemUC: itemUC,
		logger: logger,
	}
}

// CreateItemRequest represents the request body for saving an item
type CreateItemRequest struct {
	Name    string   `json:"name" validate:"required"`
	Price   string   `json:"price" validate:"required"`
	Image   *string  `json:"image" validate:"omitempty,http_url"`
	URL     *string  `json:"url" validate:"omitempty,http_url"`
	Notes   *string  `json:"notes"`
	CartIDs []string `json:"cart_ids" validate:"required,min=1"`
}

// MoveItemRequest carries the complete new membership of an item. An empty list is allowed.
type MoveItemRequest struct {
	CartIDs []string `json:"cart_ids" validate:"required"`
}

// UpdateNoteRequest replaces the note of an item; an empty note clears it
type UpdateNoteRequest struct {
	Note string `json:"note"`
}

// CreateItem saves an item into one or more carts
func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.itemUC.CreateItem(c.Request().Context(), userID, &entity.ItemDetails{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		URL:   req.URL,
		Notes: req.Notes,
	}, req.CartIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// MoveItem replaces the set of carts an item is in
func (h *ItemHandler) MoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req MoveItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.itemUC.MoveItem(c.Request().Context(), userID, c.Param("itemId"), req.CartIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// UpdateNote replaces an item's note
func (h *ItemHandler) UpdateNote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	item, err := h.itemUC.UpdateNote(c.Request().Context(), userID, c.Param("itemId"), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// NukeItem removes an item from every cart and deletes it
func (h *ItemHandler) NukeItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.itemUC.NukeItem(c.Request().Context(), userID, c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
