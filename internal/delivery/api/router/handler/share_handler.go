package handler

import (
	"log/slog"
	"net/http"

	"buyhive/internal/delivery/api/middleware"
	"buyhive/internal/delivery/api/response"
	"buyhive/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ShareHandler holds dependencies for cart sharing handlers
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(shareUC usecase.ShareUsecase, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		shareUC: shareUC,
		logger:  logger,
	}
}

// ShareCartRequest represents the request body for emailing a cart
type ShareCartRequest struct {
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	Message        string `json:"message" validate:"max=500"`
}

// ShareCart queues the share email and returns the event id
func (h *ShareHandler) ShareCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ShareCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	eventID, err := h.shareUC.ShareCart(c.Request().Context(), &usecase.ShareCartInput{
		UserID:         userID,
		CartID:         c.Param("cartId"),
		RecipientEmail: req.RecipientEmail,
		Message:        req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"event_id": eventID})
}

// CartQRCode returns the cart's share link as a PNG QR code
func (h *ShareHandler) CartQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.shareUC.CartQRCode(c.Request().Context(), userID, c.Param("cartId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
