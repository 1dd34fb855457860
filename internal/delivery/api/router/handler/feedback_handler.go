package handler

import (
	"log/slog"
	"net/http"
	"time"

	"buyhive/internal/delivery/api/middleware"
	"buyhive/internal/delivery/api/response"
	"buyhive/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FeedbackHandler holds dependencies for feedback and extraction reports
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(feedbackUC usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: feedbackUC,
		logger:     logger,
	}
}

// FeedbackRequest represents the feedback form
type FeedbackRequest struct {
	Type        string     `json:"type" validate:"max=100"`
	Description string     `json:"description" validate:"required,max=2000"`
	FirstName   string     `json:"first_name" validate:"max=100"`
	LastName    string     `json:"last_name" validate:"max=100"`
	Email       string     `json:"email" validate:"omitempty,email"`
	Timestamp   *time.Time `json:"timestamp"`
}

// FailedExtractionRequest reports a page the extension could not read
type FailedExtractionRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// SubmitFeedback stores a feedback message
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.FeedbackInput{
		UserID:      userID,
		Type:        req.Type,
		Description: req.Description,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
	}
	if req.Timestamp != nil {
		input.Timestamp = *req.Timestamp
	}

	feedback, err := h.feedbackUC.SubmitFeedback(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, feedback)
}

// RecordFailedExtraction stores a failed extraction report
func (h *FeedbackHandler) RecordFailedExtraction(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req FailedExtractionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid extraction input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	extraction, err := h.feedbackUC.RecordFailedExtraction(c.Request().Context(), userID, req.URL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, extraction)
}
