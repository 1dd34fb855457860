package handler

import (
	"net/http"
	"testing"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/usecase"
	mockUsecase "buyhive/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestFeedbackHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockFeedbackUsecase) {
	feedbackUC := mockUsecase.NewMockFeedbackUsecase(t)
	h := NewFeedbackHandler(feedbackUC, newDiscardLogger())

	e := newTestEcho("u1")
	e.POST("/feedback", h.SubmitFeedback)
	e.POST("/extractions/failed", h.RecordFailedExtraction)

	return e, feedbackUC
}

func TestFeedbackHandler_SubmitFeedback(t *testing.T) {
	e, feedbackUC := createTestFeedbackHandler(t)

	sentAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	feedbackUC.EXPECT().SubmitFeedback(mock.Anything, mock.MatchedBy(func(in *usecase.FeedbackInput) bool {
		return in.UserID == "u1" && in.Type == "bug" && in.Description == "button broken" && in.Timestamp.Equal(sentAt)
	})).Return(&entity.Feedback{FeedbackID: "f1"}, nil)

	rec := doRequest(e, http.MethodPost, "/feedback",
		`{"type":"bug","description":"button broken","timestamp":"2024-03-01T12:00:00Z"}`)
	requireStatus(t, rec, http.StatusCreated)
}

func TestFeedbackHandler_SubmitFeedback_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing description", body: `{"type":"bug"}`},
		{name: "bad email", body: `{"description":"x","email":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestFeedbackHandler(t)

			rec := doRequest(e, http.MethodPost, "/feedback", tt.body)
			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestFeedbackHandler_RecordFailedExtraction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, feedbackUC := createTestFeedbackHandler(t)

		feedbackUC.EXPECT().RecordFailedExtraction(mock.Anything, "u1", "https://www.shop.test/p/1").
			Return(&entity.FailedExtraction{ExtractionID: "x1", Domain: "shop.test"}, nil)

		rec := doRequest(e, http.MethodPost, "/extractions/failed", `{"url":"https://www.shop.test/p/1"}`)
		requireStatus(t, rec, http.StatusCreated)
	})

	t.Run("invalid url", func(t *testing.T) {
		e, _ := createTestFeedbackHandler(t)

		rec := doRequest(e, http.MethodPost, "/extractions/failed", `{"url":"not a url"}`)
		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
	})
}
