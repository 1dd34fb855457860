package impl

import (
	"context"
	"testing"
	"time"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/errors"
	mockRepo "buyhive/internal/mocks/repository"
	"buyhive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_SubmitFeedback(t *testing.T) {
	ctx := context.Background()
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	srv := NewFeedbackService(feedbackRepo, mockRepo.NewMockExtractionRepository(t))

	sent := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	feedbackRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Feedback")).Return(nil)

	feedback, err := srv.SubmitFeedback(ctx, &usecase.FeedbackInput{
		UserID:      "u1",
		Type:        "bug",
		Description: "The <b>save</b> button does nothing",
		FirstName:   " Ann ",
		Email:       " ann@example.com ",
		Timestamp:   sent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, feedback.FeedbackID)
	assert.Equal(t, "The save button does nothing", feedback.Description)
	assert.Equal(t, "Ann", feedback.FirstName)
	assert.Equal(t, "ann@example.com", feedback.Email)
	assert.True(t, sent.Equal(feedback.Timestamp))
	assert.Equal(t, time.UTC, feedback.Timestamp.Location())
}

func TestFeedbackService_SubmitFeedback_DefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	srv := NewFeedbackService(feedbackRepo, mockRepo.NewMockExtractionRepository(t))

	feedbackRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	feedback, err := srv.SubmitFeedback(ctx, &usecase.FeedbackInput{Description: "Love it"})
	require.NoError(t, err)
	assert.False(t, feedback.Timestamp.IsZero())
	assert.Equal(t, feedback.CreatedAt, feedback.Timestamp)
}

func TestFeedbackService_SubmitFeedback_RequiresDescription(t *testing.T) {
	srv := NewFeedbackService(mockRepo.NewMockFeedbackRepository(t), mockRepo.NewMockExtractionRepository(t))

	_, err := srv.SubmitFeedback(context.Background(), &usecase.FeedbackInput{Description: "<p> </p>"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFeedbackService_RecordFailedExtraction(t *testing.T) {
	ctx := context.Background()
	extractionRepo := mockRepo.NewMockExtractionRepository(t)
	srv := NewFeedbackService(mockRepo.NewMockFeedbackRepository(t), extractionRepo)

	extractionRepo.EXPECT().
		RecordFailure(ctx, mock.MatchedBy(func(e *entity.FailedExtraction) bool {
			return e.Domain == "shop.example.com" && e.UserID == "u1"
		})).
		Return(nil)

	extraction, err := srv.RecordFailedExtraction(ctx, "u1", " https://WWW.Shop.Example.com/p/1?ref=x ")
	require.NoError(t, err)
	assert.Equal(t, "https://WWW.Shop.Example.com/p/1?ref=x", extraction.URL)
	assert.Equal(t, "shop.example.com", extraction.Domain)
}

func TestFeedbackService_RecordFailedExtraction_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("relative url", func(t *testing.T) {
		srv := NewFeedbackService(mockRepo.NewMockFeedbackRepository(t), mockRepo.NewMockExtractionRepository(t))

		_, err := srv.RecordFailedExtraction(ctx, "u1", "/p/1")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("storage failure", func(t *testing.T) {
		extractionRepo := mockRepo.NewMockExtractionRepository(t)
		srv := NewFeedbackService(mockRepo.NewMockFeedbackRepository(t), extractionRepo)
		extractionRepo.EXPECT().RecordFailure(ctx, mock.Anything).Return(errors.New("timeout"))

		_, err := srv.RecordFailedExtraction(ctx, "u1", "https://shop.example.com")
		_, ok := errors.AsType[*domainerrors.StorageUnavailableError](err)
		assert.True(t, ok)
	})
}
