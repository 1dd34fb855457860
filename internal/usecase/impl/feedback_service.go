package impl

import (
	"context"
	"strings"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/usecase"
	"buyhive/internal/util"

	"github.com/google/uuid"
)

const (
	feedbackDescriptionMaxLength = 2000
	feedbackFieldMaxLength       = 100
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo   repository.FeedbackRepository
	extractionRepo repository.ExtractionRepository
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, extractionRepo repository.ExtractionRepository) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		extractionRepo: extractionRepo,
	}
}

// SubmitFeedback sanitizes and stores a feedback message.
func (srv *feedbackService) SubmitFeedback(ctx context.Context, input *usecase.FeedbackInput) (*entity.Feedback, error) {
	description := util.SanitizeText(input.Description, feedbackDescriptionMaxLength)
	if description == "" {
		return nil, validationError("feedback description is required")
	}

	now := time.Now().UTC()
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}

	feedback := &entity.Feedback{
		FeedbackID:  uuid.NewString(),
		Type:        util.SanitizeText(input.Type, feedbackFieldMaxLength),
		Description: description,
		FirstName:   util.SanitizeText(input.FirstName, feedbackFieldMaxLength),
		LastName:    util.SanitizeText(input.LastName, feedbackFieldMaxLength),
		Email:       strings.TrimSpace(input.Email),
		UserID:      input.UserID,
		Timestamp:   timestamp.UTC(),
		CreatedAt:   now,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, storageError(err, "create feedback")
	}

	return feedback, nil
}

// RecordFailedExtraction stores the page URL together with its normalized domain.
func (srv *feedbackService) RecordFailedExtraction(ctx context.Context, userID, url string) (*entity.FailedExtraction, error) {
	url = strings.TrimSpace(url)
	domain := util.NormalizeDomain(url)
	if domain == "" {
		return nil, validationError("url must be absolute")
	}

	extraction := &entity.FailedExtraction{
		ExtractionID: uuid.NewString(),
		URL:          url,
		Domain:       domain,
		UserID:       userID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.extractionRepo.RecordFailure(ctx, extraction); err != nil {
		return nil, storageError(err, "record failed extraction")
	}

	return extraction, nil
}
