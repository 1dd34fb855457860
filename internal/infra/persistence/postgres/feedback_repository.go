package postgres

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/infra/persistence/model"
	"buyhive/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type feedbackRepository struct {
	q *query.Query
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{q: query.Use(db)}
}

// Create persists a feedback message.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := &model.FeedbackModel{
		FeedbackID:  feedback.FeedbackID,
		Type:        feedback.Type,
		Description: feedback.Description,
		FirstName:   feedback.FirstName,
		LastName:    feedback.LastName,
		Email:       feedback.Email,
		UserID:      feedback.UserID,
		Timestamp:   feedback.Timestamp,
		CreatedAt:   feedback.CreatedAt,
	}
	if err := repo.q.FeedbackModel.WithContext(ctx).Create(feedbackM); err != nil {
		return errors.Wrap(err, "failed to create feedback")
	}

	return nil
}

type extractionRepository struct {
	q *query.Query
}

// NewExtractionRepository is the constructor for extractionRepository.
func NewExtractionRepository(db *gorm.DB) repository.ExtractionRepository {
	return &extractionRepository{q: query.Use(db)}
}

// RecordFailure persists a failed extraction report.
func (repo *extractionRepository) RecordFailure(ctx context.Context, extraction *entity.FailedExtraction) error {
	extractionM := &model.FailedExtractionModel{
		ExtractionID: extraction.ExtractionID,
		URL:          extraction.URL,
		Domain:       extraction.Domain,
		UserID:       extraction.UserID,
		CreatedAt:    extraction.CreatedAt,
	}
	if err := repo.q.FailedExtractionModel.WithContext(ctx).Create(extractionM); err != nil {
		return errors.Wrap(err, "failed to record extraction failure")
	}

	return nil
}
