package mongodb

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type feedbackRepository struct {
	feedback collection[feedbackDocument]
}

// NewFeedbackRepository creates a feedback store backed by the feedback collection
func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepository{feedback: newCollection[feedbackDocument](db, feedbackCollection)}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	doc := &feedbackDocument{
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
	if err := r.feedback.insert(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to create feedback")
	}

	return nil
}

type extractionRepository struct {
	extractions collection[extractionDocument]
}

// NewExtractionRepository creates a failed extraction store
func NewExtractionRepository(db *mongo.Database) repository.ExtractionRepository {
	return &extractionRepository{extractions: newCollection[extractionDocument](db, extractionsCollection)}
}

func (r *extractionRepository) RecordFailure(ctx context.Context, extraction *entity.FailedExtraction) error {
	doc := &extractionDocument{
		ExtractionID: extraction.ExtractionID,
		URL:          extraction.URL,
		Domain:       extraction.Domain,
		UserID:       extraction.UserID,
		CreatedAt:    extraction.CreatedAt,
	}
	if err := r.extractions.insert(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to record extraction failure")
	}

	return nil
}
