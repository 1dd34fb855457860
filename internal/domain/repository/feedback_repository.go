package repository

import (
	"context"

	"buyhive/internal/domain/entity"
)

// FeedbackRepository stores user feedback submissions.
type FeedbackRepository interface {
	// Create persists a feedback message.
	Create(ctx context.Context, feedback *entity.Feedback) error
}

// ExtractionRepository stores reports of product pages that could not be parsed.
type ExtractionRepository interface {
	// RecordFailure persists a failed extraction report.
	RecordFailure(ctx context.Context, extraction *entity.FailedExtraction) error
}
