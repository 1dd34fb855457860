package usecase

import (
	"context"
	"time"

	"buyhive/internal/domain/entity"
)

// FeedbackInput holds a feedback form submission
type FeedbackInput struct {
	UserID      string
	Type        string
	Description string
	FirstName   string
	LastName    string
	Email       string
	Timestamp   time.Time
}

// FeedbackUsecase defines feedback and extraction-report operations
type FeedbackUsecase interface {
	// SubmitFeedback stores a feedback message
	SubmitFeedback(ctx context.Context, input *FeedbackInput) (*entity.Feedback, error)

	// RecordFailedExtraction stores a page the extension could not parse
	RecordFailedExtraction(ctx context.Context, userID, url string) (*entity.FailedExtraction, error)
}
