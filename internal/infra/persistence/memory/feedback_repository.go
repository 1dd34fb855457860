package memory

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
)

type feedbackRepository struct {
	store *Store
}

// NewFeedbackRepository creates a feedback store on store
func NewFeedbackRepository(store *Store) repository.FeedbackRepository {
	return &feedbackRepository{store: store}
}

func (r *feedbackRepository) Create(_ context.Context, feedback *entity.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *feedback
	r.store.feedback = append(r.store.feedback, &stored)

	return nil
}

type extractionRepository struct {
	store *Store
}

// NewExtractionRepository creates a failed extraction store on store
func NewExtractionRepository(store *Store) repository.ExtractionRepository {
	return &extractionRepository{store: store}
}

func (r *extractionRepository) RecordFailure(_ context.Context, extraction *entity.FailedExtraction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *extraction
	r.store.extractions = append(r.store.extractions, &stored)

	return nil
}
