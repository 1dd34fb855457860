package usecase

import (
	"context"

	"buyhive/internal/domain/reconcile"
)

// ReconcileReport describes the drift found for one user and what was repaired
type ReconcileReport struct {
	UserID  string          `json:"user_id"`
	Plan    *reconcile.Plan `json:"plan"`
	Applied bool            `json:"applied"`
	// Failed counts repair writes that returned an error
	Failed int `json:"failed"`
}

// ReconcileUsecase rebuilds derived references from their authoritative side
type ReconcileUsecase interface {
	// Reconcile computes the repair plan for a user and applies it when apply is set
	Reconcile(ctx context.Context, userID string, apply bool) (*ReconcileReport, error)

	// ListUserIDs returns every known user id
	ListUserIDs(ctx context.Context) ([]string, error)
}
