package impl

import (
	"context"
	"log/slog"

	"buyhive/internal/domain/reconcile"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"
	"buyhive/internal/usecase"

	"go.uber.org/fx"
)

// reconcileService implements the ReconcileUsecase interface.
type reconcileService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
	cleaner  orphanCleaner
	logger   *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	CartRepo repository.CartRepository
	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	return &reconcileService{
		userRepo: params.UserRepo,
		cartRepo: params.CartRepo,
		itemRepo: params.ItemRepo,
		cleaner:  orphanCleaner{itemRepo: params.ItemRepo},
		logger:   params.Logger,
	}
}

// ListUserIDs returns every user id.
func (srv *reconcileService) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := srv.userRepo.ListIDs(ctx)
	if err != nil {
		return nil, storageError(err, "list users")
	}

	return ids, nil
}

// Reconcile loads everything the user owns, derives the repair plan and applies it when asked.
func (srv *reconcileService) Reconcile(ctx context.Context, userID string, apply bool) (*usecase.ReconcileReport, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, storageError(err, "find user")
	}

	carts, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError(err, "list carts")
	}
	items, err := srv.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError(err, "list items")
	}

	if user == nil && len(carts) == 0 && len(items) == 0 {
		return nil, userLookupError(repository.ErrUserNotFound, userID)
	}

	plan := reconcile.Build(user, carts, items)
	plan.UserID = userID

	report := &usecase.ReconcileReport{UserID: userID, Plan: plan}
	if !apply || plan.Empty() {
		return report, nil
	}

	errs := srv.applyPlan(ctx, plan, report)
	report.Applied = true

	logger := requestLogger(ctx, srv.logger).With(slog.String("userID", userID))
	if errs != nil {
		logger.Warn("Reconcile applied with failures",
			slog.Int("failed", report.Failed),
			slog.Any("error", errs),
		)
	} else {
		logger.Info("Reconcile applied",
			slog.Int("cartFixes", len(plan.CartFixes)),
			slog.Int("itemFixes", len(plan.ItemFixes)),
			slog.Int("orphans", len(plan.Orphans)),
		)
	}

	return report, nil
}

// applyPlan repairs items first, since carts and the user are derived from them.
func (srv *reconcileService) applyPlan(ctx context.Context, plan *reconcile.Plan, report *usecase.ReconcileReport) error {
	var errs error
	record := func(err error) {
		if err != nil {
			report.Failed++
			errs = errors.Append(errs, err)
		}
	}

	for _, fix := range plan.ItemFixes {
		_, err := srv.itemRepo.SetCartRefs(ctx, plan.UserID, fix.ItemID, fix.CartIDs)
		record(errors.Wrapf(err, "set carts of item %s", fix.ItemID))
	}

	for _, itemID := range plan.Orphans {
		// an orphan may still list carts that no longer exist
		if _, err := srv.itemRepo.SetCartRefs(ctx, plan.UserID, itemID, []string{}); err != nil {
			record(errors.Wrapf(err, "clear carts of item %s", itemID))

			continue
		}
		_, err := srv.cleaner.deleteIfOrphan(ctx, plan.UserID, itemID)
		record(err)
	}

	for _, fix := range plan.CartFixes {
		record(errors.Wrapf(
			srv.cartRepo.SetItemRefs(ctx, plan.UserID, fix.CartID, fix.ItemIDs),
			"set items of cart %s", fix.CartID,
		))
	}

	if plan.UserCartIDs != nil {
		record(errors.Wrap(srv.userRepo.SetCartRefs(ctx, plan.UserID, plan.UserCartIDs), "set carts of user"))
	}

	return errs
}
