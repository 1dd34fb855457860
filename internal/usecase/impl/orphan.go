package impl

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"
)

// orphanCleaner detaches items from a cart and deletes the ones left without any cart.
type orphanCleaner struct {
	itemRepo repository.ItemRepository
}

// detach pulls cartID from the item's membership and, if that emptied it,
// deletes the item. It reports whether the item was deleted.
func (c orphanCleaner) detach(ctx context.Context, userID, itemID, cartID string) (bool, error) {
	item, err := c.itemRepo.RemoveCartRef(ctx, userID, itemID, cartID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			// already gone
			return false, nil
		}

		return false, errors.Wrapf(err, "detach item %s from cart %s", itemID, cartID)
	}
	if !item.IsOrphan() {
		return false, nil
	}

	return c.deleteIfOrphan(ctx, userID, itemID)
}

// deleteIfOrphan deletes the item only if its membership is still empty at write time.
func (c orphanCleaner) deleteIfOrphan(ctx context.Context, userID, itemID string) (bool, error) {
	deleted, err := c.itemRepo.DeleteIfOrphan(ctx, userID, itemID)
	if err != nil {
		return false, errors.Wrapf(err, "delete orphan item %s", itemID)
	}

	return deleted, nil
}

// detachAll runs detach for every item, carrying on past failures. The returned
// error aggregates every failed step.
func (c orphanCleaner) detachAll(ctx context.Context, userID, cartID string, itemIDs []string, result *entity.CleanupResult) error {
	var errs error
	for _, itemID := range itemIDs {
		deleted, err := c.detach(ctx, userID, itemID, cartID)
		if err != nil {
			result.RecordFailure()
			errs = errors.Append(errs, err)

			continue
		}

		result.RecordSuccess()
		if deleted {
			result.OrphansDeleted++
		}
	}

	return errs
}
