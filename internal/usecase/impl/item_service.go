package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"
	"buyhive/internal/usecase"
	"buyhive/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
	cleaner  orphanCleaner
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		cartRepo: params.CartRepo,
		itemRepo: params.ItemRepo,
		cleaner:  orphanCleaner{itemRepo: params.ItemRepo},
		logger:   params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// CreateItem rejects a URL the user already saved, validates every target cart,
// writes the item and then adds it to each cart. The item's membership is
// authoritative, so failed cart writes are only logged.
func (srv *itemService) CreateItem(ctx context.Context, userID string, details *entity.ItemDetails, cartIDs []string) (*entity.Item, error) {
	cleaned, err := sanitizeItemDetails(details)
	if err != nil {
		return nil, err
	}

	targets := util.DedupeIDs(cartIDs)
	if len(targets) == 0 {
		return nil, validationError("at least one cart is required")
	}

	if cleaned.URL != nil {
		existing, err := srv.itemRepo.FindByURL(ctx, userID, *cleaned.URL)
		switch {
		case err == nil:
			return nil, srv.duplicateError(ctx, userID, existing)
		case !errors.Is(err, repository.ErrItemNotFound):
			return nil, storageError(err, "find item by url")
		}
	}

	if err := srv.requireCarts(ctx, userID, targets); err != nil {
		return nil, err
	}

	item := &entity.Item{
		ItemID:          uuid.NewString(),
		UserID:          userID,
		Name:            cleaned.Name,
		Price:           cleaned.Price,
		Image:           cleaned.Image,
		URL:             cleaned.URL,
		Notes:           cleaned.Notes,
		AddedAt:         time.Now().UTC(),
		SelectedCartIDs: targets,
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateItemURL) && item.URL != nil {
			// lost a race with a concurrent create of the same URL
			existing, findErr := srv.itemRepo.FindByURL(ctx, userID, *item.URL)
			if findErr == nil {
				return nil, srv.duplicateError(ctx, userID, existing)
			}
		}

		return nil, storageError(err, "create item")
	}

	for _, cartID := range targets {
		if _, err := srv.cartRepo.AddItemRef(ctx, userID, cartID, item.ItemID); err != nil {
			srv.log(ctx).Warn("Failed to add item to cart",
				slog.String("itemID", item.ItemID),
				slog.String("cartID", cartID),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Item created",
		slog.String("userID", userID),
		slog.String("itemID", item.ItemID),
		slog.Int("carts", len(targets)),
	)

	return item, nil
}

// MoveItem validates every target before writing anything, then applies removals,
// additions and finally the new membership set. Moving to no cart keeps the item.
func (srv *itemService) MoveItem(ctx context.Context, userID, itemID string, cartIDs []string) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		return nil, itemLookupError(err, itemID)
	}

	targets := util.DedupeIDs(cartIDs)
	if err := srv.requireCarts(ctx, userID, targets); err != nil {
		return nil, err
	}

	for _, cartID := range util.DiffIDs(item.SelectedCartIDs, targets) {
		if _, err := srv.cartRepo.RemoveItemRef(ctx, userID, cartID, itemID); err != nil {
			srv.log(ctx).Warn("Failed to remove item from cart",
				slog.String("itemID", itemID),
				slog.String("cartID", cartID),
				slog.Any("error", err),
			)
		}
	}
	for _, cartID := range util.DiffIDs(targets, item.SelectedCartIDs) {
		if _, err := srv.cartRepo.AddItemRef(ctx, userID, cartID, itemID); err != nil {
			srv.log(ctx).Warn("Failed to add item to cart",
				slog.String("itemID", itemID),
				slog.String("cartID", cartID),
				slog.Any("error", err),
			)
		}
	}

	updated, err := srv.itemRepo.SetCartRefs(ctx, userID, itemID, targets)
	if err != nil {
		return nil, itemLookupError(err, itemID)
	}

	if updated.IsOrphan() {
		srv.log(ctx).Warn("Item moved to no cart and kept",
			slog.String("userID", userID),
			slog.String("itemID", itemID),
		)
	}

	return updated, nil
}

// UpdateNote replaces the item's note.
func (srv *itemService) UpdateNote(ctx context.Context, userID, itemID, note string) (*entity.Item, error) {
	updated, err := srv.itemRepo.UpdateNote(ctx, userID, itemID, util.SanitizeOptional(&note, entity.ItemNotesMaxLength))
	if err != nil {
		return nil, itemLookupError(err, itemID)
	}

	return updated, nil
}

// RemoveItemFromCart removes both edges between the cart and the item and
// deletes the item when it has no cart left. A second call reports not found.
func (srv *itemService) RemoveItemFromCart(ctx context.Context, userID, cartID, itemID string) (*entity.RemovalResult, error) {
	cart, err := srv.cartRepo.FindByID(ctx, userID, cartID)
	if err != nil {
		return nil, cartLookupError(err, cartID)
	}
	if !cart.HasItem(itemID) {
		return nil, errors.Wrap(domainerrors.ErrItemNotFound.WithDetails(itemID), "item not in cart")
	}

	if _, err := srv.cartRepo.RemoveItemRef(ctx, userID, cartID, itemID); err != nil {
		return nil, storageError(err, "remove item from cart")
	}

	item, err := srv.itemRepo.RemoveCartRef(ctx, userID, itemID, cartID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			// the cart held a dangling reference; it is gone now
			return &entity.RemovalResult{}, nil
		}

		return nil, storageError(err, "remove cart from item")
	}

	if !item.IsOrphan() {
		return &entity.RemovalResult{Item: item}, nil
	}

	deleted, err := srv.cleaner.deleteIfOrphan(ctx, userID, itemID)
	if err != nil {
		return nil, storageError(err, "delete orphan item")
	}
	if !deleted {
		// re-added elsewhere between the two writes
		current, err := srv.itemRepo.FindByID(ctx, userID, itemID)
		if err != nil {
			return nil, itemLookupError(err, itemID)
		}

		return &entity.RemovalResult{Item: current}, nil
	}

	srv.log(ctx).Info("Orphan item deleted", slog.String("userID", userID), slog.String("itemID", itemID))

	return &entity.RemovalResult{ItemDeleted: true}, nil
}

// NukeItem removes the item from every cart that still references it and deletes it.
func (srv *itemService) NukeItem(ctx context.Context, userID, itemID string) (*entity.NukeResult, error) {
	item, err := srv.itemRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		return nil, itemLookupError(err, itemID)
	}

	result := &entity.NukeResult{ItemID: itemID}

	carts, err := srv.cartRepo.FindByIDs(ctx, userID, item.SelectedCartIDs)
	if err != nil {
		return nil, storageError(err, "find item carts")
	}

	var errs error
	for _, cart := range carts {
		if !cart.HasItem(itemID) {
			continue
		}

		removed, err := srv.cartRepo.RemoveItemRef(ctx, userID, cart.CartID, itemID)
		if err != nil {
			result.FailedCarts++
			errs = errors.Append(errs, errors.Wrapf(err, "remove item from cart %s", cart.CartID))

			continue
		}
		if removed {
			result.ModifiedCarts++
		}
	}

	if err := srv.itemRepo.Delete(ctx, userID, itemID); err != nil && !errors.Is(err, repository.ErrItemNotFound) {
		return nil, storageError(err, "delete item")
	}

	if errs != nil {
		srv.log(ctx).Warn("Item deleted with incomplete cart cleanup",
			slog.String("itemID", itemID),
			slog.Int("failedCarts", result.FailedCarts),
			slog.Any("error", errs),
		)
	}

	return result, nil
}

// requireCarts checks all cartIDs with one read and names the first missing id in caller order.
func (srv *itemService) requireCarts(ctx context.Context, userID string, cartIDs []string) error {
	if len(cartIDs) == 0 {
		return nil
	}

	carts, err := srv.cartRepo.FindByIDs(ctx, userID, cartIDs)
	if err != nil {
		return storageError(err, "find carts")
	}

	found := make(map[string]struct{}, len(carts))
	for _, cart := range carts {
		found[cart.CartID] = struct{}{}
	}
	for _, cartID := range cartIDs {
		if _, ok := found[cartID]; !ok {
			return errors.Wrap(domainerrors.ErrCartNotFound.WithDetails(cartID), "validate carts")
		}
	}

	return nil
}

// duplicateError names the first cart the existing item still sits in, if any.
func (srv *itemService) duplicateError(ctx context.Context, userID string, existing *entity.Item) error {
	cartName := ""
	if len(existing.SelectedCartIDs) > 0 {
		cart, err := srv.cartRepo.FindByID(ctx, userID, existing.SelectedCartIDs[0])
		if err == nil {
			cartName = cart.CartName
		}
	}

	return domainerrors.NewDuplicateItemError(existing, cartName)
}

func sanitizeItemDetails(details *entity.ItemDetails) (*entity.ItemDetails, error) {
	if details == nil {
		return nil, validationError("item details are required")
	}

	name := util.SanitizeText(details.Name, entity.ItemNameMaxLength)
	if name == "" {
		return nil, validationError("item name is required")
	}

	price := strings.TrimSpace(details.Price)
	if price == "" {
		return nil, validationError("item price is required")
	}

	image := trimOptional(details.Image)
	if image != nil && !util.IsHTTPURL(*image) {
		return nil, validationError("item image must be an http(s) url")
	}

	itemURL := trimOptional(details.URL)
	if itemURL != nil && !util.IsHTTPURL(*itemURL) {
		return nil, validationError("item url must be an http(s) url")
	}

	return &entity.ItemDetails{
		Name:  name,
		Price: price,
		Image: image,
		URL:   itemURL,
		Notes: util.SanitizeOptional(details.Notes, entity.ItemNotesMaxLength),
	}, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
