package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"
	"buyhive/internal/usecase"
	"buyhive/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
	cleaner  orphanCleaner
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	CartRepo repository.CartRepository
	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo: params.UserRepo,
		cartRepo: params.CartRepo,
		itemRepo: params.ItemRepo,
		cleaner:  orphanCleaner{itemRepo: params.ItemRepo},
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// CreateCart writes the cart first, then the user's back-reference. A failed
// back-reference is tolerated: carts are always listed by their owner field.
func (srv *cartService) CreateCart(ctx context.Context, userID, name string) (*entity.Cart, error) {
	cartName, err := sanitizeCartName(name)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, userLookupError(err, userID)
	}

	cart := &entity.Cart{
		CartID:    uuid.NewString(),
		UserID:    userID,
		CartName:  cartName,
		ItemCount: 0,
		CreatedAt: time.Now().UTC(),
		ItemIDs:   []string{},
	}
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, storageError(err, "create cart")
	}

	if err := srv.userRepo.AddCartRef(ctx, userID, cart.CartID); err != nil {
		srv.log(ctx).Warn("Cart created without user back-reference",
			slog.String("userID", userID),
			slog.String("cartID", cart.CartID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Cart created", slog.String("userID", userID), slog.String("cartID", cart.CartID))

	return cart, nil
}

// ListCarts returns the carts owned by the user.
func (srv *cartService) ListCarts(ctx context.Context, userID string) ([]*entity.Cart, error) {
	carts, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError(err, "list carts")
	}

	return carts, nil
}

// GetCartItems returns the cart's items in cart order.
func (srv *cartService) GetCartItems(ctx context.Context, userID, cartID string) ([]*entity.Item, error) {
	cart, err := srv.cartRepo.FindByID(ctx, userID, cartID)
	if err != nil {
		return nil, cartLookupError(err, cartID)
	}

	return loadCartItems(ctx, srv.itemRepo, srv.log(ctx), cart)
}

// RenameCart changes the cart name and returns the renamed cart.
func (srv *cartService) RenameCart(ctx context.Context, userID, cartID, name string) (*entity.Cart, error) {
	cartName, err := sanitizeCartName(name)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Rename(ctx, userID, cartID, cartName); err != nil {
		return nil, cartLookupError(err, cartID)
	}

	cart, err := srv.cartRepo.FindByID(ctx, userID, cartID)
	if err != nil {
		return nil, cartLookupError(err, cartID)
	}

	return cart, nil
}

// DeleteCart deletes the cart, then removes it from the user and from each of its items.
// Items left without a cart are deleted. Steps after the cart delete are best-effort.
func (srv *cartService) DeleteCart(ctx context.Context, userID, cartID string) (*entity.CleanupResult, error) {
	cart, err := srv.cartRepo.FindByID(ctx, userID, cartID)
	if err != nil {
		return nil, cartLookupError(err, cartID)
	}

	// The cart goes first so an interrupted cleanup leaves items pointing at a
	// missing cart, never a cart pointing at a missing item.
	if err := srv.cartRepo.Delete(ctx, userID, cartID); err != nil {
		return nil, cartLookupError(err, cartID)
	}

	result := &entity.CleanupResult{}
	var errs error

	if err := srv.userRepo.RemoveCartRef(ctx, userID, cartID); err != nil {
		result.RecordFailure()
		errs = errors.Append(errs, errors.Wrap(err, "remove cart from user"))
	} else {
		result.RecordSuccess()
	}

	errs = errors.Append(errs, srv.cleaner.detachAll(ctx, userID, cartID, cart.ItemIDs, result))

	if errs != nil {
		srv.log(ctx).Warn("Cart deleted with incomplete cleanup",
			slog.String("userID", userID),
			slog.String("cartID", cartID),
			slog.Int("failed", result.Failed),
			slog.Any("error", errs),
		)
	}

	srv.log(ctx).Info("Cart deleted",
		slog.String("userID", userID),
		slog.String("cartID", cartID),
		slog.Int("items", len(cart.ItemIDs)),
		slog.Int("orphansDeleted", result.OrphansDeleted),
	)

	return result, nil
}

// loadCartItems fetches the cart's items in one read. Items whose membership
// no longer names the cart are dropped; they are left over from an interrupted cleanup.
func loadCartItems(ctx context.Context, itemRepo repository.ItemRepository, logger *slog.Logger, cart *entity.Cart) ([]*entity.Item, error) {
	if len(cart.ItemIDs) == 0 {
		return []*entity.Item{}, nil
	}

	items, err := itemRepo.FindByIDs(ctx, cart.UserID, cart.ItemIDs)
	if err != nil {
		return nil, storageError(err, "find cart items")
	}

	out := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if !item.InCart(cart.CartID) {
			logger.Debug("Skipping stale cart reference",
				slog.String("cartID", cart.CartID),
				slog.String("itemID", item.ItemID),
			)

			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// sanitizeCartName limits the raw trimmed name, then strips markup and escapes it.
func sanitizeCartName(name string) (string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > entity.CartNameMaxLength {
		return "", validationError("cart name must be 100 characters or less")
	}

	cleaned := util.SanitizeText(name, entity.CartNameMaxLength)
	if cleaned == "" {
		return "", validationError("cart name is required")
	}

	return cleaned, nil
}
