package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "buyhive/internal/delivery/context"
	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/domain/service"
	"buyhive/internal/errors"
	"buyhive/internal/usecase"
	"buyhive/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const shareMessageMaxLength = 500

// shareService implements the ShareUsecase interface.
type shareService struct {
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	itemRepo  repository.ItemRepository
	publisher service.EventPublisher
	qrService service.QRCodeService
	logger    *slog.Logger
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	CartRepo  repository.CartRepository
	ItemRepo  repository.ItemRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	return &shareService{
		userRepo:  params.UserRepo,
		cartRepo:  params.CartRepo,
		itemRepo:  params.ItemRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// ShareCart snapshots the cart with its items and publishes the share event.
// Delivery happens in the mail worker.
func (srv *shareService) ShareCart(ctx context.Context, input *usecase.ShareCartInput) (string, error) {
	recipient, err := mail.ParseAddress(strings.TrimSpace(input.RecipientEmail))
	if err != nil {
		return "", validationError("recipient email is invalid")
	}

	sender, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return "", userLookupError(err, input.UserID)
	}

	cart, err := srv.cartRepo.FindByID(ctx, input.UserID, input.CartID)
	if err != nil {
		return "", cartLookupError(err, input.CartID)
	}

	items, err := loadCartItems(ctx, srv.itemRepo, srv.log(ctx), cart)
	if err != nil {
		return "", err
	}

	event := &service.CartSharedEvent{
		EventID:        uuid.NewString(),
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		RecipientEmail: recipient.Address,
		SenderName:     sender.Name,
		SenderEmail:    sender.Email,
		Message:        util.SanitizeText(input.Message, shareMessageMaxLength),
		Snapshot: entity.CartSnapshot{
			Cart:  cart,
			Items: items,
		},
	}

	if err := srv.publisher.PublishCartSharedEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish cart shared event",
			slog.String("cartID", cart.CartID),
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "failed to publish cart shared event")
	}

	srv.log(ctx).Info("Cart share queued",
		slog.String("eventID", event.EventID),
		slog.String("cartID", cart.CartID),
		slog.Int("items", len(items)),
	)

	return event.EventID, nil
}

// CartQRCode returns the QR code of a cart the user owns.
func (srv *shareService) CartQRCode(ctx context.Context, userID, cartID string) ([]byte, error) {
	cart, err := srv.cartRepo.FindByID(ctx, userID, cartID)
	if err != nil {
		return nil, cartLookupError(err, cartID)
	}

	png, err := srv.qrService.GenerateCartQR(cart.CartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate cart QR code")
	}

	return png, nil
}
