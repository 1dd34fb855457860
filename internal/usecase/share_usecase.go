package usecase

import (
	"context"

	"buyhive/internal/domain/service"
)

// ShareCartInput describes a request to email a cart to someone
type ShareCartInput struct {
	UserID         string
	CartID         string
	RecipientEmail string
	Message        string
}

// ShareUsecase defines cart sharing operations
type ShareUsecase interface {
	// ShareCart snapshots the cart and queues the share email. It returns the event id.
	ShareCart(ctx context.Context, input *ShareCartInput) (string, error)

	// CartQRCode returns a PNG QR code for the cart's share link
	CartQRCode(ctx context.Context, userID, cartID string) ([]byte, error)
}

// ShareDeliveryUsecase is run by the mail worker for each queued share
type ShareDeliveryUsecase interface {
	// DeliverCartShared renders and sends the share email
	DeliverCartShared(ctx context.Context, event *service.CartSharedEvent) error
}
