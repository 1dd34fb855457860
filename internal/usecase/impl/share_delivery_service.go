package impl

import (
	"context"
	"log/slog"

	"buyhive/internal/domain/service"
	"buyhive/internal/errors"
	"buyhive/internal/usecase"
)

// shareDeliveryService implements the ShareDeliveryUsecase interface.
type shareDeliveryService struct {
	renderer service.EmailRenderer
	sender   service.EmailSender
	logger   *slog.Logger
}

// NewShareDeliveryService is the constructor for shareDeliveryService.
func NewShareDeliveryService(renderer service.EmailRenderer, sender service.EmailSender, logger *slog.Logger) usecase.ShareDeliveryUsecase {
	return &shareDeliveryService{
		renderer: renderer,
		sender:   sender,
		logger:   logger,
	}
}

// DeliverCartShared renders the share email and hands it to the sender.
// Events that cannot be rendered fail validation and are not worth retrying.
func (srv *shareDeliveryService) DeliverCartShared(ctx context.Context, event *service.CartSharedEvent) error {
	if event.RecipientEmail == "" {
		return validationError("recipient email is missing")
	}

	message, err := srv.renderer.RenderCartShared(event)
	if err != nil {
		return errors.Wrap(validationError(err.Error()), "render share email")
	}

	if err := srv.sender.Send(ctx, message); err != nil {
		return errors.Wrap(err, "send share email")
	}

	requestLogger(ctx, srv.logger).Info("Share email delivered",
		slog.String("eventID", event.EventID),
		slog.String("to", event.RecipientEmail),
	)

	return nil
}
