// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "buyhive/internal/delivery/context"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"
)

// storageError reports an unexpected repository failure as StorageUnavailable.
func storageError(err error, op string) error {
	return domainerrors.NewStorageUnavailableError(errors.WithStack(err), op)
}

func userLookupError(err error, userID string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound.WithDetails(userID), "find user")
	}

	return storageError(err, "find user")
}

func cartLookupError(err error, cartID string) error {
	if errors.Is(err, repository.ErrCartNotFound) {
		return errors.Wrap(domainerrors.ErrCartNotFound.WithDetails(cartID), "find cart")
	}

	return storageError(err, "find cart")
}

func itemLookupError(err error, itemID string) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return errors.Wrap(domainerrors.ErrItemNotFound.WithDetails(itemID), "find item")
	}

	return storageError(err, "find item")
}

func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

// requestLogger returns the request-scoped logger if available, otherwise fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
