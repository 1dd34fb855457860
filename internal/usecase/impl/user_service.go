package impl

import (
	"context"
	"log/slog"
	"strings"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/repository"
	"buyhive/internal/domain/service"
	"buyhive/internal/errors"
	"buyhive/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureUser upserts the user behind a verified identity.
func (srv *userService) EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("identity has no subject"))
	}

	user, err := srv.userRepo.Upsert(ctx, &entity.UserProfile{
		UserID: identity.Subject,
		Email:  strings.TrimSpace(identity.Email),
		Name:   strings.TrimSpace(identity.Name),
	})
	if err != nil {
		return nil, storageError(err, "upsert user")
	}

	requestLogger(ctx, srv.logger).Debug("User ensured",
		slog.String("userID", user.UserID),
		slog.Int("cartCount", user.CartCount),
	)

	return user, nil
}

// GetUser returns the user document.
func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err, userID)
	}

	return user, nil
}
