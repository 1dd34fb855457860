package middleware

import (
	"log/slog"
	"strings"

	"buyhive/internal/delivery/api/response"
	deliverycontext "buyhive/internal/delivery/context"
	"buyhive/internal/domain/constants"
	"buyhive/internal/domain/service"
	"buyhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	UserUC   usecase.UserUsecase
	Logger   *slog.Logger
}

// AuthMiddleware verifies bearer tokens and makes sure the caller has a user document.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token, upserts the user behind it and
// stores the user id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.userUC.EnsureUser(ctx, identity)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(constants.ContextKeyUserID, user.UserID)
		c.Set(constants.ContextKeyIdentity, identity)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.UserID))
		ctx = deliverycontext.WithUserID(ctx, user.UserID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user id set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(string)

	return userID, ok && userID != ""
}

// GetIdentity returns the verified identity set by Authenticate.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(constants.ContextKeyIdentity).(*service.Identity)

	return identity, ok
}
