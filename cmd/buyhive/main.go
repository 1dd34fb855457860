package main

import (
	"context"
	"log/slog"
	"os"

	"buyhive/config"
	"buyhive/internal/delivery"
	"buyhive/internal/delivery/api"
	"buyhive/internal/delivery/api/middleware"
	"buyhive/internal/delivery/api/router/handler"
	"buyhive/internal/domain/constants"
	"buyhive/internal/domain/service"
	"buyhive/internal/infra/auth"
	"buyhive/internal/infra/auth/firebase"
	"buyhive/internal/infra/auth/google"
	logs "buyhive/internal/infra/log"
	"buyhive/internal/infra/persistence"
	"buyhive/internal/infra/pubsub"
	"buyhive/internal/infra/qrcode"
	"buyhive/internal/infra/ratelimit"
	"buyhive/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		pubsub.Module,
		ratelimit.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityVerifier,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier selects the bearer token verifier for auth.provider
func newIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Auth.Provider {
	case constants.AuthProviderJWT, "":
		verifier, err := auth.NewJWTVerifier(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience)
		if err != nil {
			return nil, err
		}

		return verifier, nil

	case constants.AuthProviderFirebase:
		var projectID, credentialsPath string
		if cfg.Firebase != nil {
			projectID = cfg.Firebase.ProjectID
			credentialsPath = cfg.Firebase.CredentialsPath
		}

		verifier, err := firebase.NewVerifier(ctx, projectID, credentialsPath, logger)
		if err != nil {
			return nil, err
		}

		return verifier, nil

	case constants.AuthProviderGoogle:
		return google.NewVerifier(cfg.Auth.Audience, logger), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCartService,
			impl.NewItemService,
			impl.NewShareService,
			impl.NewFeedbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCartHandler,
			handler.NewItemHandler,
			handler.NewShareHandler,
			handler.NewFeedbackHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
