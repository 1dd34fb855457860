package email

import (
	"log/slog"

	"buyhive/config"
	"buyhive/internal/domain/service"

	"go.uber.org/fx"
)

// SenderParams holds dependencies for the EmailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender returns the SendGrid sender, or a logging sender when
// SendGrid is not configured or dry-run is on.
func NewEmailSender(params SenderParams) (service.EmailSender, error) {
	cfg := params.Config.SendGrid
	if cfg == nil || cfg.DryRun || cfg.APIKey == "" {
		params.Logger.Warn("SendGrid not configured, emails will only be logged")

		return &dryRunSender{logger: params.Logger}, nil
	}

	return NewSendGridSender(cfg.APIKey, cfg.FromEmail, cfg.FromName, params.Logger)
}

// Module provides the email renderer and sender
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewRenderer,
			fx.As(new(service.EmailRenderer)),
		),
		NewEmailSender,
	),
)
