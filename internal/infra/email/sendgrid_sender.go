package email

import (
	"context"
	"log/slog"

	"buyhive/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	defaultSendGridHost = "https://api.sendgrid.com"
	sendGridMailPath    = "/v3/mail/send"
)

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
	logger    *slog.Logger
}

// NewSendGridSender creates a SendGridSender
func NewSendGridSender(apiKey, fromEmail, fromName string, logger *slog.Logger) (*SendGridSender, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is empty")
	}
	if fromEmail == "" {
		return nil, errors.New("from address is empty")
	}

	return &SendGridSender{
		apiKey:    apiKey,
		host:      defaultSendGridHost,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}, nil
}

// Send implements service.EmailSender
func (s *SendGridSender) Send(ctx context.Context, message *service.EmailMessage) error {
	if message.ToEmail == "" {
		return errors.New("to address is empty")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(message.ToName, message.ToEmail)
	payload := mail.NewSingleEmail(from, message.Subject, to, message.TextBody, message.HTMLBody)

	request := sendgrid.GetRequest(s.apiKey, sendGridMailPath, s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(payload)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return errors.Wrap(err, "sendgrid send error")
	}
	if response.StatusCode >= 400 {
		s.logger.Error("[SendGrid] Send failed",
			slog.Int("status", response.StatusCode),
			slog.String("body", response.Body),
		)

		return errors.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	s.logger.Info("[SendGrid] Mail sent",
		slog.Int("status", response.StatusCode),
		slog.String("to", message.ToEmail),
		slog.String("subject", message.Subject),
	)

	return nil
}

// dryRunSender logs messages instead of delivering them
type dryRunSender struct {
	logger *slog.Logger
}

func (s *dryRunSender) Send(_ context.Context, message *service.EmailMessage) error {
	s.logger.Info("[DryRun] Email not sent",
		slog.String("to", message.ToEmail),
		slog.String("subject", message.Subject),
		slog.Int("html_bytes", len(message.HTMLBody)),
	)

	return nil
}
