package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/usecase/shared"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromMail string
}

func NewSendGridMailer(apiKey, fromName, fromMail string) *SendGridMailer {
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromMail: fromMail,
	}
}

func (s *SendGridMailer) Send(ctx context.Context, e shared.Email) error {
	message := buildMessage(s.fromName, s.fromMail, e)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "sendgrid send error")
	}
	if resp.StatusCode >= 400 {
		return errs.New(fmt.Sprintf("sendgrid API error: %d %s", resp.StatusCode, resp.Body))
	}
	return nil
}

func buildMessage(fromName, fromMail string, e shared.Email) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(fromName, fromMail))
	message.Subject = e.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(e.ToName, e.ToAddress))
	message.AddPersonalizations(p)

	// text/plain must precede text/html
	if e.Text != "" {
		message.AddContent(mail.NewContent("text/plain", e.Text))
	}
	if e.HTML != "" {
		message.AddContent(mail.NewContent("text/html", e.HTML))
	}
	return message
}

// LogMailer stands in for SendGrid when no API key is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, e shared.Email) error {
	m.logger.Info("email (log mailer)", "to", e.ToAddress, "subject", e.Subject)
	return nil
}

func New(cfg config.MailConfig, logger *slog.Logger) shared.Mailer {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, emails are logged instead of sent")
		return NewLogMailer(logger)
	}
	return NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress)
}
