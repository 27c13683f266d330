package mailer

import (
	"context"
	"fmt"

	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// SendGridMailer отправляет письма аккаунт-воркфлоу через SendGrid;
// реализует service.Mailer
type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	logger    *logrus.Logger
}

func NewSendGridMailer(cfg *config.Config, logger *logrus.Logger) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromName:  cfg.MailFromName,
		fromEmail: cfg.MailFromEmail,
		logger:    logger,
	}
}

// SendActivation отправляет письмо активации аккаунта
func (m *SendGridMailer) SendActivation(ctx context.Context, toEmail, toName, link string) error {
	subject := "Activate your account"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour account has been created. Follow the link below to activate it:\n\n%s\n\nIf you did not expect this email, you can ignore it.\n",
		toName, link,
	)
	return m.send(ctx, toEmail, toName, subject, body)
}

// SendPasswordReset отправляет письмо со ссылкой сброса пароля
func (m *SendGridMailer) SendPasswordReset(ctx context.Context, toEmail, toName, link string) error {
	subject := "Reset your password"
	body := fmt.Sprintf(
		"Hello %s,\n\nA password reset was requested for your account. Follow the link below to choose a new password:\n\n%s\n\nIf you did not request this, you can ignore this email.\n",
		toName, link,
	)
	return m.send(ctx, toEmail, toName, subject, body)
}

func (m *SendGridMailer) send(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	m.logger.WithFields(logrus.Fields{
		"to":      toEmail,
		"subject": subject,
	}).Info("Email sent")
	return nil
}
