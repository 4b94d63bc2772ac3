package utils

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// ErrMailerDisabled is returned when no SendGrid key is configured.
var ErrMailerDisabled = errors.New("mailer is not configured")

// Attachment is a file sent along with an email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Email is a single outgoing message.
type Email struct {
	ToName      string
	ToEmail     string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// SendGridMailer delivers email through SendGrid.
type SendGridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
	logger   *zap.Logger
}

// NewSendGridMailer returns a mailer. With an empty API key every Send
// returns ErrMailerDisabled.
func NewSendGridMailer(apiKey, fromName, fromAddr string, logger *zap.Logger) *SendGridMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &SendGridMailer{fromName: fromName, fromAddr: fromAddr, logger: logger}
	if apiKey != "" {
		m.client = sendgrid.NewSendClient(apiKey)
	}
	return m
}

// Send sends an email using SendGrid
func (m *SendGridMailer) Send(ctx context.Context, e Email) error {
	if m.client == nil {
		return ErrMailerDisabled
	}

	from := mail.NewEmail(m.fromName, m.fromAddr)
	to := mail.NewEmail(e.ToName, e.ToEmail)
	message := mail.NewSingleEmail(from, e.Subject, to, e.Text, e.HTML)
	for _, a := range e.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Data))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		message.AddAttachment(att)
	}

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		m.logger.Error("error sending email", zap.String("to", e.ToEmail), zap.Error(err))
		return err
	}

	if response.StatusCode >= 400 {
		m.logger.Error("sendgrid API error", zap.Int("status", response.StatusCode), zap.String("body", response.Body))
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	m.logger.Info("email sent", zap.String("to", e.ToEmail), zap.Int("status", response.StatusCode))
	return nil
}
