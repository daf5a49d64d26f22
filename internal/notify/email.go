package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender sends a plain-text email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
}

type EmailMessage struct {
	From     string
	FromName string
	To       string
	ToName   string
	Subject  string
	Body     string
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client *sendgrid.Client
}

func NewSendGridSender(apiKey string) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

var _ EmailSender = (*SendGridSender)(nil)

func (s *SendGridSender) SendEmail(ctx context.Context, msg EmailMessage) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("notify: sendgrid client not configured")
	}

	from := mail.NewEmail(msg.FromName, msg.From)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("notify: sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
