package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers messages through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
	from   Address
}

func NewSendGridSender(apiKey string, from Address) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	email := mail.NewSingleEmail(
		mail.NewEmail(s.from.Name, s.from.Email),
		msg.Subject,
		mail.NewEmail(msg.ToName, msg.ToAddress),
		msg.Text,
		"",
	)

	resp, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}

	log.Printf("[Mailer] SendGrid accepted message to %s (status %d)", msg.ToAddress, resp.StatusCode)
	return nil
}
