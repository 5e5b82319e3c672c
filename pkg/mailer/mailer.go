package mailer

import (
	"context"
	"fmt"
	"log"

	"taskmanager-backend/pkg/config"
)

// Message is a plain-text email to a single recipient.
type Message struct {
	ToAddress string
	ToName    string
	Subject   string
	Text      string
}

// Sender is the interface for outbound email providers.
// Implement this interface to add new providers (SendGrid, SMTP, ...).
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ProviderType represents the outbound email provider
type ProviderType string

const (
	ProviderSendGrid ProviderType = "sendgrid"
	ProviderSMTP     ProviderType = "smtp"
	ProviderLog      ProviderType = "log"
)

// New creates a Sender based on cfg.MailProvider.
func New(cfg *config.Config) (Sender, error) {
	from := Address{Name: cfg.MailFromName, Email: cfg.MailFrom}

	switch ProviderType(cfg.MailProvider) {
	case ProviderSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is required for sendgrid provider")
		}
		return NewSendGridSender(cfg.SendGridAPIKey, from), nil

	case ProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required for smtp provider")
		}
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}, from), nil

	case ProviderLog, "":
		return LogSender{}, nil

	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}

// Address is a sender identity.
type Address struct {
	Name  string
	Email string
}

// LogSender writes messages to the process log instead of delivering them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("[Mailer] to=%s subject=%q (log provider, not delivered)", msg.ToAddress, msg.Subject)
	return nil
}
