// Package mailer sends the contact-pipeline notification emails through a
// pluggable transactional-email provider.
package mailer

import (
	"context"
	"net/http"
	"strings"
)

// Email is one plain-text message. HTML bodies are deliberately not
// supported; every notification this service sends is text.
type Email struct {
	To      string
	ReplyTo string
	BCC     string
	Subject string
	Text    string
}

// Provider is a transactional-email backend. Send returns the provider's
// message ID when it reports one; implementations classify failures with
// SendError kinds rather than free-form error text.
type Provider interface {
	Send(ctx context.Context, email *Email) (string, error)
	ValidateAPIKey(ctx context.Context) error
}

type Config struct {
	Provider   string
	APIKey     string
	From       string
	Domain     string // mailgun only
	HTTPClient *http.Client
}

func NewProvider(cfg Config) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, sendErrorf(KindConfig, "mail API key is not set")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, sendErrorf(KindConfig, "mail from address is not set")
	}

	switch cfg.Provider {
	case "resend":
		return NewResendProvider(cfg.APIKey, cfg.From), nil
	case "mailgun":
		if strings.TrimSpace(cfg.Domain) == "" {
			return nil, sendErrorf(KindConfig, "mailgun domain is not set")
		}
		return NewMailgunProvider(cfg.APIKey, cfg.Domain, cfg.From, cfg.HTTPClient), nil
	case "postmark":
		return NewPostmarkProvider(cfg.APIKey, cfg.From, cfg.HTTPClient), nil
	default:
		return nil, sendErrorf(KindConfig, "EMAIL_PROVIDER must be 'resend', 'mailgun', or 'postmark'")
	}
}
