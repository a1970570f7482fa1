package mailer

import (
	"context"

	resend "github.com/resend/resend-go/v3"
)

// ResendProvider sends through the Resend API using its official SDK.
type ResendProvider struct {
	from   string
	client *resend.Client
}

func NewResendProvider(apiKey, from string) *ResendProvider {
	return &ResendProvider{
		from:   from,
		client: resend.NewClient(apiKey),
	}
}

func (r *ResendProvider) Send(ctx context.Context, email *Email) (string, error) {
	if email == nil {
		return "", sendErrorf(KindProvider, "email is required")
	}
	if r.client == nil {
		return "", sendErrorf(KindConfig, "resend client not configured")
	}
	if email.Text == "" {
		return "", sendErrorf(KindProvider, "email body is empty")
	}

	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Text,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}
	if email.BCC != "" {
		params.Bcc = []string{email.BCC}
	}

	sent, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", sendErrorf(KindProvider, "failed to send email via resend: %w", err)
	}
	return sent.Id, nil
}

func (r *ResendProvider) ValidateAPIKey(ctx context.Context) error {
	if r.client == nil {
		return sendErrorf(KindConfig, "resend client not configured")
	}
	if _, err := r.client.ApiKeys.ListWithContext(ctx); err != nil {
		return sendErrorf(KindAuth, "invalid API key: %w", err)
	}
	return nil
}
