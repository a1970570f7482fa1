package mailer

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"
	"github.com/google/uuid"

	"github.com/ryzadigital/igripps/internal/observability"
)

// ContactSubmission is a validated contact form payload ready for dispatch.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
	Subject string
	Phone   string
	Club    string
}

// ProviderFactory builds a configured mail provider. The dispatcher calls
// it once per dispatch so both sends share one authenticated session.
type ProviderFactory func() (Provider, error)

// Dispatcher sends the pair of notifications for a contact submission:
// the internal notification to the business mailbox, then the confirmation
// to the submitter. If the internal notification fails, the confirmation
// is not attempted.
type Dispatcher struct {
	newProvider ProviderFactory
	mailbox     string
	bcc         string
	now         func() time.Time
	logger      *slog.Logger
}

type DispatcherConfig struct {
	ProviderFactory ProviderFactory
	Mailbox         string
	BCC             string
}

func NewDispatcher(cfg DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{
		newProvider: cfg.ProviderFactory,
		mailbox:     cfg.Mailbox,
		bcc:         cfg.BCC,
		now:         time.Now,
		logger:      logger.With("component", "dispatcher"),
	}
}

// DispatchContact sends both notifications and returns a correlation ID:
// the provider's message ID for the business notification, or a generated
// one when the provider reports none.
func (d *Dispatcher) DispatchContact(ctx context.Context, sub ContactSubmission) (string, error) {
	meter := observability.MeterFromContext(ctx)
	meter.Count("contact.dispatch.received", 1)
	recordFailed := func(stage string, err error) {
		meter.Count("contact.dispatch.failed", 1, sentry.WithAttributes(
			attribute.String("stage", stage),
			attribute.String("kind", Classify(err).String()),
		))
	}

	if d.newProvider == nil {
		err := sendErrorf(KindConfig, "mail provider factory is not configured")
		recordFailed("provider", err)
		return "", err
	}

	provider, err := d.newProvider()
	if err != nil {
		recordFailed("provider", err)
		return "", err
	}

	ts := d.now()

	messageID, err := provider.Send(ctx, &Email{
		To:      d.mailbox,
		ReplyTo: sub.Email,
		BCC:     d.bcc,
		Subject: businessSubject(sub),
		Text:    businessBody(sub, ts),
	})
	if err != nil {
		recordFailed("business", err)
		return "", err
	}
	if messageID == "" {
		messageID = uuid.NewString()
	}

	d.logger.Info("business notification sent", "message_id", messageID, "mailbox", d.mailbox)

	if _, err := provider.Send(ctx, &Email{
		To:      sub.Email,
		Subject: confirmationSubject(sub),
		Text:    confirmationBody(sub, ts),
	}); err != nil {
		// Business already notified; the submitter just misses the
		// confirmation. Surfaced to the caller as a dispatch failure.
		d.logger.Error("confirmation send failed after business notification", "error", err)
		recordFailed("confirmation", err)
		return "", err
	}

	d.logger.Info("confirmation sent", "to", sub.Email)
	meter.Count("contact.dispatch.sent", 1)
	return messageID, nil
}
