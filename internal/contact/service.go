// Package contact validates contact/quote form submissions and hands them
// to the notification dispatcher.
package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ryzadigital/igripps/internal/mailer"
)

// Submission is one inbound contact form payload. Subject, Phone, and Club
// are optional; everything else is required.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Subject string `json:"subject,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Club    string `json:"club,omitempty"`
}

// ValidationError is a user-correctable rejection, surfaced verbatim.
type ValidationError struct {
	Code    string
	Message string
	Details string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMissingFields = &ValidationError{
		Code:    "missing_fields",
		Message: "Missing required fields",
		Details: "Name, email, and message are required",
	}
	ErrInvalidEmail = &ValidationError{
		Code:    "invalid_email",
		Message: "Invalid email format",
		Details: "Please provide a valid email address",
	}
	ErrMessageTooShort = &ValidationError{
		Code:    "message_too_short",
		Message: "Message too short",
		Details: "Message must be at least 10 characters long",
	}
)

// MinMessageLen is the minimum accepted message length in characters.
const MinMessageLen = 10

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Dispatcher sends the notification pair for a validated submission.
type Dispatcher interface {
	DispatchContact(ctx context.Context, sub mailer.ContactSubmission) (string, error)
}

type Service struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewService(dispatcher Dispatcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		dispatcher: dispatcher,
		logger:     logger.With("component", "contact_service"),
	}
}

// Submit validates sub and dispatches its notifications, returning the
// dispatcher's correlation ID. Validation runs in a fixed order and stops
// at the first failure.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	if err := Validate(sub); err != nil {
		return "", err
	}

	id, err := s.dispatcher.DispatchContact(ctx, mailer.ContactSubmission{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
		Subject: sub.Subject,
		Phone:   sub.Phone,
		Club:    sub.Club,
	})
	if err != nil {
		s.logger.Error("contact dispatch failed",
			"error", err,
			"kind", mailer.Classify(err).String(),
			"from", sub.Email,
		)
		return "", err
	}

	s.logger.Info("contact submission dispatched", "message_id", id, "from", sub.Email)
	return id, nil
}

// Validate applies the submission rules: required fields, email shape,
// then minimum message length.
func Validate(sub Submission) error {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Email) == "" ||
		strings.TrimSpace(sub.Message) == "" {
		return ErrMissingFields
	}
	if !emailShape.MatchString(sub.Email) {
		return ErrInvalidEmail
	}
	if len([]rune(sub.Message)) < MinMessageLen {
		return ErrMessageTooShort
	}
	return nil
}

// AsValidationError unwraps a user-correctable rejection.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// UserFacingDispatchError maps a dispatch failure to a coarse message that
// leaks no provider detail.
func UserFacingDispatchError(err error) string {
	switch mailer.Classify(err) {
	case mailer.KindConfig:
		return "Email service configuration error"
	case mailer.KindAuth:
		return "Email authentication error"
	case mailer.KindBadCredentials:
		return "Email service credentials error"
	case mailer.KindPermission:
		return "Email service permission error"
	default:
		return "Failed to send email. Please try again later."
	}
}
