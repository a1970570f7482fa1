package mailer

import (
	"errors"
	"fmt"
)

// ErrorKind tags a send failure so callers can branch without inspecting
// provider error text.
type ErrorKind int

const (
	// KindProvider is any provider-side failure not covered below.
	KindProvider ErrorKind = iota
	// KindConfig means the mail integration is misconfigured (missing key,
	// unknown provider).
	KindConfig
	// KindAuth means the provider rejected the credentials.
	KindAuth
	// KindBadCredentials means the credentials are malformed rather than
	// merely rejected.
	KindBadCredentials
	// KindPermission means the authenticated identity may not send as the
	// configured mailbox.
	KindPermission
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAuth:
		return "auth"
	case KindBadCredentials:
		return "bad_credentials"
	case KindPermission:
		return "permission"
	default:
		return "provider"
	}
}

// SendError wraps a mail failure with its classification.
type SendError struct {
	Kind ErrorKind
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail send failed (%s): %v", e.Kind, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func sendErrorf(kind ErrorKind, format string, args ...any) *SendError {
	return &SendError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Classify returns the kind of a send failure, KindProvider for anything
// that is not a SendError.
func Classify(err error) ErrorKind {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Kind
	}
	return KindProvider
}

func kindFromStatus(status int) ErrorKind {
	switch status {
	case 401:
		return KindAuth
	case 403:
		return KindPermission
	case 422:
		return KindBadCredentials
	default:
		return KindProvider
	}
}
