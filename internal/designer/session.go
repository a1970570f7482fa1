package designer

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the designer wizard phase. Only two transitions exist:
// Designing -> Quoting (submit for quote) and Quoting -> Designing (back).
type Phase string

const (
	PhaseDesigning Phase = "designing"
	PhaseQuoting   Phase = "quoting"
)

// DefaultSessionTTL bounds how long an untouched design survives in the
// store before it is discarded.
const DefaultSessionTTL = 2 * time.Hour

// Session is one visitor's design session. It lives only in the volatile
// store; there is no durable persistence of in-progress designs.
type Session struct {
	ID            string        `json:"id"`
	Phase         Phase         `json:"phase"`
	Customization Customization `json:"customization"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewSession starts a design session with defaults for the given product.
func NewSession(productID string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:            uuid.NewString(),
		Phase:         PhaseDesigning,
		Customization: NewCustomization(productID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Update applies a partial change to the customization. Rejected while the
// session is in the quoting phase.
func (s *Session) Update(ch Changes) error {
	if s.Phase != PhaseDesigning {
		return ErrInvalidTransition
	}
	if err := s.Customization.Update(ch); err != nil {
		return err
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// SubmitForQuote moves the session from Designing to Quoting.
func (s *Session) SubmitForQuote() error {
	if s.Phase != PhaseDesigning {
		return ErrInvalidTransition
	}
	s.Phase = PhaseQuoting
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// BackToDesign moves the session from Quoting back to Designing.
func (s *Session) BackToDesign() error {
	if s.Phase != PhaseQuoting {
		return ErrInvalidTransition
	}
	s.Phase = PhaseDesigning
	s.UpdatedAt = time.Now().UTC()
	return nil
}
