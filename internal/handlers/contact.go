package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ryzadigital/igripps/internal/contact"
)

// SubmitContact accepts a contact/quote form payload, dispatches the
// notification pair, and returns the correlation ID.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		logger.Warn("malformed contact payload", "error", err)
		h.writeJSON(w, r, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
			"details": "Expected a JSON object",
		})
		return
	}

	messageID, err := h.contactService.Submit(ctx, sub)
	if err != nil {
		if vErr, ok := contact.AsValidationError(err); ok {
			h.writeJSON(w, r, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   vErr.Message,
				"details": vErr.Details,
			})
			return
		}

		resp := map[string]any{
			"success": false,
			"error":   contact.UserFacingDispatchError(err),
		}
		// Raw dispatch detail is development-only.
		if h.config.Development() {
			resp["details"] = err.Error()
		}
		h.writeJSON(w, r, http.StatusInternalServerError, resp)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"messageId": messageID,
		"message":   "Your message has been sent successfully!",
	})
}

// ContactStatus is the companion read endpoint for the contact API.
func (h *Handlers) ContactStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":    "Contact API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
