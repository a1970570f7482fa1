package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ryzadigital/igripps/internal/designer"
	"github.com/ryzadigital/igripps/internal/pricing"
)

// Palette serves the Pantone palette the designer picks colors from,
// together with the defaults a fresh design starts with.
func (h *Handlers) Palette(w http.ResponseWriter, r *http.Request) {
	palette, err := designer.LoadPalette()
	if err != nil {
		h.loggerFromContext(r.Context()).Error("failed to load palette", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "palette unavailable"})
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"colors":   palette.Colors(),
		"families": palette.Families(),
		"defaults": map[string]string{
			"sockColor":     designer.DefaultSockColor,
			"clubNameColor": designer.DefaultClubNameColor,
			"gripColor":     designer.DefaultGripColor,
		},
	})
}

func (h *Handlers) SizeBands(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]any{"sizes": designer.SizeBands()})
}

// CreateDesignSession starts a design session and returns it with a running
// price estimate.
func (h *Handlers) CreateDesignSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	session := designer.NewSession(req.ProductID)
	if err := h.designStore.Put(ctx, session, designer.DefaultSessionTTL); err != nil {
		h.loggerFromContext(ctx).Error("failed to store design session", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "failed to create design session"})
		return
	}

	h.writeDesignSession(w, r, http.StatusCreated, session)
}

func (h *Handlers) GetDesignSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadDesignSession(w, r)
	if !ok {
		return
	}
	h.writeDesignSession(w, r, http.StatusOK, session)
}

// UpdateDesignSession applies a partial customization change. Changes are
// rejected while the session is in the quoting phase.
func (h *Handlers) UpdateDesignSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := h.loadDesignSession(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
	var changes designer.Changes
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		h.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := session.Update(changes); err != nil {
		h.writeDesignError(w, r, err)
		return
	}
	if err := h.designStore.Put(ctx, session, designer.DefaultSessionTTL); err != nil {
		h.loggerFromContext(ctx).Error("failed to store design session", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "failed to save design session"})
		return
	}

	h.writeDesignSession(w, r, http.StatusOK, session)
}

// SubmitDesignForQuote moves the session into the quoting phase.
func (h *Handlers) SubmitDesignForQuote(w http.ResponseWriter, r *http.Request) {
	h.transitionDesignSession(w, r, (*designer.Session).SubmitForQuote)
}

// BackToDesign returns a quoting session to the designing phase.
func (h *Handlers) BackToDesign(w http.ResponseWriter, r *http.Request) {
	h.transitionDesignSession(w, r, (*designer.Session).BackToDesign)
}

func (h *Handlers) transitionDesignSession(w http.ResponseWriter, r *http.Request, transition func(*designer.Session) error) {
	ctx := r.Context()
	session, ok := h.loadDesignSession(w, r)
	if !ok {
		return
	}

	if err := transition(session); err != nil {
		h.writeDesignError(w, r, err)
		return
	}
	if err := h.designStore.Put(ctx, session, designer.DefaultSessionTTL); err != nil {
		h.loggerFromContext(ctx).Error("failed to store design session", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "failed to save design session"})
		return
	}

	h.writeDesignSession(w, r, http.StatusOK, session)
}

func (h *Handlers) loadDesignSession(w http.ResponseWriter, r *http.Request) (*designer.Session, bool) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	session, err := h.designStore.Get(ctx, id)
	if err != nil {
		if errors.Is(err, designer.ErrSessionNotFound) {
			h.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "design session not found"})
			return nil, false
		}
		h.loggerFromContext(ctx).Error("failed to load design session", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "failed to load design session"})
		return nil, false
	}
	return session, true
}

func (h *Handlers) writeDesignSession(w http.ResponseWriter, r *http.Request, status int, session *designer.Session) {
	resp := map[string]any{"session": session}
	if cents, err := session.Customization.Estimate(); err == nil {
		resp["estimate"] = map[string]any{
			"cents":     cents,
			"formatted": pricing.FormatAUD(cents),
		}
	}
	h.writeJSON(w, r, status, resp)
}

func (h *Handlers) writeDesignError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, designer.ErrInvalidTransition):
		h.writeJSON(w, r, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, designer.ErrUnknownColor),
		errors.Is(err, designer.ErrInvalidQuantity),
		errors.Is(err, designer.ErrInvalidSize),
		errors.Is(err, pricing.ErrInvalidLogoPosition):
		h.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.loggerFromContext(r.Context()).Error("design session update failed", "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "failed to update design session"})
	}
}
