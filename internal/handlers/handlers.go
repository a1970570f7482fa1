// Package handlers provides the HTTP handlers for the iGripps API.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ryzadigital/igripps/internal/config"
	"github.com/ryzadigital/igripps/internal/contact"
	"github.com/ryzadigital/igripps/internal/content"
	"github.com/ryzadigital/igripps/internal/designer"
	"github.com/ryzadigital/igripps/internal/logging"
)

const maxContactBodyBytes = 64 << 10 // 64 KB

type Handlers struct {
	config         *config.Config
	content        *content.Client
	contactService *contact.Service
	designStore    designer.Store
	logger         *slog.Logger
}

type Dependencies struct {
	Config         *config.Config
	Content        *content.Client
	ContactService *contact.Service
	DesignStore    designer.Store
	Logger         *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.Content == nil {
		return nil, fmt.Errorf("handlers dependencies: content client is required")
	}
	if deps.ContactService == nil {
		return nil, fmt.Errorf("handlers dependencies: contact service is required")
	}
	if deps.DesignStore == nil {
		return nil, fmt.Errorf("handlers dependencies: design store is required")
	}

	return &Handlers{
		config:         deps.Config,
		content:        deps.Content,
		contactService: deps.ContactService,
		designStore:    deps.DesignStore,
		logger:         logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

// NotFound is the JSON 404 handler for unmatched routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.loggerFromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}
