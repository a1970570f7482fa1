package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ryzadigital/igripps/internal/config"
	"github.com/ryzadigital/igripps/internal/handlers"
)

type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	handlers   *handlers.Handlers
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger, h *handlers.Handlers) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if h == nil {
		return nil, fmt.Errorf("handlers are required")
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		handlers: h,
	}

	router := s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s, nil
}

func (s *Server) Run() error {
	s.logger.Info("server starting", "port", s.cfg.Port)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Close(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return nil
	}

	s.logger.Info("server shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) buildRouter() *mux.Router {
	h := s.handlers

	r := mux.NewRouter()
	r.Use(h.RequestLogger)
	r.Use(h.SecurityHeaders)
	r.HandleFunc("/health", h.Health).Methods("GET").Name("health")

	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/contact", h.ContactRateLimit(http.HandlerFunc(h.SubmitContact))).Methods("POST").Name("contact.submit")
	api.HandleFunc("/contact", h.ContactStatus).Methods("GET").Name("contact.status")

	api.HandleFunc("/products", h.ListProducts).Methods("GET").Name("products.list")
	api.HandleFunc("/products/{slug}", h.GetProduct).Methods("GET").Name("products.get")
	api.HandleFunc("/partners", h.ListPartners).Methods("GET").Name("partners.list")
	api.HandleFunc("/partners/{slug}", h.GetPartner).Methods("GET").Name("partners.get")
	api.HandleFunc("/gallery", h.HomepageGallery).Methods("GET").Name("gallery")

	designer := api.PathPrefix("/designer").Subrouter()
	designer.HandleFunc("/palette", h.Palette).Methods("GET").Name("designer.palette")
	designer.HandleFunc("/sizes", h.SizeBands).Methods("GET").Name("designer.sizes")
	designer.HandleFunc("/sessions", h.CreateDesignSession).Methods("POST").Name("designer.sessions.create")
	designer.HandleFunc("/sessions/{id}", h.GetDesignSession).Methods("GET").Name("designer.sessions.get")
	designer.HandleFunc("/sessions/{id}", h.UpdateDesignSession).Methods("PATCH").Name("designer.sessions.update")
	designer.HandleFunc("/sessions/{id}/quote", h.SubmitDesignForQuote).Methods("POST").Name("designer.sessions.quote")
	designer.HandleFunc("/sessions/{id}/back", h.BackToDesign).Methods("POST").Name("designer.sessions.back")

	// 404 handler - must be last
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)

	return r
}
