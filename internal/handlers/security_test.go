package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/ryzadigital/igripps/internal/config"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	h := &Handlers{}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.SecurityHeaders(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Fatalf("unexpected %s: got=%q want=%q", header, got, want)
		}
	}
}

func TestSubmitRateLimiter_PerIP(t *testing.T) {
	t.Parallel()

	rl := &submitRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Every(time.Hour),
		burst:    2,
	}

	for i := 0; i < 2; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("request beyond burst should be rejected")
	}

	// A different client has its own budget.
	if !rl.allow("10.0.0.2") {
		t.Fatal("other client should not share the exhausted budget")
	}
}

func TestContactRateLimit_Response(t *testing.T) {
	t.Parallel()

	h := &Handlers{
		config: &config.Config{Environment: "production"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := h.ContactRateLimit(next)

	var last *httptest.ResponseRecorder
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "192.0.2.55:1234"
		last = httptest.NewRecorder()
		wrapped.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d after burst, got %d", http.StatusTooManyRequests, last.Code)
	}
	body := decodeBody(t, last)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
}
