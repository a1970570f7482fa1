package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/ryzadigital/igripps/internal/config"
	"github.com/ryzadigital/igripps/internal/designer"
)

func newDesignerHandlers(t *testing.T) *Handlers {
	t.Helper()

	store, err := designer.NewMemoryStore()
	if err != nil {
		t.Fatalf("failed to create memory store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return &Handlers{
		config:      &config.Config{Environment: "production"},
		designStore: store,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func createSession(t *testing.T, h *Handlers) map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/designer/sessions", strings.NewReader(`{"productId":"classic-grip"}`))
	rec := httptest.NewRecorder()

	h.CreateDesignSession(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusCreated)
	}
	return decodeBody(t, rec)
}

func sessionID(t *testing.T, body map[string]any) string {
	t.Helper()

	session, ok := body["session"].(map[string]any)
	if !ok {
		t.Fatalf("response has no session object: %v", body)
	}
	id, ok := session["id"].(string)
	if !ok || id == "" {
		t.Fatalf("session has no id: %v", session)
	}
	return id
}

func TestCreateDesignSession_Defaults(t *testing.T) {
	t.Parallel()

	h := newDesignerHandlers(t)
	body := createSession(t, h)

	session := body["session"].(map[string]any)
	if session["phase"] != "designing" {
		t.Fatalf("unexpected phase: got=%v", session["phase"])
	}

	custom := session["customization"].(map[string]any)
	if custom["productId"] != "classic-grip" {
		t.Fatalf("unexpected productId: got=%v", custom["productId"])
	}
	if custom["sockColor"] != designer.DefaultSockColor {
		t.Fatalf("unexpected default sock color: got=%v", custom["sockColor"])
	}
	if custom["quantity"] != float64(20) {
		t.Fatalf("unexpected default quantity: got=%v", custom["quantity"])
	}

	estimate, ok := body["estimate"].(map[string]any)
	if !ok {
		t.Fatalf("response has no estimate: %v", body)
	}
	// 20 pairs, grip sole on, ankle logo.
	if estimate["cents"] != float64(72000) {
		t.Fatalf("unexpected estimate: got=%v", estimate["cents"])
	}
	if estimate["formatted"] != "$720.00" {
		t.Fatalf("unexpected formatted estimate: got=%v", estimate["formatted"])
	}
}

func TestGetDesignSession_NotFound(t *testing.T) {
	t.Parallel()

	h := newDesignerHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/designer/sessions/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()

	h.GetDesignSession(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateDesignSession(t *testing.T) {
	t.Parallel()

	h := newDesignerHandlers(t)
	id := sessionID(t, createSession(t, h))

	payload := `{"clubName":"the tigers","logoPosition":"both","quantity":30,"hasGripSole":true}`
	req := httptest.NewRequest(http.MethodPatch, "/api/designer/sessions/"+id, strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.UpdateDesignSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	custom := body["session"].(map[string]any)["customization"].(map[string]any)
	if custom["clubName"] != "THE TIGERS" {
		t.Fatalf("club name not normalized: got=%v", custom["clubName"])
	}
	// 30 pairs, grip sole, logo both: (2500+800+500)*30.
	estimate := body["estimate"].(map[string]any)
	if estimate["cents"] != float64(114000) {
		t.Fatalf("unexpected estimate: got=%v", estimate["cents"])
	}
}

func TestUpdateDesignSession_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "unknown color", payload: `{"sockColor":"PMS Nope C"}`, wantStatus: http.StatusBadRequest},
		{name: "bad quantity", payload: `{"quantity":0}`, wantStatus: http.StatusBadRequest},
		{name: "bad size", payload: `{"size":"gigantic"}`, wantStatus: http.StatusBadRequest},
		{name: "bad logo position", payload: `{"logoPosition":"forehead"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", payload: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newDesignerHandlers(t)
			id := sessionID(t, createSession(t, h))

			req := httptest.NewRequest(http.MethodPatch, "/api/designer/sessions/"+id, strings.NewReader(tc.payload))
			req = mux.SetURLVars(req, map[string]string{"id": id})
			rec := httptest.NewRecorder()

			h.UpdateDesignSession(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestDesignSessionQuoteFlow(t *testing.T) {
	t.Parallel()

	h := newDesignerHandlers(t)
	id := sessionID(t, createSession(t, h))

	quote := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/designer/sessions/"+id+"/quote", nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		h.SubmitDesignForQuote(rec, req)
		return rec
	}

	rec := quote()
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if phase := decodeBody(t, rec)["session"].(map[string]any)["phase"]; phase != "quoting" {
		t.Fatalf("unexpected phase after quote: got=%v", phase)
	}

	// Edits are frozen while quoting.
	req := httptest.NewRequest(http.MethodPatch, "/api/designer/sessions/"+id, strings.NewReader(`{"quantity":50}`))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	editRec := httptest.NewRecorder()
	h.UpdateDesignSession(editRec, req)
	if editRec.Code != http.StatusConflict {
		t.Fatalf("unexpected status for edit while quoting: got=%d want=%d", editRec.Code, http.StatusConflict)
	}

	// A second submit is also rejected.
	if rec := quote(); rec.Code != http.StatusConflict {
		t.Fatalf("unexpected status for double quote: got=%d want=%d", rec.Code, http.StatusConflict)
	}

	// Back returns to designing and edits work again.
	backReq := httptest.NewRequest(http.MethodPost, "/api/designer/sessions/"+id+"/back", nil)
	backReq = mux.SetURLVars(backReq, map[string]string{"id": id})
	backRec := httptest.NewRecorder()
	h.BackToDesign(backRec, backReq)
	if backRec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", backRec.Code, http.StatusOK)
	}
	if phase := decodeBody(t, backRec)["session"].(map[string]any)["phase"]; phase != "designing" {
		t.Fatalf("unexpected phase after back: got=%v", phase)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/designer/sessions/"+id, strings.NewReader(`{"quantity":50}`))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	editRec = httptest.NewRecorder()
	h.UpdateDesignSession(editRec, req)
	if editRec.Code != http.StatusOK {
		t.Fatalf("unexpected status for edit after back: got=%d", editRec.Code)
	}
}

func TestPaletteEndpoint(t *testing.T) {
	t.Parallel()

	h := newDesignerHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/designer/palette", nil)
	rec := httptest.NewRecorder()

	h.Palette(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	colors, ok := body["colors"].([]any)
	if !ok || len(colors) == 0 {
		t.Fatal("expected a non-empty colors list")
	}
	defaults := body["defaults"].(map[string]any)
	if defaults["sockColor"] != designer.DefaultSockColor {
		t.Fatalf("unexpected default sock color: got=%v", defaults["sockColor"])
	}
}

func TestSizeBandsEndpoint(t *testing.T) {
	t.Parallel()

	h := newDesignerHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/designer/sizes", nil)
	rec := httptest.NewRecorder()

	h.SizeBands(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}

	var body struct {
		Sizes []designer.SizeBand `json:"sizes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Sizes) != 5 {
		t.Fatalf("unexpected size band count: got=%d want=5", len(body.Sizes))
	}
	if body.Sizes[0].Label != designer.SizeMixed {
		t.Fatalf("expected mixed first, got %q", body.Sizes[0].Label)
	}
}
