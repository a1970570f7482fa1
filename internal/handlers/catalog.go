package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.content.ListProducts(r.Context())
	h.writeJSON(w, r, http.StatusOK, map[string]any{"products": products})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	product := h.content.GetProductBySlug(r.Context(), slug)
	if product == nil {
		h.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"product": product})
}

func (h *Handlers) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners := h.content.ListPartners(r.Context())
	h.writeJSON(w, r, http.StatusOK, map[string]any{"partners": partners})
}

func (h *Handlers) GetPartner(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	partner := h.content.GetPartnerBySlug(r.Context(), slug)
	if partner == nil {
		h.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "partner not found"})
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"partner": partner})
}

func (h *Handlers) HomepageGallery(w http.ResponseWriter, r *http.Request) {
	images := h.content.HomepageGallery(r.Context())
	h.writeJSON(w, r, http.StatusOK, map[string]any{"images": images})
}
