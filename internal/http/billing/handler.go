package billing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/billing"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/checkout", h.checkout)
	r.Post("/portal", h.portal)
}

type urlResponse struct {
	URL string `json:"url"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	url, err := h.svc.CheckoutURL(r.Context(), u.ID, u.Email)
	if err != nil {
		slog.Error("failed to create checkout session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(urlResponse{URL: url}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) portal(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	url, err := h.svc.PortalURL(r.Context(), u.ID, u.Email)
	if err != nil {
		slog.Error("failed to create portal session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(urlResponse{URL: url}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
