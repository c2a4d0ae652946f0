package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/profile"
	"github.com/carteira-app/carteira/internal/validation"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/me", h.me)
	r.Put("/me", h.updateMe)
}

type profileResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(p *profile.Profile, email string) profileResponse {
	return profileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     email,
		UpdatedAt: &p.UpdatedAt,
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	p, err := h.svc.Get(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p, u.Email)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRequest struct {
	FullName string `json:"full_name"`
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.UpdateName(r.Context(), u.ID, req.FullName)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p, u.Email)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
