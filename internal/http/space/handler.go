package space

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/space"
)

type Handler struct {
	svc *space.Service
}

func NewHandler(svc *space.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/current", h.current)
	r.Post("/join", h.join)
}

type spaceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerID    string `json:"owner_id"`
	InviteCode string `json:"invite_code"`
}

func toResponse(sp *space.Space) spaceResponse {
	return spaceResponse{
		ID:         sp.ID.String(),
		Name:       sp.Name,
		OwnerID:    sp.OwnerID.String(),
		InviteCode: sp.InviteCode,
	}
}

// current resolves the caller's space, creating a personal one on first
// access.
func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	spaceID, err := h.svc.ResolveOrCreate(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sp, err := h.svc.Get(r.Context(), spaceID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(sp)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type joinRequest struct {
	Code string `json:"code"`
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	result, err := h.svc.JoinByCode(r.Context(), req.Code, u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
