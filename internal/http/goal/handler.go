package goal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/goal"
	"github.com/carteira-app/carteira/internal/space"
	"github.com/carteira-app/carteira/internal/validation"
)

type Handler struct {
	svc    *goal.Service
	spaces *space.Service
}

func NewHandler(svc *goal.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/deposit", h.deposit)
}

func (h *Handler) resolveSpace(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return uuid.Nil, false
	}

	spaceID, err := h.spaces.ResolveOrCreate(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return uuid.Nil, false
	}

	return spaceID, true
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *validation.Error

	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, goal.ErrNotFound):
		http.Error(w, "goal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type goalResponse struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	TargetAmount  int64       `json:"target_amount"`
	CurrentAmount int64       `json:"current_amount"`
	Progress      float64     `json:"progress"`
	Icon          string      `json:"icon,omitempty"`
	Status        goal.Status `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

func toResponse(g *goal.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		Title:         g.Title,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      g.Progress(),
		Icon:          g.Icon,
		Status:        g.Status,
		CreatedAt:     g.CreatedAt,
	}
}

type createRequest struct {
	Title        string `json:"title"`
	TargetAmount int64  `json:"target_amount"`
	Icon         string `json:"icon"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.Create(r.Context(), goal.CreateParams{
		SpaceID:      spaceID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Icon:         req.Icon,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.List(r.Context(), spaceID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRequest struct {
	Title        *string      `json:"title"`
	TargetAmount *int64       `json:"target_amount"`
	Icon         *string      `json:"icon"`
	Status       *goal.Status `json:"status"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Status != nil && *req.Status != goal.StatusActive && *req.Status != goal.StatusCompleted {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	g, err := h.svc.Update(r.Context(), id, goal.UpdateParams{
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Icon:         req.Icon,
		Status:       req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type depositRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.Deposit(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
