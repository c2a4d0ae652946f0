package appointment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/appointment"
	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/space"
	"github.com/carteira-app/carteira/internal/validation"
)

type Handler struct {
	svc    *appointment.Service
	spaces *space.Service
}

func NewHandler(svc *appointment.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
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
	case errors.Is(err, appointment.ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type appointmentResponse struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Amount    int64              `json:"amount"`
	Date      string             `json:"date"`
	Type      appointment.Type   `json:"type"`
	Status    appointment.Status `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func toResponse(a *appointment.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		Amount:    a.Amount,
		Date:      a.Date.Format(time.DateOnly),
		Type:      a.Type,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}

type createRequest struct {
	Title  string           `json:"title"`
	Amount int64            `json:"amount"`
	Type   appointment.Type `json:"type"`
	DueDay int              `json:"due_day"`
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

	a, err := h.svc.Create(r.Context(), appointment.CreateParams{
		SpaceID: spaceID,
		Title:   req.Title,
		Amount:  req.Amount,
		Type:    req.Type,
		DueDay:  req.DueDay,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start date", http.StatusBadRequest)
			return
		}

		start = t
	}

	if s := r.URL.Query().Get("end"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end date", http.StatusBadRequest)
			return
		}

		end = t
	}

	appts, err := h.svc.List(r.Context(), spaceID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]appointmentResponse, len(appts))
	for i, a := range appts {
		resp[i] = toResponse(a)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type statusRequest struct {
	Status appointment.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
