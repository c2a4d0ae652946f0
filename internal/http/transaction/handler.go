package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/space"
	"github.com/carteira-app/carteira/internal/transaction"
	"github.com/carteira-app/carteira/internal/validation"
)

type Handler struct {
	svc    *transaction.Service
	spaces *space.Service
}

func NewHandler(svc *transaction.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/reminders", h.createReminder)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*auth.User, uuid.UUID, bool) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return nil, uuid.Nil, false
	}

	spaceID, err := h.spaces.ResolveOrCreate(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, uuid.Nil, false
	}

	return u, spaceID, true
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *validation.Error

	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createRequest struct {
	Amount      int64            `json:"amount"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Type        transaction.Type `json:"type"`
	Date        time.Time        `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u, spaceID, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		SpaceID:     spaceID,
		ProfileID:   u.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	_, spaceID, ok := h.resolve(w, r)
	if !ok {
		return
	}

	filter := transaction.Filter{
		Category: r.URL.Query().Get("category"),
	}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = transaction.Type(s)
	}

	if s := r.URL.Query().Get("start"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.Start = t
		}
	}

	if s := r.URL.Query().Get("end"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.End = t
		}
	}

	txs, err := h.svc.List(r.Context(), spaceID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRequest struct {
	Amount      *int64     `json:"amount"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.resolve(w, r); !ok {
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

	tx, err := h.svc.Update(r.Context(), id, transaction.UpdateParams{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.resolve(w, r); !ok {
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

type reminderRequest struct {
	Title  string    `json:"title"`
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
}

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	u, spaceID, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.CreateReminder(r.Context(), spaceID, u.ID, req.Title, req.Amount, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
