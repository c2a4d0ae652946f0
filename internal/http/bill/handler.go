package bill

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/bill"
	"github.com/carteira-app/carteira/internal/space"
	"github.com/carteira-app/carteira/internal/validation"
)

type Handler struct {
	svc    *bill.Service
	spaces *space.Service
}

func NewHandler(svc *bill.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/fixed", h.createFixed)
	r.Get("/fixed", h.listFixed)
	r.Put("/fixed/{id}", h.updateFixed)
	r.Delete("/fixed/{id}", h.archiveFixed)
	r.Get("/monthly", h.listMonthly)
	r.Patch("/monthly/{id}", h.updateMonthly)
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
	case errors.Is(err, bill.ErrNotFound):
		http.Error(w, "bill not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type fixedBillRequest struct {
	Title       string `json:"title"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	DueDay      int    `json:"due_day"`
	Description string `json:"description"`
}

func (h *Handler) createFixed(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	var req fixedBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fb, err := h.svc.CreateFixedBill(r.Context(), bill.CreateParams{
		SpaceID:     spaceID,
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		DueDay:      req.DueDay,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toFixedResponse(fb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listFixed(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	fbs, err := h.svc.ListFixedBills(r.Context(), spaceID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toFixedResponseList(fbs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) updateFixed(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req fixedBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fb, err := h.svc.UpdateFixedBill(r.Context(), id, bill.UpdateParams{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		DueDay:      req.DueDay,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toFixedResponse(fb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) archiveFixed(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Archive(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMonthly(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	start, end, err := monthWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mbs, err := h.svc.ListMonthlyBills(r.Context(), spaceID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toMonthlyResponseList(mbs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// monthWindow reads ?start and ?end (YYYY-MM-DD), defaulting to the current
// calendar month.
func monthWindow(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start date")
		}

		start = t
	}

	if s := r.URL.Query().Get("end"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end date")
		}

		end = t
	}

	return start, end, nil
}

type monthlyBillUpdateRequest struct {
	Status      *bill.Status `json:"status"`
	Amount      *int64       `json:"amount"`
	Description *string      `json:"description"`
}

func (h *Handler) updateMonthly(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSpace(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req monthlyBillUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Status != nil && *req.Status != bill.StatusPending && *req.Status != bill.StatusPaid {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	mb, err := h.svc.UpdateInstance(r.Context(), id, bill.InstanceUpdate{
		Status:      req.Status,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toMonthlyResponse(mb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
