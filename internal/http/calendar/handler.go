package calendar

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/calendar"
	"github.com/carteira-app/carteira/internal/space"
)

type Handler struct {
	svc    *calendar.Service
	spaces *space.Service
}

func NewHandler(svc *calendar.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/events", h.listEvents)
	r.Get("/events/by-day", h.eventsByDay)
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

type eventResponse struct {
	ID       uuid.UUID       `json:"id"`
	Source   calendar.Source `json:"source"`
	Title    string          `json:"title"`
	Amount   int64           `json:"amount"`
	Date     time.Time       `json:"date"`
	Day      string          `json:"day"`
	Type     string          `json:"type"`
	Category string          `json:"category,omitempty"`
	IsPaid   bool            `json:"is_paid"`
}

func toResponse(e calendar.Event) eventResponse {
	return eventResponse{
		ID:       e.ID,
		Source:   e.Source,
		Title:    e.Title,
		Amount:   e.Amount,
		Date:     e.Date,
		Day:      e.Day(),
		Type:     e.Type,
		Category: e.Category,
		IsPaid:   e.IsPaid,
	}
}

// window reads ?start and ?end, defaulting to the current calendar month.
func window(r *http.Request) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}

		start = t
	}

	if s := r.URL.Query().Get("end"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}

		end = t
	}

	return start, end, true
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	start, end, ok := window(r)
	if !ok {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	events, err := h.svc.ListEvents(r.Context(), spaceID, start, end)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]eventResponse, len(events))
	for i, e := range events {
		resp[i] = toResponse(e)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) eventsByDay(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	start, end, ok := window(r)
	if !ok {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	byDay, err := h.svc.EventsByDay(r.Context(), spaceID, start, end)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make(map[string][]eventResponse, len(byDay))
	for day, events := range byDay {
		list := make([]eventResponse, len(events))
		for i, e := range events {
			list[i] = toResponse(e)
		}

		resp[day] = list
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
