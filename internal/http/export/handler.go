package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/export"
	"github.com/carteira-app/carteira/internal/space"
	"github.com/carteira-app/carteira/internal/transaction"
)

type Handler struct {
	svc    *export.Service
	spaces *space.Service
}

func NewHandler(svc *export.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	spaceID, err := h.spaces.ResolveOrCreate(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	filter := transaction.Filter{}

	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start date", http.StatusBadRequest)
			return
		}

		filter.Start = t
	}

	if s := r.URL.Query().Get("end"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end date", http.StatusBadRequest)
			return
		}

		filter.End = t
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now().UTC())))

	if err := h.svc.WriteCSV(r.Context(), w, spaceID, filter); err != nil {
		// Headers are already out, so the best we can do is log.
		slog.Error("failed to write csv export", "error", err)
	}
}
