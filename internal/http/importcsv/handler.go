package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/importer"
	"github.com/carteira-app/carteira/internal/space"
	"github.com/carteira-app/carteira/internal/transaction"
	"github.com/carteira-app/carteira/internal/validation"
)

const maxUploadSize = 5 << 20 // 5 MiB

type Handler struct {
	svc          *importer.Service
	transactions *transaction.Service
	spaces       *space.Service
}

func NewHandler(svc *importer.Service, transactions *transaction.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, transactions: transactions, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// importStatement accepts a multipart upload with a "file" part and a "bank"
// field, parses the statement and records every row on the ledger. Rows the
// ledger rejects are counted as skipped rather than failing the upload.
func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	bank := importer.Bank(r.FormValue("bank"))
	if bank == "" {
		http.Error(w, "missing bank", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.svc.Import(r.Context(), bank, file)
	if err != nil {
		slog.Error("failed to parse statement", "bank", bank, "error", err)
		http.Error(w, "could not parse statement", http.StatusBadRequest)
		return
	}

	resp := importResponse{}

	for _, row := range rows {
		row.SpaceID = spaceID
		row.ProfileID = u.ID

		if _, err := h.transactions.Create(r.Context(), row); err != nil {
			var vErr *validation.Error
			if errors.As(err, &vErr) {
				resp.Skipped++
				continue
			}

			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp.Imported++
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
