package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/analytics"
	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/space"
)

type Handler struct {
	svc    *analytics.Service
	spaces *space.Service
}

func NewHandler(svc *analytics.Service, spaces *space.Service) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
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

type categoryTotalResponse struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

type forecastResponse struct {
	VariableSpend   int64                    `json:"variable_spend"`
	DailyBurnRate   int64                    `json:"daily_burn_rate"`
	ForecastedSpend int64                    `json:"forecasted_spend"`
	Status          analytics.ForecastStatus `json:"status,omitempty"`
}

type insightResponse struct {
	Kind    analytics.InsightKind `json:"kind"`
	Message string                `json:"message"`
}

type monthFlowResponse struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

type summaryResponse struct {
	TotalIncome      int64                   `json:"total_income"`
	TotalExpense     int64                   `json:"total_expense"`
	TotalInvested    int64                   `json:"total_invested"`
	AvailableBalance int64                   `json:"available_balance"`
	TopCategories    []categoryTotalResponse `json:"top_categories"`
	Forecast         forecastResponse        `json:"forecast"`
	Insights         []insightResponse       `json:"insights"`
	MonthlyFlow      []monthFlowResponse     `json:"monthly_flow"`
}

func toResponse(s analytics.Summary) summaryResponse {
	resp := summaryResponse{
		TotalIncome:      s.TotalIncome,
		TotalExpense:     s.TotalExpense,
		TotalInvested:    s.TotalInvested,
		AvailableBalance: s.AvailableBalance,
		TopCategories:    make([]categoryTotalResponse, len(s.TopCategories)),
		Forecast: forecastResponse{
			VariableSpend:   s.Forecast.VariableSpend,
			DailyBurnRate:   s.Forecast.DailyBurnRate,
			ForecastedSpend: s.Forecast.ForecastedSpend,
			Status:          s.Forecast.Status,
		},
		Insights:    make([]insightResponse, len(s.Insights)),
		MonthlyFlow: make([]monthFlowResponse, len(s.MonthlyFlow)),
	}

	for i, ct := range s.TopCategories {
		resp.TopCategories[i] = categoryTotalResponse{Category: ct.Category, Total: ct.Total}
	}

	for i, in := range s.Insights {
		resp.Insights[i] = insightResponse{Kind: in.Kind, Message: in.Message}
	}

	for i, mf := range s.MonthlyFlow {
		resp.MonthlyFlow[i] = monthFlowResponse{Month: mf.Month, Income: mf.Income, Expense: mf.Expense}
	}

	return resp
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.resolveSpace(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), spaceID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
