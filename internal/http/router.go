package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/http/appointment"
	"github.com/carteira-app/carteira/internal/http/bill"
	"github.com/carteira-app/carteira/internal/http/billing"
	"github.com/carteira-app/carteira/internal/http/calendar"
	"github.com/carteira-app/carteira/internal/http/dashboard"
	"github.com/carteira-app/carteira/internal/http/export"
	"github.com/carteira-app/carteira/internal/http/goal"
	"github.com/carteira-app/carteira/internal/http/importcsv"
	"github.com/carteira-app/carteira/internal/http/matching"
	"github.com/carteira-app/carteira/internal/http/profile"
	"github.com/carteira-app/carteira/internal/http/space"
	"github.com/carteira-app/carteira/internal/http/transaction"
)

func New(
	verifier *auth.Verifier,
	allowedOrigins []string,
	spacesV1 *space.Handler,
	profileV1 *profile.Handler,
	transactionsV1 *transaction.Handler,
	billsV1 *bill.Handler,
	goalsV1 *goal.Handler,
	appointmentsV1 *appointment.Handler,
	calendarV1 *calendar.Handler,
	dashboardV1 *dashboard.Handler,
	billingV1 *billing.Handler,
	importV1 *importcsv.Handler,
	matchingV1 *matching.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(verifier.Middleware)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/spaces", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			spacesV1.Routes(r)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			profileV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/bills", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			billsV1.Routes(r)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			appointmentsV1.Routes(r)
		})

		r.Route("/calendar", calendarV1.Routes)

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/billing", func(r chi.Router) {
			billingV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/matching", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			matchingV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
