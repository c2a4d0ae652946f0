package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/carteira-app/carteira/internal/analytics"
	"github.com/carteira-app/carteira/internal/appointment"
	appointmentStore "github.com/carteira-app/carteira/internal/appointment/store"
	"github.com/carteira-app/carteira/internal/auth"
	"github.com/carteira-app/carteira/internal/bill"
	billStore "github.com/carteira-app/carteira/internal/bill/store"
	"github.com/carteira-app/carteira/internal/billing"
	"github.com/carteira-app/carteira/internal/billing/stripe"
	"github.com/carteira-app/carteira/internal/calendar"
	"github.com/carteira-app/carteira/internal/config"
	"github.com/carteira-app/carteira/internal/database"
	"github.com/carteira-app/carteira/internal/export"
	"github.com/carteira-app/carteira/internal/goal"
	goalStore "github.com/carteira-app/carteira/internal/goal/store"
	carteiraHttp "github.com/carteira-app/carteira/internal/http"
	appointmentHandler "github.com/carteira-app/carteira/internal/http/appointment"
	billHandler "github.com/carteira-app/carteira/internal/http/bill"
	billingHandler "github.com/carteira-app/carteira/internal/http/billing"
	calendarHandler "github.com/carteira-app/carteira/internal/http/calendar"
	dashboardHandler "github.com/carteira-app/carteira/internal/http/dashboard"
	exportHandler "github.com/carteira-app/carteira/internal/http/export"
	goalHandler "github.com/carteira-app/carteira/internal/http/goal"
	importHandler "github.com/carteira-app/carteira/internal/http/importcsv"
	matchingHandler "github.com/carteira-app/carteira/internal/http/matching"
	profileHandler "github.com/carteira-app/carteira/internal/http/profile"
	spaceHandler "github.com/carteira-app/carteira/internal/http/space"
	txHandler "github.com/carteira-app/carteira/internal/http/transaction"
	"github.com/carteira-app/carteira/internal/importer"
	"github.com/carteira-app/carteira/internal/matching"
	matchingStore "github.com/carteira-app/carteira/internal/matching/store"
	"github.com/carteira-app/carteira/internal/profile"
	profileStore "github.com/carteira-app/carteira/internal/profile/store"
	"github.com/carteira-app/carteira/internal/space"
	spaceStore "github.com/carteira-app/carteira/internal/space/store"
	"github.com/carteira-app/carteira/internal/transaction"
	txStore "github.com/carteira-app/carteira/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		spaceService       = space.NewService(spaceStore.New(db))
		profileService     = profile.NewService(profileStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		billService        = bill.NewService(billStore.New(db))
		goalService        = goal.NewService(goalStore.New(db))
		appointmentService = appointment.NewService(appointmentStore.New(db))
		calendarService    = calendar.NewService(billService, transactionService, appointmentService)
		analyticsService   = analytics.NewService(transactionService, goalService)
		matchingService    = matching.NewService(matchingStore.New(db))
		importService      = importer.NewService(matchingService)
		exportService      = export.NewService(transactionService)
		billingService     = billing.NewService(stripe.NewClient(stripe.Config{
			SecretKey:       cfg.Stripe.SecretKey,
			PriceID:         cfg.Stripe.PriceID,
			SuccessURL:      cfg.Stripe.SuccessURL,
			CancelURL:       cfg.Stripe.CancelURL,
			PortalReturnURL: cfg.Stripe.PortalReturnURL,
		}), profileService)
	)

	var (
		spaceH       = spaceHandler.NewHandler(spaceService)
		profileH     = profileHandler.NewHandler(profileService)
		transactionH = txHandler.NewHandler(transactionService, spaceService)
		billH        = billHandler.NewHandler(billService, spaceService)
		goalH        = goalHandler.NewHandler(goalService, spaceService)
		appointmentH = appointmentHandler.NewHandler(appointmentService, spaceService)
		calendarH    = calendarHandler.NewHandler(calendarService, spaceService)
		dashboardH   = dashboardHandler.NewHandler(analyticsService, spaceService)
		billingH     = billingHandler.NewHandler(billingService)
		importH      = importHandler.NewHandler(importService, transactionService, spaceService)
		matchingH    = matchingHandler.NewHandler(matchingService)
		exportH      = exportHandler.NewHandler(exportService, spaceService)
	)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	router := carteiraHttp.New(
		verifier,
		cfg.CORS.AllowedOrigins,
		spaceH,
		profileH,
		transactionH,
		billH,
		goalH,
		appointmentH,
		calendarH,
		dashboardH,
		billingH,
		importH,
		matchingH,
		exportH,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
