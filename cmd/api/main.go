package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rudrap/splitmate/docs"
	"github.com/rudrap/splitmate/internal/bill"
	"github.com/rudrap/splitmate/internal/config"
	"github.com/rudrap/splitmate/internal/friend"
	"github.com/rudrap/splitmate/internal/ledger"
	"github.com/rudrap/splitmate/internal/settlement"
	"github.com/rudrap/splitmate/internal/summary"
	"github.com/rudrap/splitmate/pkg/logging"
	mw "github.com/rudrap/splitmate/pkg/middleware"
)

// @title           Splitmate API
// @version         1.0
// @description     Expense-splitting ledger: track shared bills, running balances, and minimal settlement suggestions.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	logging.Setup()
	cfg := config.Load()

	// The ledger is the single owner of all balance state; every mutation
	// funnels through it.
	balances := ledger.New()

	// Friend feature
	friendRepo := friend.NewRepository()

	// Bill feature (friend repo injected as the party directory)
	billRepo := bill.NewRepository()
	billService := bill.NewService(billRepo, balances, friendRepo)
	billHandler := bill.NewHandler(billService)

	friendService := friend.NewService(friendRepo, balances, billRepo)
	friendHandler := friend.NewHandler(friendService)

	// Settlement feature
	settlementService := settlement.NewService(friendRepo, balances, cfg.Currency)
	settlementHandler := settlement.NewHandler(settlementService)

	// Summary feature
	summaryService := summary.NewService(friendRepo, billRepo, balances)
	summaryHandler := summary.NewHandler(summaryService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/friends", friendHandler.Routes())
		r.Mount("/bills", billHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/summary", summaryHandler.Routes())
	})

	addr := ":" + cfg.Port
	slog.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
