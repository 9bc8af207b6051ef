package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/bullseye-app/bullseye/internal/alertview"
	alertviewStore "github.com/bullseye-app/bullseye/internal/alertview/store"
	"github.com/bullseye-app/bullseye/internal/budget"
	budgetStore "github.com/bullseye-app/bullseye/internal/budget/store"
	"github.com/bullseye-app/bullseye/internal/category"
	categoryStore "github.com/bullseye-app/bullseye/internal/category/store"
	"github.com/bullseye-app/bullseye/internal/config"
	"github.com/bullseye-app/bullseye/internal/database"
	bullseyeHttp "github.com/bullseye-app/bullseye/internal/http"
	budgetHandler "github.com/bullseye-app/bullseye/internal/http/budget"
	categoryHandler "github.com/bullseye-app/bullseye/internal/http/category"
	importHandler "github.com/bullseye-app/bullseye/internal/http/importcsv"
	reportHandler "github.com/bullseye-app/bullseye/internal/http/report"
	txHandler "github.com/bullseye-app/bullseye/internal/http/transaction"
	"github.com/bullseye-app/bullseye/internal/importer"
	"github.com/bullseye-app/bullseye/internal/report"
	"github.com/bullseye-app/bullseye/internal/transaction"
	txStore "github.com/bullseye-app/bullseye/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	zones, err := cfg.ZoneConfig()
	if err != nil {
		slog.Error("failed to parse zone config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactionService = transaction.NewService(txStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		alertViewService   = alertview.NewService(alertviewStore.New(db))
		reportService      = report.NewService(transactionService, budgetService, categoryService, zones)
		importService      = importer.NewService(transactionService, categoryService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		reportH      = reportHandler.NewHandler(reportService, alertViewService)
		importH      = importHandler.NewHandler(importService)
	)

	router := bullseyeHttp.New(bullseyeHttp.Config{
		AuthSecret:     []byte(cfg.Auth.Secret),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, transactionH, categoryH, budgetH, reportH, importH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
