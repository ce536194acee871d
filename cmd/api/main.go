package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	billingStore "github.com/MrJamesThe3rd/rentroll/internal/billing/store"
	"github.com/MrJamesThe3rd/rentroll/internal/config"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/export"
	rentrollHttp "github.com/MrJamesThe3rd/rentroll/internal/http"
	billingHandler "github.com/MrJamesThe3rd/rentroll/internal/http/billing"
	exportHandler "github.com/MrJamesThe3rd/rentroll/internal/http/export"
	ownershipHandler "github.com/MrJamesThe3rd/rentroll/internal/http/ownership"
	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
	ownershipStore "github.com/MrJamesThe3rd/rentroll/internal/ownership/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	clock, err := cfg.Clock()
	if err != nil {
		slog.Error("failed to load billing timezone", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		billingService = billing.NewService(billingStore.New(db),
			billing.WithClock(clock),
			billing.WithExpiringSoonWindow(cfg.Billing.ExpiringSoonWindow),
		)
		ownershipService = ownership.NewService(ownershipStore.New(db))
		exportService    = export.NewService(billingService)
	)

	go billing.NewRefresher(billingService, cfg.Billing.StatusRefreshInterval).Run(ctx)

	router := rentrollHttp.New(
		cfg.CORS.AllowedOrigins,
		billingHandler.NewHandler(billingService),
		ownershipHandler.NewHandler(ownershipService, clock),
		exportHandler.NewHandler(exportService),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
