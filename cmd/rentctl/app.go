package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	billingStore "github.com/MrJamesThe3rd/rentroll/internal/billing/store"
	"github.com/MrJamesThe3rd/rentroll/internal/config"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
	ownershipStore "github.com/MrJamesThe3rd/rentroll/internal/ownership/store"
)

type app struct {
	db        *sql.DB
	billing   *billing.Service
	ownership *ownership.Service
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	clock, err := cfg.Clock()
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &app{
		db: db,
		billing: billing.NewService(billingStore.New(db),
			billing.WithClock(clock),
			billing.WithExpiringSoonWindow(cfg.Billing.ExpiringSoonWindow),
		),
		ownership: ownership.NewService(ownershipStore.New(db)),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
