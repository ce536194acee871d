package billing

import (
	"context"
	"log/slog"
	"time"
)

type leaseRefresher interface {
	RefreshLeases(ctx context.Context) (RefreshResult, error)
}

// Refresher periodically persists lease statuses and bills newly elapsed months.
type Refresher struct {
	svc      leaseRefresher
	interval time.Duration
}

func NewRefresher(svc leaseRefresher, interval time.Duration) *Refresher {
	return &Refresher{svc: svc, interval: interval}
}

// Run refreshes once immediately and then on every tick until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	slog.Info("lease refresher started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.refresh(ctx)

		select {
		case <-ctx.Done():
			slog.Info("lease refresher stopped")
			return
		case <-ticker.C:
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	res, err := r.svc.RefreshLeases(ctx)
	if err != nil {
		slog.Error("lease refresh failed", "error", err)
	}

	slog.Info("leases refreshed",
		"checked", res.Checked,
		"status_changed", res.StatusChanged,
		"regenerated", res.Regenerated,
	)
}
