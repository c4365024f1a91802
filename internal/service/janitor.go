package service

import (
	"context"
	"time"

	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

// DefaultJanitorInterval is how often expired refresh records are purged.
const DefaultJanitorInterval = time.Hour

// Janitor periodically deletes refresh records past their expiry. Expired
// records are already rejected by Rotate; purging only reclaims space.
type Janitor struct {
	store    model.RefreshTokenStore
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

func NewJanitor(store model.RefreshTokenStore, interval time.Duration, logger *logger.Logger) *Janitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &Janitor{store: store, interval: interval, logger: logger, now: time.Now}
}

// Run sweeps on every tick until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("Janitor: started", "interval", j.interval.String())

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Janitor: stopped")
			return
		case <-ticker.C:
			_, _ = j.Sweep(ctx)
		}
	}
}

// Sweep performs one purge and returns the number of records removed.
func (j *Janitor) Sweep(ctx context.Context) (int64, error) {
	removed, err := j.store.DeleteExpired(ctx, j.now())
	if err != nil {
		j.logger.Error("Janitor: failed to delete expired refresh tokens",
			"error", err.Error())
		return 0, err
	}
	if removed > 0 {
		j.logger.Info("Janitor: expired refresh tokens deleted", "count", removed)
	}
	return removed, nil
}
