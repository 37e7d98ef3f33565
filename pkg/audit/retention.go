package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Retention prunes old audit records on a cron schedule.
type Retention struct {
	store    Store
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewRetention creates a retention pruner. Common schedules:
//
//	"0 3 * * *"   - daily at 3 AM
//	"0 */6 * * *" - every 6 hours
func NewRetention(store Store, schedule string, maxAge time.Duration, logger *slog.Logger) *Retention {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retention{
		store:    store,
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger.With("component", "audit.retention"),
	}
}

// Start begins scheduled pruning. It validates the cron expression, starts
// the scheduler, and stops it when the context is cancelled.
func (r *Retention) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("retention already running")
	}
	if _, err := cron.ParseStandard(r.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", r.schedule, err)
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, func() {
		if _, err := r.Prune(ctx); err != nil {
			r.logger.Error("scheduled prune failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	r.cron.Start()
	r.running = true
	r.logger.Info("retention scheduler started",
		"schedule", r.schedule, "max_age", r.maxAge)

	go func() {
		<-ctx.Done()
		r.Stop()
	}()
	return nil
}

// Stop halts scheduled pruning. It is safe to call repeatedly.
func (r *Retention) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.cron.Stop()
	r.running = false
	r.logger.Info("retention scheduler stopped")
}

// Prune deletes every record older than the retention age and reports how
// many were removed. It can also be invoked manually.
func (r *Retention) Prune(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-r.maxAge)
	deleted, err := r.store.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		r.logger.Info("pruned audit records", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}
