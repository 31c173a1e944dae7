package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ExpiredTokenDeleter removes access tokens whose expiry has passed.
type ExpiredTokenDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenSweepJob manages the scheduled removal of expired access tokens.
// Runs every hour; tokens are already rejected at resolve time, so the sweep
// only keeps the table from growing.
type TokenSweepJob struct {
	deleter ExpiredTokenDeleter
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenSweepJob creates a new job for sweeping expired tokens.
func NewTokenSweepJob(deleter ExpiredTokenDeleter, logger *slog.Logger) *TokenSweepJob {
	return &TokenSweepJob{
		deleter: deleter,
		cron:    cron.New(),
		logger:  logger.With("component", "token_sweep_job"),
	}
}

// Start begins the token sweep job to run at the top of every hour.
func (j *TokenSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		deleted, err := j.deleter.DeleteExpired(ctx, time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Token sweep job failed", "error", err)
			return
		}
		if deleted > 0 {
			j.logger.InfoContext(ctx, "Expired access tokens removed", "count", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token sweep job started (running hourly)")
	return nil
}

// Stop stops the token sweep job.
func (j *TokenSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token sweep job stopped")
}
