package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// cleanupSpec runs the purge daily at midnight.
const cleanupSpec = "0 0 * * *"

// JobPurger removes applications older than the cutoff.
type JobPurger interface {
	DeleteJobsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// CleanupScheduler periodically purges applications older than the
// configured age. It runs independently of submission handling.
type CleanupScheduler struct {
	cron    *cron.Cron
	purger  JobPurger
	maxDays int
}

type CleanupSchedulerDependencies struct {
	Purger JobPurger

	// MaxAgeDays is the retention window; entries older than this many
	// days are deleted. Defaults to 30.
	MaxAgeDays int
}

func NewCleanupScheduler(deps CleanupSchedulerDependencies) *CleanupScheduler {
	maxDays := deps.MaxAgeDays
	if maxDays <= 0 {
		maxDays = 30
	}

	return &CleanupScheduler{
		cron:    cron.New(),
		purger:  deps.Purger,
		maxDays: maxDays,
	}
}

// Start schedules the daily purge and starts the cron runner.
func (s *CleanupScheduler) Start() error {
	if _, err := s.cron.AddFunc(cleanupSpec, s.Run); err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Int("max_age_days", s.maxDays).Msg("Cleanup scheduler started")

	return nil
}

// Stop halts the cron runner and waits for a running purge to finish.
func (s *CleanupScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Cleanup scheduler stopped")
}

// Run executes one purge pass.
func (s *CleanupScheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.maxDays)

	deleted, err := s.purger.DeleteJobsOlderThan(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Scheduled cleanup failed")
		return
	}

	log.Info().Int64("deleted", deleted).Msg("Scheduled cleanup completed")
}
