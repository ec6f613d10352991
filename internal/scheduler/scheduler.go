package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"car-rental-backend/internal/jobs"
	"car-rental-backend/internal/logger"
)

// Scheduler manages cron job scheduling for long-running desk sessions.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler. Jobs
// with an empty cron spec are disabled.
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if cfg.OverdueRentals != "" {
		if _, err := s.cron.AddFunc(cfg.OverdueRentals, s.jobs.ReportOverdueRentals); err != nil {
			logger.Error("Failed to register ReportOverdueRentals job", "error", err)
		}
	}
}

// Start begins the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started")
}

// Stop halts the cron scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
