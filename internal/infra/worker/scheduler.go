package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// Scheduler runs registered jobs on a shared cron schedule. Runs of the same
// job never overlap.
type Scheduler struct {
	cron    *cron.Cron
	cfg     Config
	metrics *Metrics
	logger  *slog.Logger
}

// NewScheduler validates cfg and creates a stopped scheduler. metrics may be nil.
func NewScheduler(cfg Config, metrics *Metrics, logger *slog.Logger) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("worker config: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Add registers job under name.
func (s *Scheduler) Add(name string, job Job) error {
	skip := cron.SkipIfStillRunning(cron.DiscardLogger)
	_, err := s.cron.AddJob(s.cfg.Schedule, skip(cron.FuncJob(func() {
		_ = s.Run(context.Background(), name, job)
	})))
	if err != nil {
		return fmt.Errorf("add job %s: %w", name, err)
	}
	return nil
}

// Run executes job once with the configured timeout and records the outcome.
func (s *Scheduler) Run(ctx context.Context, name string, job Job) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	start := time.Now()
	err := job(ctx)
	duration := time.Since(start)
	s.metrics.record(name, duration.Seconds(), err)

	if err != nil {
		s.logger.Warn("job failed",
			slog.String("job", name),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return err
	}
	s.logger.Debug("job completed", slog.String("job", name), slog.Duration("duration", duration))
	return nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("worker started",
		slog.String("schedule", s.cfg.Schedule),
		slog.String("timezone", s.cfg.Timezone),
		slog.Int("jobs", len(s.cron.Entries())))
}

// Stop stops scheduling and waits for running jobs or ctx, whichever is first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
