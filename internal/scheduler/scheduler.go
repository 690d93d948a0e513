// Package scheduler triggers the batch jobs on fixed intervals with a
// single-flight guard: a trigger that fires while the previous run is still
// going is skipped, never queued.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is one scheduled batch run.
type JobFunc func(ctx context.Context) error

// SingleFlight wraps a job so overlapping triggers become no-ops.
type SingleFlight struct {
	Name    string
	Job     JobFunc
	Logger  *slog.Logger
	running atomic.Bool
}

func NewSingleFlight(name string, job JobFunc, logger *slog.Logger) *SingleFlight {
	if logger == nil {
		logger = slog.Default()
	}
	return &SingleFlight{Name: name, Job: job, Logger: logger}
}

// Trigger runs the job unless a previous run is still in progress.
// Returns false when the trigger was skipped.
func (s *SingleFlight) Trigger(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		s.Logger.Warn("scheduler.trigger.skipped", "job", s.Name, "reason", "previous run still in progress")
		return false
	}
	defer s.running.Store(false)

	start := time.Now()
	s.Logger.Info("scheduler.trigger.fired", "job", s.Name)
	if err := s.Job(ctx); err != nil {
		s.Logger.Error("scheduler.run.failed", "job", s.Name, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return true
	}
	s.Logger.Info("scheduler.run.done", "job", s.Name, "elapsed_ms", time.Since(start).Milliseconds())
	return true
}

// Scheduler drives multiple single-flight jobs off one cron runner.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Add registers a job at a fixed interval.
func (s *Scheduler) Add(ctx context.Context, name string, interval time.Duration, job JobFunc) error {
	sf := NewSingleFlight(name, job, s.logger)
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		sf.Trigger(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	s.logger.Info("scheduler.job.registered", "job", name, "interval", interval.String())
	return nil
}

// Start begins firing triggers. Non-blocking.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
