// Package scheduler re-triggers the pipeline on a fixed interval using robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	// Embedded zone data so SCHEDULE_TIMEZONE works on minimal images.
	_ "time/tzdata"

	"github.com/robfig/cron/v3"

	"github.com/joseph-ayodele/request-ocr/internal/pipeline"
)

// Runner is the pipeline entry point.
type Runner interface {
	Run(ctx context.Context, cfg pipeline.RunConfig) (pipeline.Result, error)
}

type Config struct {
	Interval   time.Duration
	Timezone   string
	RunTimeout time.Duration
}

// Scheduler manages the periodic pipeline job.
type Scheduler struct {
	cron      *cron.Cron
	runner    Runner
	runConfig func() pipeline.RunConfig
	cfg       Config
	logger    *slog.Logger
}

// NewScheduler creates the scheduler. runConfig is called on every tick so
// each run gets its own configuration.
func NewScheduler(runner Runner, runConfig func() pipeline.RunConfig, cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("schedule interval must be positive, got %s", cfg.Interval)
	}
	loc := time.Local
	if cfg.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
		}
	}

	cronLogger := cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{cron: c, runner: runner, runConfig: runConfig, cfg: cfg, logger: logger}, nil
}

// Start registers the job and starts the cron loop.
func (s *Scheduler) Start() error {
	spec := "@every " + s.cfg.Interval.String()
	if _, err := s.cron.AddFunc(spec, s.trigger); err != nil {
		return fmt.Errorf("add job %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("spec", spec),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop stops the cron loop; the returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow triggers one run synchronously, outside the cron loop.
func (s *Scheduler) RunNow() (pipeline.Result, error) {
	return s.run()
}

func (s *Scheduler) trigger() {
	_, _ = s.run()
}

func (s *Scheduler) run() (pipeline.Result, error) {
	ctx := context.Background()
	if s.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
		defer cancel()
	}

	res, err := s.runner.Run(ctx, s.runConfig())
	switch {
	case pipeline.IsSkipped(err):
		s.logger.Info("previous run still in progress, skipping", "run_id", res.RunID)
	case err != nil:
		s.logger.Error("error processing pdfs", "run_id", res.RunID, "error", err)
	case res.Inserted() > 0:
		s.logger.Info("data inserted successfully",
			"run_id", res.RunID,
			"records", res.Inserted(),
			"failed", len(res.Failed),
		)
	default:
		s.logger.Info("all documents already extracted",
			"run_id", res.RunID,
			"failed", len(res.Failed),
			"missing", len(res.Missing),
		)
	}
	return res, err
}
