// Package scheduler drives periodic engine work, currently the voice
// session flush.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/experience"
)

// DefaultFlushSchedule flushes open voice sessions every five minutes
const DefaultFlushSchedule = "@every 5m"

var parser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Config holds the dependencies for the scheduler
type Config struct {
	Experience experience.Service

	// FlushSchedule is a cron spec; defaults to DefaultFlushSchedule
	FlushSchedule string
	Location      *time.Location
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Experience == nil {
		vb.RequiredField("Experience")
	}
	if c.FlushSchedule != "" {
		if _, err := parser.Parse(c.FlushSchedule); err != nil {
			vb.Fieldf("FlushSchedule", "invalid cron spec: %v", err)
		}
	}

	return vb.Build()
}

// Scheduler runs the registered jobs on their cron schedules
type Scheduler struct {
	experience experience.Service
	cron       *cron.Cron
	flushID    cron.EntryID
}

// New creates a scheduler with the voice flush registered
func New(cfg *Config) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	spec := cfg.FlushSchedule
	if spec == "" {
		spec = DefaultFlushSchedule
	}

	logger := slogLogger{}
	s := &Scheduler{
		experience: cfg.Experience,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}

	id, err := s.cron.AddFunc(spec, func() {
		if _, err := s.FlushVoice(context.Background()); err != nil {
			slog.Error("voice flush failed", "error", err.Error())
		}
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to schedule voice flush")
	}
	s.flushID = id

	return s, nil
}

// FlushVoice runs one voice flush immediately
func (s *Scheduler) FlushVoice(ctx context.Context) (*experience.FlushVoiceSessionsOutput, error) {
	return s.experience.FlushVoiceSessions(ctx, &experience.FlushVoiceSessionsInput{})
}

// NextFlush reports when the voice flush will next run. It is zero until
// the scheduler is started.
func (s *Scheduler) NextFlush() time.Time {
	return s.cron.Entry(s.flushID).Next
}

// Run starts the jobs and blocks until ctx is cancelled, then waits for any
// running job and performs a final voice flush so accrued time is kept.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	slog.InfoContext(ctx, "scheduler started", "next_flush", s.NextFlush())

	<-ctx.Done()

	<-s.cron.Stop().Done()

	// the caller's ctx is already cancelled
	if _, err := s.FlushVoice(context.WithoutCancel(ctx)); err != nil {
		slog.ErrorContext(ctx, "final voice flush failed", "error", err.Error())
	}
	slog.InfoContext(ctx, "scheduler stopped")

	return nil
}

// slogLogger adapts cron's logger to the default slog logger
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
