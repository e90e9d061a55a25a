// Package autogen fills upcoming schedules on a cron schedule.
package autogen

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/models"

	cronlib "github.com/robfig/cron/v3"
)

// runTimeout bounds a single scheduled generation
const runTimeout = 2 * time.Minute

// cronParser supports standard 5-field cron and descriptors like "@daily".
var cronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

// ParseSchedule parses a cron expression and returns the schedule.
func ParseSchedule(expr string) (cronlib.Schedule, error) {
	return cronParser.Parse(expr)
}

// Generator fills the open slots of a date
type Generator interface {
	Generate(ctx context.Context, date string) (*models.GenerateResult, error)
}

// Job generates the schedule DaysAhead days after the current day
type Job struct {
	generator Generator
	daysAhead int
	now       func() time.Time
	log       *logger.Logger
	cron      *cronlib.Cron
}

// Option configures a Job
type Option func(*Job)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(j *Job) { j.now = now }
}

// WithLogger sets the job logger
func WithLogger(l *logger.Logger) Option {
	return func(j *Job) { j.log = l }
}

// New creates a job running on spec. It is not started.
func New(spec string, generator Generator, daysAhead int, opts ...Option) (*Job, error) {
	if daysAhead < 0 {
		return nil, fmt.Errorf("days ahead must not be negative, got %d", daysAhead)
	}
	if _, err := ParseSchedule(spec); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	j := &Job{
		generator: generator,
		daysAhead: daysAhead,
		now:       time.Now,
		log:       logger.New(),
	}
	for _, opt := range opts {
		opt(j)
	}

	j.cron = cronlib.New(cronlib.WithParser(cronParser))
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return nil, fmt.Errorf("failed to schedule generation: %w", err)
	}
	return j, nil
}

// Start begins running the job in the background
func (j *Job) Start() {
	j.cron.Start()
	j.log.WithField("days_ahead", j.daysAhead).Info("auto-generation started")
}

// Stop stops the schedule and waits for a running generation to finish
// or for ctx to expire.
func (j *Job) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.log.Info("auto-generation stopped")
}

// TargetDate returns the date the job generates when run now
func (j *Job) TargetDate() string {
	return models.FormatDate(j.now().AddDate(0, 0, j.daysAhead))
}

// RunOnce generates the target date immediately
func (j *Job) RunOnce(ctx context.Context) (*models.GenerateResult, error) {
	date := j.TargetDate()
	result, err := j.generator.Generate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("auto-generation for %s failed: %w", date, err)
	}
	return result, nil
}

func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result, err := j.RunOnce(ctx)
	if err != nil {
		j.log.WithError(err).Error("scheduled generation failed")
		return
	}
	j.log.WithFields(map[string]interface{}{
		"date":     result.Date,
		"filled":   result.Filled(),
		"unfilled": result.Unfilled(),
		"failed":   result.Failed(),
	}).Info("scheduled generation finished")
}
