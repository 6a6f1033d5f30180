// Package scheduler fires catalog refreshes on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/pkg/retry"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/robfig/cron/v3"
)

type Settings struct {
	Timezone string `envconfig:"TIMEZONE" default:"America/New_York"`
	Schedule string `envconfig:"SCHEDULE" default:"0 0 * * *"`
	// Retries is how many times a failed refresh is fired again.
	Retries      int           `envconfig:"TRIGGER_RETRIES" default:"3"`
	RetryBackoff time.Duration `envconfig:"TRIGGER_RETRY_BACKOFF" default:"2s"`
	Demo         bool          `envconfig:"DEMO_MODE" default:"false"`
	DemoInterval time.Duration `envconfig:"DEMO_INTERVAL" default:"10s"`
}

// Spec is the cron expression the trigger runs on.
func (s Settings) Spec() string {
	if s.Demo {
		return "@every " + s.DemoInterval.String()
	}

	return fmt.Sprintf("CRON_TZ=%s %s", s.Timezone, s.Schedule)
}

func (s Settings) request() domain.RefreshRequest {
	if s.Demo {
		return domain.RefreshRequest{Mode: domain.RefreshDemo, DemoDuration: s.DemoInterval}
	}

	return domain.RefreshRequest{Mode: domain.RefreshScheduled}
}

func (s Settings) retryPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts:       s.Retries + 1,
		InitialBackoff:    s.RetryBackoff,
		MaxBackoff:        8 * s.RetryBackoff,
		BackoffMultiplier: 2,
		Jitter:            0.1,
	}
}

type Refresher interface {
	RefreshCatalog(ctx context.Context, req domain.RefreshRequest) (domain.ShopMetadata, error)
}

// Trigger delivers refreshes at least once per tick. A tick that is still
// retrying when the next one comes due makes the next one skip.
type Trigger struct {
	cron      *cron.Cron
	schedule  cron.Schedule
	refresher Refresher
	settings  Settings
	logger    logging.Logger

	mu      sync.Mutex
	baseCtx context.Context
}

func NewTrigger(refresher Refresher, settings Settings, logger logging.Logger) (*Trigger, error) {
	if settings.Demo && settings.DemoInterval <= 0 {
		return nil, fmt.Errorf("demo interval must be positive, got %s", settings.DemoInterval)
	}

	schedule, err := cron.ParseStandard(settings.Spec())
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", settings.Spec(), err)
	}

	cronLog := cronLogger{logger: logger}
	t := &Trigger{
		cron:      cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog))),
		schedule:  schedule,
		refresher: refresher,
		settings:  settings,
		logger:    logger,
		baseCtx:   context.Background(),
	}

	t.cron.Schedule(schedule, cron.FuncJob(func() {
		_ = t.Fire(t.context())
	}))

	return t, nil
}

// Next returns when the trigger fires after now.
func (t *Trigger) Next(now time.Time) time.Time {
	return t.schedule.Next(now)
}

// Run fires on schedule until ctx is done, then waits for a running refresh.
func (t *Trigger) Run(ctx context.Context) error {
	t.mu.Lock()
	t.baseCtx = ctx
	t.mu.Unlock()

	t.logger.Info("catalog refresh trigger started", "spec", t.settings.Spec(), "next", t.Next(time.Now()).Format(time.RFC3339))
	t.cron.Start()

	<-ctx.Done()

	<-t.cron.Stop().Done()
	t.logger.Info("catalog refresh trigger stopped")

	return nil
}

// Fire runs one refresh with the trigger's retry budget.
func (t *Trigger) Fire(ctx context.Context) error {
	req := t.settings.request()

	err := retry.Do(ctx, t.settings.retryPolicy(), isRetryable, func(attempt int) error {
		_, err := t.refresher.RefreshCatalog(ctx, req)
		if err != nil {
			t.logger.Warn("catalog refresh attempt failed", "mode", string(req.Mode), "attempt", attempt, "error", err.Error())
		}
		return err
	})
	if err != nil {
		t.logger.Error("catalog refresh gave up", "mode", string(req.Mode), "error", err.Error())
		return err
	}

	return nil
}

func (t *Trigger) context() context.Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.baseCtx
}

func isRetryable(err error) bool {
	return !errors.Is(err, &domain.InvalidArgumentsError{})
}

type cronLogger struct {
	logger logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
