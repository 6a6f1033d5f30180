package retry

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

type Policy struct {
	MaxAttempts       int           `envconfig:"MAX_ATTEMPTS" default:"5"`
	InitialBackoff    time.Duration `envconfig:"INITIAL_BACKOFF" default:"20ms"`
	MaxBackoff        time.Duration `envconfig:"MAX_BACKOFF" default:"500ms"`
	BackoffMultiplier float64       `envconfig:"BACKOFF_MULTIPLIER" default:"2"`
	// Jitter spreads each delay by up to +/- Jitter of its value, 0 disables it.
	Jitter float64 `envconfig:"JITTER" default:"0.2"`
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:       5,
		InitialBackoff:    20 * time.Millisecond,
		MaxBackoff:        500 * time.Millisecond,
		BackoffMultiplier: 2,
		Jitter:            0.2,
	}
}

// Backoff returns the delay before the given retry (1 is the first retry).
func (p Policy) Backoff(retry int) time.Duration {
	if retry < 1 || p.InitialBackoff <= 0 {
		return 0
	}

	multiplier := p.BackoffMultiplier
	if multiplier < 1 {
		multiplier = 1
	}

	backoff := float64(p.InitialBackoff) * math.Pow(multiplier, float64(retry-1))
	if p.MaxBackoff > 0 && backoff > float64(p.MaxBackoff) {
		backoff = float64(p.MaxBackoff)
	}

	if p.Jitter > 0 {
		backoff += backoff * p.Jitter * (rand.Float64()*2 - 1)
	}

	return time.Duration(backoff)
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// Do calls fn until it succeeds, returns an error retryable rejects, or the
// policy runs out of attempts. The last error is returned as is.
func Do(ctx context.Context, p Policy, retryable func(error) bool, fn func(attempt int) error) error {
	var err error

	for attempt := 1; attempt <= p.attempts(); attempt++ {
		if attempt > 1 {
			if waitErr := sleep(ctx, p.Backoff(attempt-1)); waitErr != nil {
				return err
			}
		}

		err = fn(attempt)
		if err == nil || !retryable(err) {
			return err
		}
	}

	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
