// Package retry runs an operation with exponential backoff.
//
// The operation is attempted up to Config.MaxAttempts times. Between attempts
// Do waits for the current delay, which starts at Config.InitialDelay and is
// multiplied by Config.BackoffFactor after every wait, never exceeding
// Config.MaxDelay. There is no jitter. The error of the final attempt is
// returned to the caller unchanged; failures of earlier attempts are only
// reported to the optional Notify hook.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config validation errors.
var (
	ErrInvalidMaxAttempts   = errors.New("max attempts should be at least 1")
	ErrInvalidInitialDelay  = errors.New("initial delay should not be negative")
	ErrInvalidMaxDelay      = errors.New("max delay should not be less than initial delay")
	ErrInvalidBackoffFactor = errors.New("backoff factor should be at least 1")
)

// Config describes retry attempts and delays between them.
type Config struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	BackoffFactor float64       `yaml:"backoff_factor"`
}

// DefaultConfig is used for weather fetches.
var DefaultConfig = Config{
	MaxAttempts:   3,
	InitialDelay:  time.Second,
	MaxDelay:      10 * time.Second,
	BackoffFactor: 2.0,
}

// Validate checks config bounds.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}
	if c.InitialDelay < 0 {
		return ErrInvalidInitialDelay
	}
	if c.MaxDelay < c.InitialDelay {
		return ErrInvalidMaxDelay
	}
	if c.BackoffFactor < 1 {
		return ErrInvalidBackoffFactor
	}

	return nil
}

// Delays returns the waits between consecutive attempts, MaxAttempts-1 values.
func (c Config) Delays() []time.Duration {
	if c.MaxAttempts <= 1 {
		return nil
	}

	delays := make([]time.Duration, 0, c.MaxAttempts-1)
	delay := c.InitialDelay
	for i := 1; i < c.MaxAttempts; i++ {
		delays = append(delays, delay)
		delay = c.next(delay)
	}

	return delays
}

func (c Config) next(delay time.Duration) time.Duration {
	grown := float64(delay) * c.BackoffFactor
	if grown >= float64(c.MaxDelay) {
		return c.MaxDelay
	}

	return time.Duration(grown)
}

// Notify receives the error of a failed non-final attempt and the wait before the next one.
type Notify func(attempt int, err error, wait time.Duration)

// Option customizes a single Do call.
type Option func(*options)

type options struct {
	notify Notify
}

// WithNotify reports swallowed attempt failures.
func WithNotify(n Notify) Option {
	return func(o *options) {
		o.notify = n
	}
}

// Do calls op until it succeeds or the attempts are exhausted.
//
// If ctx is done while waiting between attempts, Do returns immediately with
// an error wrapping both the context error and the last attempt's error.
func Do[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error), opts ...Option) (T, error) {
	var zero T

	if err := cfg.Validate(); err != nil {
		return zero, fmt.Errorf("invalid retry config: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	delay := cfg.InitialDelay
	for attempt := 1; attempt < cfg.MaxAttempts; attempt++ {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}

		if o.notify != nil {
			o.notify(attempt, err, delay)
		}

		if ctxErr := wait(ctx, delay); ctxErr != nil {
			return zero, &AbortedError{Attempts: attempt, Cause: ctxErr, Last: err}
		}

		delay = cfg.next(delay)
	}

	// last attempt
	return op(ctx)
}

func wait(ctx context.Context, d time.Duration) error {
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

// AbortedError is returned when the context ends while waiting between attempts.
// It unwraps to the context error and matches the last attempt's error with errors.As.
type AbortedError struct {
	Attempts int
	Cause    error
	Last     error
}

func (e *AbortedError) Error() string {
	return fmt.Sprintf("retry aborted after %d attempt(s): %v, last error: %v", e.Attempts, e.Cause, e.Last)
}

// Unwrap returns the context error.
func (e *AbortedError) Unwrap() error {
	return e.Cause
}

// As matches target against the last attempt's error.
func (e *AbortedError) As(target interface{}) bool {
	return errors.As(e.Last, target)
}
