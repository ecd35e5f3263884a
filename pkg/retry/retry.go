// Package retry applies one exponential back-off policy to every remote call site.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts = 10
	DefaultBaseDelay   = time.Second
	DefaultMaxDelay    = 256 * time.Second
)

// ErrAttemptsExhausted wraps the last error once the attempt limit is reached.
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

// Operation is a retryable unit of work.
type Operation func(ctx context.Context) error

// Policy describes how many times an operation is attempted and how long to
// wait between attempts. The delay starts at BaseDelay and doubles after every
// failure, capped at MaxDelay.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultPolicy returns 10 attempts with 1s base delay capped at 256s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		MaxDelay:    DefaultMaxDelay,
	}
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}
	return p
}

// NotifyFunc is called after a failed attempt, before sleeping for next.
// attempt is 1-based.
type NotifyFunc func(err error, attempt int, next time.Duration)

// Retrier runs operations under a Policy.
type Retrier struct {
	policy Policy
	notify NotifyFunc
	timer  backoff.Timer
}

// Option configures a Retrier.
type Option func(*Retrier)

// WithNotify registers a callback invoked on every retry.
func WithNotify(fn NotifyFunc) Option {
	return func(r *Retrier) { r.notify = fn }
}

// WithTimer replaces the timer used between attempts.
func WithTimer(t backoff.Timer) Option {
	return func(r *Retrier) { r.timer = t }
}

// New creates a Retrier.
func New(policy Policy, opts ...Option) *Retrier {
	r := &Retrier{policy: policy.normalized()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the normalized policy.
func (r *Retrier) Policy() Policy {
	return r.policy
}

func (r *Retrier) backOff(ctx context.Context) backoff.BackOff {
	if r.policy.MaxAttempts == 1 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.policy.BaseDelay
	bo.MaxInterval = r.policy.MaxDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.policy.MaxAttempts-1)), ctx)
}

// Do runs op until it succeeds, returns a permanent error, the context is
// done, or the attempt limit is reached.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	attempt := 0
	var lastErr error

	operation := func() error {
		attempt++
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		lastErr = op(ctx)
		return lastErr
	}

	notify := func(err error, next time.Duration) {
		if r.notify != nil {
			r.notify(err, attempt, next)
		}
	}

	err := backoff.RetryNotifyWithTimer(operation, r.backOff(ctx), notify, r.timer)
	if err == nil {
		return nil
	}

	var permanent *backoff.PermanentError
	if ctx.Err() != nil || errors.As(lastErr, &permanent) {
		return err
	}
	if attempt >= r.policy.MaxAttempts && lastErr != nil {
		return fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempt, lastErr)
	}
	return err
}

// Permanent marks err as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Do is a convenience wrapper for a one-off Retrier.
func Do(ctx context.Context, policy Policy, op Operation, opts ...Option) error {
	return New(policy, opts...).Do(ctx, op)
}
