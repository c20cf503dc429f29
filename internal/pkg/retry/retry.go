package retry

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// Config controls exponential backoff between delivery attempts.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64 // 0..1, e.g. 0.1 means +-10% jitter
	MaxAttempts     int
}

// DefaultConfig returns the default backoff schedule:
// 30s, 1m, 2m, 4m, ... capped at 10m, up to 8 attempts.
func DefaultConfig() Config {
	return Config{
		InitialInterval: 30 * time.Second,
		MaxInterval:     10 * time.Minute,
		Multiplier:      2.0,
		JitterFactor:    0.1,
		MaxAttempts:     8,
	}
}

// Backoff returns the wait before the given attempt (1-based). Attempt 1
// waits InitialInterval; each further attempt multiplies the interval,
// capped at MaxInterval, with random jitter applied.
func (c Config) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	interval := float64(c.InitialInterval) * math.Pow(c.Multiplier, float64(attempt-1))
	if max := float64(c.MaxInterval); interval > max {
		interval = max
	}

	if c.JitterFactor > 0 {
		jitter := interval * c.JitterFactor
		interval += (rand.Float64()*2 - 1) * jitter
	}

	return time.Duration(interval)
}

// Exhausted reports whether the given attempt count has used up the budget.
func (c Config) Exhausted(attempts int) bool {
	return attempts >= c.MaxAttempts
}

// PermanentError marks an error that must not be retried.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps err so IsPermanent reports true for it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}
