package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffSchedule(t *testing.T) {
	cfg := Config{
		InitialInterval: 30 * time.Second,
		MaxInterval:     10 * time.Minute,
		Multiplier:      2.0,
		JitterFactor:    0, // deterministic for the test
		MaxAttempts:     8,
	}

	assert.Equal(t, 30*time.Second, cfg.Backoff(1))
	assert.Equal(t, time.Minute, cfg.Backoff(2))
	assert.Equal(t, 2*time.Minute, cfg.Backoff(3))
	assert.Equal(t, 4*time.Minute, cfg.Backoff(4))
	assert.Equal(t, 8*time.Minute, cfg.Backoff(5))
	// Capped at MaxInterval from here on
	assert.Equal(t, 10*time.Minute, cfg.Backoff(6))
	assert.Equal(t, 10*time.Minute, cfg.Backoff(20))

	// Attempt below 1 is clamped
	assert.Equal(t, 30*time.Second, cfg.Backoff(0))
}

func TestBackoffJitterStaysInBounds(t *testing.T) {
	cfg := Config{
		InitialInterval: time.Minute,
		MaxInterval:     time.Hour,
		Multiplier:      2.0,
		JitterFactor:    0.1,
		MaxAttempts:     8,
	}

	for i := 0; i < 100; i++ {
		got := cfg.Backoff(1)
		assert.GreaterOrEqual(t, got, 54*time.Second)
		assert.LessOrEqual(t, got, 66*time.Second)
	}
}

func TestExhausted(t *testing.T) {
	cfg := Config{MaxAttempts: 3}

	assert.False(t, cfg.Exhausted(2))
	assert.True(t, cfg.Exhausted(3))
	assert.True(t, cfg.Exhausted(4))
}

func TestPermanent(t *testing.T) {
	base := errors.New("bad payload")

	assert.Nil(t, Permanent(nil))

	wrapped := Permanent(base)
	assert.True(t, IsPermanent(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "bad payload", wrapped.Error())

	// Marker survives further wrapping
	outer := fmt.Errorf("handler failed: %w", wrapped)
	assert.True(t, IsPermanent(outer))

	assert.False(t, IsPermanent(base))
	assert.False(t, IsPermanent(nil))
}
