package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDoublesUpToMax(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: 5, want: 30 * time.Second},
		{attempt: 100, want: 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, backoff(time.Second, 30*time.Second, tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestDurationWithRand(t *testing.T) {
	half := func() float64 { return 0.5 }

	assert.Equal(t, 1250*time.Millisecond, DurationWithRand(time.Second, 0.5, half))
	assert.Equal(t, time.Second, DurationWithRand(time.Second, 0, half))
}

func TestDurationBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := Duration(time.Second, DefaultJitter)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 1500*time.Millisecond)
	}
}

func TestBackoffCounter(t *testing.T) {
	b := &Backoff{Base: 100 * time.Millisecond, Max: time.Second}

	first := b.Next()
	second := b.Next()
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.GreaterOrEqual(t, second, 200*time.Millisecond)
	assert.Equal(t, 2, b.Attempt())

	b.Reset()
	assert.Zero(t, b.Attempt())
}
