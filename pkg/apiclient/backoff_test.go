package apiclient_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/apiclient"
)

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	b := apiclient.ExponentialBackoff{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, time.Second},
		{10, time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, b.NextInterval(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	t.Parallel()

	b := apiclient.ExponentialBackoff{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2,
		JitterFactor:    0.2,
	}

	for range 50 {
		got := b.NextInterval(2)
		assert.GreaterOrEqual(t, got, 160*time.Millisecond)
		assert.LessOrEqual(t, got, 240*time.Millisecond)
	}
}

func TestExponentialBackoff_Defaults(t *testing.T) {
	t.Parallel()

	var b apiclient.ExponentialBackoff
	assert.Equal(t, 200*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 400*time.Millisecond, b.NextInterval(2))
	assert.Equal(t, 5*time.Second, b.NextInterval(20))
}

func TestFixedBackoff(t *testing.T) {
	t.Parallel()

	b := apiclient.FixedBackoff{Interval: 50 * time.Millisecond}
	assert.Equal(t, time.Duration(0), b.NextInterval(0))
	assert.Equal(t, 50*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 50*time.Millisecond, b.NextInterval(7))
}

func TestDefaultBackoffStrategy(t *testing.T) {
	t.Parallel()

	s := apiclient.DefaultBackoffStrategy()
	for attempt := 1; attempt <= 10; attempt++ {
		assert.LessOrEqual(t, s.NextInterval(attempt), 2*time.Second)
		assert.Greater(t, s.NextInterval(attempt), time.Duration(0))
	}
}
