package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drdl/portal/pkg/ratelimiter"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newLimiter(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *clock) {
	t.Helper()

	c := &clock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
		ratelimiter.WithClock(c.now),
	)
	t.Cleanup(store.Close)

	limiter, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return limiter, store, c
}

var cfg = ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: 10 * time.Second}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, c := newLimiter(t, cfg)

	res, err := limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, 1, res.Remaining)

	res, err = limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)
	assert.Zero(t, res.RetryAfter(c.now()))

	res, err = limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, 10*time.Second, res.RetryAfter(c.now()))

	t.Run("denied calls take no tokens", func(t *testing.T) {
		res, err := limiter.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.Equal(t, -1, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		res, err := limiter.Allow(ctx, "198.51.100.2")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("refills after an interval", func(t *testing.T) {
		c.advance(10 * time.Second)

		res, err := limiter.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		c.advance(24 * time.Hour)

		res, err := limiter.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)
	})
}

func TestBucket_StatusAndReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newLimiter(t, cfg)

	_, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)

	res, err := limiter.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)

	res, err = limiter.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)

	require.NoError(t, limiter.Reset(ctx, "k"))
	res, err = limiter.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}

func TestBucket_AllowN(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newLimiter(t, cfg)

	_, err := limiter.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err := limiter.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	res, err = limiter.AllowN(ctx, "k", 2)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for name, c := range map[string]ratelimiter.Config{
		"zero capacity":    {RefillRate: 1, RefillInterval: time.Second},
		"zero refill rate": {Capacity: 1, RefillInterval: time.Second},
		"zero interval":    {Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, c)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig, name)
	}
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, store, c := newLimiter(t, cfg)

	_, err := limiter.Allow(ctx, "old")
	require.NoError(t, err)
	c.advance(2 * time.Minute)
	_, err = limiter.Allow(ctx, "fresh")
	require.NoError(t, err)

	store.RemoveStale()
	assert.Equal(t, 1, store.Len())

	store.Close()
	store.Close()
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.True(t, cfg.Enabled())
	assert.False(t, ratelimiter.Config{}.Enabled())
}
