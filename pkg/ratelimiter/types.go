package ratelimiter

import "time"

// Result is the outcome of a rate limit check.
type Result struct {
	Limit     int
	Remaining int
	// ResetAt is when the next refill happens.
	ResetAt time.Time
}

// Allowed reports whether the consumed tokens were available.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before trying again, or 0 when the
// request was allowed.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Config is the token bucket configuration. A zero Capacity disables
// limiting in callers that check Enabled.
type Config struct {
	// Capacity is the burst size.
	Capacity int `env:"CAPACITY" envDefault:"5"`
	// RefillRate tokens are added every RefillInterval.
	RefillRate     int           `env:"REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"10s"`
}

// Enabled reports whether the configuration asks for limiting at all.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}
