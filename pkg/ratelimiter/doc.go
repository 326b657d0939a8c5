// Package ratelimiter implements token bucket rate limiting over a
// pluggable Store.
//
// The portal uses it to throttle employee submissions per client IP:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg.Submit)
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.Allow(ctx, clientip.FromContext(ctx))
//	if err == nil && !res.Allowed() {
//		// wait res.RetryAfter(time.Now())
//	}
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each Allow takes one token; a denied call takes none.
package ratelimiter
