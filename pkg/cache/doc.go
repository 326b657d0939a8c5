// Package cache provides a generic, thread-safe LRU cache with optional
// time-based expiry.
//
// The portal uses it to keep recent employee search results so repeated
// lookups of the same name within a short window do not hit the remote API.
//
// # Usage
//
//	results := cache.NewLRUCache[string, []employee.Employee](128,
//		cache.WithTTL(30*time.Second),
//	)
//
//	results.Put("john", found)
//	if hit, ok := results.Get("john"); ok {
//		// serve hit
//	}
//
//	// Drop everything after a write that may change results.
//	results.Clear()
//
// Get, Put and Clear are O(1) (Clear reallocates the index). Expired entries
// are removed lazily when they are read; until then they still count towards
// capacity and Len.
package cache
