// Package clientip resolves the address of the browser behind the portal's
// reverse proxy.
//
// GetIP checks CF-Connecting-IP, X-Forwarded-For (first valid entry) and
// X-Real-IP, then falls back to the TCP peer address. Middleware stores
// the result in the request context, where FromContext reads it back:
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//
//	ip := clientip.FromContext(req.Context())
//
// Forwarded headers are trusted as-is, so the portal must only be reachable
// through a proxy that overwrites them.
package clientip
