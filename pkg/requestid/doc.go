// Package requestid assigns every HTTP request a correlation id.
//
// Middleware keeps a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'; otherwise it generates a UUID.
// The id is stored in the request context, echoed in the response header,
// added to log records by LoggerExtractor and forwarded to the employee API
// so one submission can be traced across both services.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
