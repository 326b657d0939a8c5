// Package httpserver runs an http.Handler with graceful shutdown, env-driven
// timeouts and slog lifecycle logging.
//
// Run binds the listener, logs the bound address and blocks until the
// context is cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Listen
// failures are wrapped with ErrStart and shutdown failures with ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// "NOT_READY") probes:
//
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, directory.Ready))
package httpserver
