// Package logger builds *slog.Logger instances for the portal and provides
// attribute helpers so log keys stay consistent across packages.
//
// New takes functional options. WithEnvironment picks JSON at info level for
// staging and production and text at debug level otherwise; WithLevel set
// after it overrides the level. Context extractors run on every record, which
// is how request ids reach log lines without being passed around:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithLevel(level),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "employee not saved",
//		logger.Component("employee_directory"),
//		logger.StatusCode(502),
//		logger.Error(err),
//	)
//
// Error, RequestID and StatusCode return an empty Attr for nil or zero input,
// which slog drops, so callers need no extra checks.
package logger
