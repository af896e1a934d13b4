// Package logger builds configured log/slog loggers.
//
// The factory applies environment presets (JSON at info level for production,
// text at debug level for development), attaches static service attributes,
// and wraps the handler so request-scoped values such as request IDs are
// pulled from context on every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Environment, "signup-gateway"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Attribute helpers (logger.Error, logger.Brand, ...) keep log keys consistent
// across packages.
package logger
