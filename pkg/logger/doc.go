// Package logger builds the structured loggers used across sitekit.
//
// New returns a *slog.Logger configured through functional options: output
// format (text or JSON), minimum level, static attributes and context
// extractors that copy request-scoped values (for example a request id) into
// every record.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "sitekit"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "page rendered", logger.Path("/blog/"), logger.Lang("de"))
//
// Attribute helpers in attr.go keep key names consistent between packages.
// Library packages in this module never log through slog.Default; they take a
// logger via their own WithLogger option and fall back to Discard.
package logger
