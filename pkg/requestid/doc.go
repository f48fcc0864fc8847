// Package requestid tags each HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// puts it in the request context and echoes it back. LoggerExtractor plugs
// the id into logs built with logger.WithContextExtractors:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware())
package requestid
