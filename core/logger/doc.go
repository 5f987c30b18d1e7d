// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for development (console) or production (json)
// use and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the RayID (request id) from a Fiber context and attaches it
// to the log entry, so all logs of one request, including a spreadsheet import,
// can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Import failed", zap.Error(err))
package logger
