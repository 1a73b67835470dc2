// Package logger provides a structured logging facility based on Zap.
//
// Debug level selects the development configuration (ISO8601 timestamps,
// caller info); every other level uses the production configuration with the
// requested minimum level. Encoding is json or console.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the
// logger so every log line of one HTTP request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Sync started", zap.String("username", name))
package logger
