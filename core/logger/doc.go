// Package logger provides the zap logger factory for the application.
//
// The logger is configured through logger.Config (level and encoding).
// CLI commands use the console encoder with colored levels; the server
// defaults to production JSON output.
//
// WithRayID decorates a logger with the per-request ray_id set by the
// rayid middleware so that all log lines of one request correlate.
package logger
