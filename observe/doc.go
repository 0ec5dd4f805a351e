// Package observe provides logging, tracing and metrics for check plugins.
//
// It is a pure instrumentation library. A plugin builds an Observer from a
// Config, derives a Middleware from it and wraps its check function. Every
// wrapped run produces one span, one set of metric points and one log line
// carrying the resulting status level.
//
// # Output Streams
//
// Check plugins report their result on stdout, so nothing in this package
// writes there. Logs and the stdout exporters default to stderr.
//
// # Logging
//
//	logger := observe.NewLogger("warn").WithPlugin(observe.PluginMeta{Name: "check_value"})
//	logger.Warn(ctx, "state file unreadable", observe.Field{Key: "path", Value: path})
//
// Fields with sensitive keys (see RedactedFields) are replaced with
// "[REDACTED]".
package observe
