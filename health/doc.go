// Package health runs checks and reports their status levels.
//
// A Checker measures something and returns a Result carrying a
// status.Level. ThresholdChecker covers the common case of classifying a
// single measured value against warning and critical ranges.
//
// # Aggregating Checks
//
// Aggregator runs several checkers, concurrently by default, and reports
// the worst level among them:
//
//	agg := health.NewAggregator()
//	agg.Register("load", loadChecker)
//	agg.Register("disk", diskChecker)
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// A checker that outlives the aggregator timeout is reported as UNKNOWN.
//
// # HTTP Endpoints
//
// The handlers expose the same results over HTTP. OK and WARNING map to
// 200, anything else to 503:
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg)
package health
