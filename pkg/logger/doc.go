// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format, attaches static attributes and, when ContextExtractor
// callbacks are registered, wraps the handler so attributes stored in a
// context.Context are added to every record logged with that context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "freqcache"),
//	    logger.WithContextValue("worker", workerKey{}),
//	)
//	log.InfoContext(ctx, "evicted", logger.CacheKey(k), logger.Frequency(n))
//
// # Options
//
//   - WithEnvironment / WithDevelopment / WithProduction: defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel / WithLevelName: minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
