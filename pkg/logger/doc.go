// Package logger builds the portal's *slog.Logger and provides the attribute
// helpers used across packages so log keys stay consistent.
//
// New applies functional options over production defaults (JSON, info level,
// stdout). WithEnvironment switches to text output at debug level outside
// production. Context extractors registered with WithContextExtractors run on
// every record, which is how request ids reach the logs:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "registration rejected",
//	    logger.Form("registration"),
//	    logger.Fields(res.Fields()),
//	)
//
// Helpers that take an optional value (Error, MemberID, RequestID) return an
// empty slog.Attr for nil input, which slog drops.
package logger
