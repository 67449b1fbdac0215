// Package logging provides structured logging on top of log/slog.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - JSON or text output
//   - Configurable log levels (debug, info, warn, error)
//   - Context-aware logging with item, template and format fields
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logger.Info("document converted",
//	    "from", "json",
//	    "to", "xml",
//	)
//
//	ctx = logging.WithItemID(ctx, "id-123456")
//	logger.InfoContext(ctx, "rendered")  // Includes item_id
//
// Logs are written to stderr unless Config.Writer is set, so they never mix
// with documents written to stdout.
package logging
