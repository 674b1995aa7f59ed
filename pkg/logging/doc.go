// Package logging provides the subsystem-scoped logger used across oboro.
//
// Records go through log/slog with a github.com/charmbracelet/log handler,
// so the same call sites can produce colored text for a terminal, logfmt
// or JSON.
//
// # Log Levels
//   - Debug: per-record progress such as mapping and file writes
//   - Info: one line per completed operation
//   - Warn: suspicious input that does not stop a run
//   - Error: failures, with the error attached
//
// # Usage
//
//	logging.Init(logging.Options{Level: logging.LevelDebug, Format: logging.FormatJSON}, os.Stderr)
//
//	logging.Info("Generator", "Wrote %d files to %s", n, dir)
//	logging.Error("Watch", err, "Regeneration failed")
//
// Every record carries a subsystem attribute naming the component that
// emitted it (Loader, Mapper, Resolver, Generator, Watch, CLI).
//
// Calls made before Init are dropped, except errors which are written
// to stderr.
package logging
