// Package logging provides a minimal logging interface and adapters for slicekit.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the demo binaries use for observability; the allocation tracker consumes
// the narrower accounting surface (LogAllocation, LogRelease, LogLeakReport)
// that SliceKitLogger and NoOpLogger both provide. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - A pretty terminal handler backed by lmittmann/tint
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	alloc.SetTracker(alloc.NewTracker(logger))
//
// The container itself never logs; only the allocation accounting layer and the
// demo entry points emit log records. The design intentionally keeps the
// interface minimal so callers can plug any structured logger.
package logging
