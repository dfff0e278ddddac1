// Package log provides the structured logging used by the optimizers and the
// model selector.
//
// The Logger interface is slog-compatible so callers can plug in any backend;
// the default provider writes JSON through zerolog. ML-specific attribute keys
// live in attributes.go.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("model_selection")
//	logger.Info("Selected model",
//	    log.RegularizationKey, 0.01,
//	    log.ThresholdKey, 0.5,
//	    log.FMeasureKey, 0.93,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. If the first field passed
// to Error (or any other level) is an error value, implementations attach it
// under the "error" key together with its stack trace.
type Logger interface {
	// Debug logs diagnostic detail such as per-epoch cost.
	Debug(msg string, fields ...any)

	// Info logs general progress.
	Info(msg string, fields ...any)

	// Warn logs conditions that do not stop the computation, e.g. a NaN cost.
	Warn(msg string, fields ...any)

	// Error logs failures.
	//
	// Example:
	//   logger.Error("Training failed",
	//       err,
	//       log.OperationKey, log.OperationFit,
	//   )
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted. Use it to
	// skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates loggers. It exists so tests can swap the global
// provider for a TestLoggerProvider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers created by this provider.
	SetLevel(level Level)
}
