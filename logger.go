package gapset

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gapset-specific fields.
// The Bitset type itself never logs; loggers are used by the persist package.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithUniverse adds the universe size to the logger.
func (l *Logger) WithUniverse(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("universe", bits),
	}
}

// WithPath adds a file path to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogSave logs the outcome of writing a collection of sets.
func (l *Logger) LogSave(records int, bytes int64, err error) {
	if err != nil {
		l.Error("save failed",
			"records", records,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Info("save completed",
			"records", records,
			"bytes", bytes,
		)
	}
}

// LogLoad logs the outcome of reading a collection of sets.
func (l *Logger) LogLoad(records int, err error) {
	if err != nil {
		l.Error("load failed",
			"records", records,
			"error", err,
		)
	} else {
		l.Info("load completed",
			"records", records,
		)
	}
}

// LogRecord logs a single encoded set at debug level.
func (l *Logger) LogRecord(index int, rep Representation, raw, stored int) {
	l.Debug("record",
		"index", index,
		"representation", rep.String(),
		"raw_bytes", raw,
		"stored_bytes", stored,
	)
}

// LogCorruption logs a record that failed validation.
func (l *Logger) LogCorruption(index int, err error) {
	l.Warn("corrupt record",
		"index", index,
		"error", err,
	)
}
