package interfaces

import "context"

// Logger is the leveled logging contract used throughout the engine. The
// method set matches github.com/goliatone/go-logger, letting hosts that
// already run that package supply their loggers directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. An implementation may return one
// shared instance for every name or scope children per module.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for binding persistent structured
// fields. Implementations return a new logger that stamps the supplied fields
// onto every subsequent entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
