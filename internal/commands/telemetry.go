package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// TelemetryStatus categorizes how a command execution ended.
type TelemetryStatus string

const (
	// TelemetryStatusSuccess marks executions that completed without error.
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusFailed marks executions whose command function returned
	// an error.
	TelemetryStatusFailed TelemetryStatus = "failed"
	// TelemetryStatusContextError marks executions cut short by context
	// cancellation or deadline.
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes one execution outcome as handed to telemetry
// callbacks.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is an optional callback invoked after command execution. When
// installed it replaces the handler's own outcome logging.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs command outcomes with the supplied logger, including
// the execution duration in milliseconds.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = EnsureLogger(logger)
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logger
		if len(info.Fields) > 0 {
			entry = logging.WithFields(entry, info.Fields)
		}
		message, args := outcomeEntry(info)
		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info(message, args...)
		default:
			entry.Error(message, args...)
		}
	}
}

func outcomeEntry(info TelemetryInfo) (string, []any) {
	args := []any{"duration_ms", info.Duration.Milliseconds()}
	switch info.Status {
	case TelemetryStatusSuccess:
		return "command.execute.success", args
	case TelemetryStatusContextError:
		return "command.execute.context_error", append(args, "error", info.Error)
	default:
		return "command.execute.failed", append(args, "error", info.Error)
	}
}
