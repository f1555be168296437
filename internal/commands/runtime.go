package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-contentkit/internal/logging"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// DefaultCommandTimeout bounds handler execution when no override is
// configured.
const DefaultCommandTimeout = 30 * time.Second

// EnsureContext substitutes context.Background for nil contexts so handler
// plumbing never branches on nil.
func EnsureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// WithCommandTimeout bounds ctx by timeout. Zero and negative timeouts leave
// ctx unbounded and return a no-op cancel.
func WithCommandTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

// EnsureLogger substitutes the no-op logger for nil loggers.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger != nil {
		return logger
	}
	return logging.NoOp()
}
