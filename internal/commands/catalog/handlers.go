package catalogcmd

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-contentkit/internal/commands"
	"github.com/goliatone/go-contentkit/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	preloadOperation    = "catalog.preload"
	invalidateOperation = "catalog.invalidate"
	resetStatsOperation = "stats.reset"
)

// ErrCommandsFeatureDisabled is returned when the commands feature flag is
// disabled at runtime.
var ErrCommandsFeatureDisabled = errors.New("catalog command: feature disabled")

var (
	_ command.Commander[PreloadCatalogCommand]  = (*PreloadCatalogHandler)(nil)
	_ command.Commander[InvalidateCacheCommand] = (*InvalidateCacheHandler)(nil)
	_ command.Commander[ResetStatisticsCommand] = (*ResetStatisticsHandler)(nil)
)

// CatalogCache is the slice of the document cache the handlers drive.
type CatalogCache interface {
	Preload(ctx context.Context, domains []string) error
	Clear()
}

// StatisticsResetter zeroes the collected error counters.
type StatisticsResetter interface {
	Reset()
}

// PreloadCatalogHandler warms the document cache via the shared command
// handler foundation.
type PreloadCatalogHandler struct {
	inner *commands.Handler[PreloadCatalogCommand]
}

// NewPreloadCatalogHandler creates a handler bound to the supplied cache.
// When a command names no domains the configured preload set is used.
func NewPreloadCatalogHandler(cache CatalogCache, logger interfaces.Logger, gates FeatureGates, preloadDomains []string, opts ...commands.HandlerOption[PreloadCatalogCommand]) *PreloadCatalogHandler {
	baseLogger := commands.EnsureLogger(logger)
	fallback := append([]string(nil), preloadDomains...)

	exec := func(ctx context.Context, msg PreloadCatalogCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}
		domains := msg.Domains
		if len(domains) == 0 {
			domains = fallback
		}
		return cache.Preload(ctx, domains)
	}

	handlerOpts := []commands.HandlerOption[PreloadCatalogCommand]{
		commands.WithLogger[PreloadCatalogCommand](baseLogger),
		commands.WithOperation[PreloadCatalogCommand](preloadOperation),
		commands.WithMessageFields(func(msg PreloadCatalogCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Domains) > 0 {
				fields["domains"] = strings.Join(msg.Domains, ",")
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreloadCatalogCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreloadCatalogHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *PreloadCatalogHandler) Execute(ctx context.Context, msg PreloadCatalogCommand) error {
	return h.inner.Execute(ctx, msg)
}

// InvalidateCacheHandler drops every cached document.
type InvalidateCacheHandler struct {
	inner *commands.Handler[InvalidateCacheCommand]
}

// NewInvalidateCacheHandler creates a handler bound to the supplied cache.
func NewInvalidateCacheHandler(cache CatalogCache, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[InvalidateCacheCommand]) *InvalidateCacheHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg InvalidateCacheCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}
		cache.Clear()
		return nil
	}

	handlerOpts := []commands.HandlerOption[InvalidateCacheCommand]{
		commands.WithLogger[InvalidateCacheCommand](baseLogger),
		commands.WithOperation[InvalidateCacheCommand](invalidateOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[InvalidateCacheCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InvalidateCacheHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *InvalidateCacheHandler) Execute(ctx context.Context, msg InvalidateCacheCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ResetStatisticsHandler zeroes the error counters on request.
type ResetStatisticsHandler struct {
	inner *commands.Handler[ResetStatisticsCommand]
}

// NewResetStatisticsHandler creates a handler bound to the supplied monitor.
func NewResetStatisticsHandler(monitor StatisticsResetter, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ResetStatisticsCommand]) *ResetStatisticsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ResetStatisticsCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}
		monitor.Reset()
		return nil
	}

	handlerOpts := []commands.HandlerOption[ResetStatisticsCommand]{
		commands.WithLogger[ResetStatisticsCommand](baseLogger),
		commands.WithOperation[ResetStatisticsCommand](resetStatsOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[ResetStatisticsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ResetStatisticsHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ResetStatisticsHandler) Execute(ctx context.Context, msg ResetStatisticsCommand) error {
	return h.inner.Execute(ctx, msg)
}
